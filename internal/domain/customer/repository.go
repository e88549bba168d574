package customer

import "context"

type Repository interface {
	Create(ctx context.Context, c *Customer) error
	GetByCustomerID(ctx context.Context, customerID string) (*Customer, error)
	Save(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, id uint64) error
	List(ctx context.Context, branchID string) ([]Customer, error)
}
