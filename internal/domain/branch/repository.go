package branch

import "context"

type Repository interface {
	Create(ctx context.Context, b *Branch) error
	GetByBranchID(ctx context.Context, branchID string) (*Branch, error)
	List(ctx context.Context) ([]Branch, error)
	Save(ctx context.Context, b *Branch) error
	Delete(ctx context.Context, id uint64) error
}
