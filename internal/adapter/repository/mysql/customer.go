package mysql

import (
	"context"

	customerDomain "goldloan-backend/internal/domain/customer"

	"gorm.io/gorm"
)

type CustomerRepository struct{ db *gorm.DB }

func NewCustomerRepository(db *gorm.DB) *CustomerRepository { return &CustomerRepository{db: db} }

func (r *CustomerRepository) Create(ctx context.Context, c *customerDomain.Customer) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *CustomerRepository) GetByCustomerID(ctx context.Context, customerID string) (*customerDomain.Customer, error) {
	var out customerDomain.Customer
	res := r.db.WithContext(ctx).Where("customer_id = ?", customerID).First(&out)
	return &out, res.Error
}

func (r *CustomerRepository) Save(ctx context.Context, c *customerDomain.Customer) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CustomerRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&customerDomain.Customer{}, id).Error
}

func (r *CustomerRepository) List(ctx context.Context, branchID string) ([]customerDomain.Customer, error) {
	q := r.db.WithContext(ctx).Model(&customerDomain.Customer{})
	if branchID != "" {
		q = q.Where("branch_id = ?", branchID)
	}
	var out []customerDomain.Customer
	res := q.Order("created_at DESC").Find(&out)
	return out, res.Error
}
