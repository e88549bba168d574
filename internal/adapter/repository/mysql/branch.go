package mysql

import (
	"context"

	branchDomain "goldloan-backend/internal/domain/branch"

	"gorm.io/gorm"
)

type BranchRepository struct{ db *gorm.DB }

func NewBranchRepository(db *gorm.DB) *BranchRepository { return &BranchRepository{db: db} }

func (r *BranchRepository) Create(ctx context.Context, b *branchDomain.Branch) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BranchRepository) GetByBranchID(ctx context.Context, branchID string) (*branchDomain.Branch, error) {
	var out branchDomain.Branch
	res := r.db.WithContext(ctx).Where("branch_id = ?", branchID).First(&out)
	return &out, res.Error
}

func (r *BranchRepository) List(ctx context.Context) ([]branchDomain.Branch, error) {
	var out []branchDomain.Branch
	res := r.db.WithContext(ctx).Order("name").Find(&out)
	return out, res.Error
}

func (r *BranchRepository) Save(ctx context.Context, b *branchDomain.Branch) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *BranchRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&branchDomain.Branch{}, id).Error
}
