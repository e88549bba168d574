package mysql

import (
	"context"
	"time"

	voucherDomain "goldloan-backend/internal/domain/voucher"

	"gorm.io/gorm"
)

type VoucherRepository struct{ db *gorm.DB }

func NewVoucherRepository(db *gorm.DB) *VoucherRepository { return &VoucherRepository{db: db} }

func (r *VoucherRepository) Create(ctx context.Context, v *voucherDomain.Voucher) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *VoucherRepository) GetByVoucherID(ctx context.Context, voucherID string) (*voucherDomain.Voucher, error) {
	var out voucherDomain.Voucher
	res := r.db.WithContext(ctx).Where("voucher_id = ?", voucherID).First(&out)
	return &out, res.Error
}

func (r *VoucherRepository) Save(ctx context.Context, v *voucherDomain.Voucher) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *VoucherRepository) Delete(ctx context.Context, id uint64) error {
	return r.db.WithContext(ctx).Delete(&voucherDomain.Voucher{}, id).Error
}

func (r *VoucherRepository) List(ctx context.Context, branchID string) ([]voucherDomain.Voucher, error) {
	q := r.db.WithContext(ctx).Model(&voucherDomain.Voucher{})
	if branchID != "" {
		q = q.Where("branch_id = ?", branchID)
	}
	var out []voucherDomain.Voucher
	res := q.Order("date DESC").Find(&out)
	return out, res.Error
}

func (r *VoucherRepository) ListBetween(ctx context.Context, branchID string, from, to time.Time) ([]voucherDomain.Voucher, error) {
	q := r.db.WithContext(ctx).
		Model(&voucherDomain.Voucher{}).
		Where("date BETWEEN ? AND ?", from, to)
	if branchID != "" {
		q = q.Where("branch_id = ?", branchID)
	}
	var out []voucherDomain.Voucher
	res := q.Order("date DESC").Find(&out)
	return out, res.Error
}
