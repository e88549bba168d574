package voucher

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, v *Voucher) error
	GetByVoucherID(ctx context.Context, voucherID string) (*Voucher, error)
	Save(ctx context.Context, v *Voucher) error
	Delete(ctx context.Context, id uint64) error
	List(ctx context.Context, branchID string) ([]Voucher, error)
	ListBetween(ctx context.Context, branchID string, from, to time.Time) ([]Voucher, error)
}
