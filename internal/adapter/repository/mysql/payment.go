package mysql

import (
	"context"
	"time"

	paymentDomain "goldloan-backend/internal/domain/payment"

	"gorm.io/gorm"
)

type PaymentRepository struct{ db *gorm.DB }

func NewPaymentRepository(db *gorm.DB) *PaymentRepository { return &PaymentRepository{db: db} }

func (r *PaymentRepository) Create(ctx context.Context, p *paymentDomain.Payment) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepository) ListByLoanRef(ctx context.Context, loanRef uint64) ([]paymentDomain.Payment, error) {
	var out []paymentDomain.Payment
	res := r.db.WithContext(ctx).
		Where("loan_ref = ?", loanRef).
		Order("payment_date DESC").
		Find(&out)
	return out, res.Error
}

func (r *PaymentRepository) ListBetween(ctx context.Context, branchID string, from, to time.Time) ([]paymentDomain.Payment, error) {
	q := r.db.WithContext(ctx).
		Model(&paymentDomain.Payment{}).
		Where("payments.payment_date BETWEEN ? AND ?", from, to)
	if branchID != "" {
		q = q.Joins("JOIN loans ON loans.id = payments.loan_ref").
			Where("loans.branch_id = ?", branchID)
	}
	var out []paymentDomain.Payment
	res := q.Find(&out)
	return out, res.Error
}

func (r *PaymentRepository) SumAmounts(ctx context.Context, t paymentDomain.Type, branchID string) (float64, error) {
	q := r.db.WithContext(ctx).Model(&paymentDomain.Payment{})
	if t != "" {
		q = q.Where("payments.type = ?", t)
	}
	if branchID != "" {
		q = q.Joins("JOIN loans ON loans.id = payments.loan_ref").
			Where("loans.branch_id = ?", branchID)
	}
	var total *float64
	res := q.Select("SUM(payments.amount)").Scan(&total)
	if res.Error != nil {
		return 0, res.Error
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}
