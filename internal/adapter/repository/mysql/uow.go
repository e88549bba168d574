package mysql

import (
	"context"
	"errors"

	"goldloan-backend/internal/domain/apperr"
	loanDomain "goldloan-backend/internal/domain/loan"
	"goldloan-backend/internal/domain/uow"

	"gorm.io/gorm"
)

// GormUoW runs multi-write flows inside a single gorm transaction, handing
// the callback repositories bound to that transaction.
type GormUoW struct{ db *gorm.DB }

func NewGormUoW(db *gorm.DB) *GormUoW { return &GormUoW{db: db} }

func (u *GormUoW) WithinTx(ctx context.Context, fn func(r uow.Repos) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(uow.Repos{
			Loans:    &LoanRepository{db: tx},
			Payments: &PaymentRepository{db: tx},
			Vouchers: &VoucherRepository{db: tx},
		})
	})
}

func (u *GormUoW) WithinLoanTx(ctx context.Context, loanID string, fn func(r uow.Repos, l *loanDomain.Loan) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		loans := &LoanRepository{db: tx}
		l, err := loans.getByLoanIDForUpdate(ctx, loanID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("loan")
			}
			return err
		}
		return fn(uow.Repos{
			Loans:    loans,
			Payments: &PaymentRepository{db: tx},
			Vouchers: &VoucherRepository{db: tx},
		}, l)
	})
}
