package uow

import (
	"context"

	"goldloan-backend/internal/domain/loan"
	"goldloan-backend/internal/domain/payment"
	"goldloan-backend/internal/domain/voucher"
)

// Repos bundles the repositories that take part in multi-write flows:
// loan + items at origination, payment + loan mutation, loan + proceeds
// voucher at auction.
type Repos struct {
	Loans    loan.Repository
	Payments payment.Repository
	Vouchers voucher.Repository
}

type UnitOfWork interface {
	// WithinTx runs fn inside one storage transaction; either every write in
	// fn lands or none does.
	WithinTx(ctx context.Context, fn func(r Repos) error) error
	// WithinLoanTx loads the loan by business id inside the transaction and
	// passes it in, so read-modify-write flows start from a fresh row.
	WithinLoanTx(ctx context.Context, loanID string, fn func(r Repos, l *loan.Loan) error) error
}
