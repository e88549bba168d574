package payment

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	ListByLoanRef(ctx context.Context, loanRef uint64) ([]Payment, error)
	// ListBetween returns payments in [from, to], restricted to the loans of
	// one branch when branchID is non-empty.
	ListBetween(ctx context.Context, branchID string, from, to time.Time) ([]Payment, error)
	// SumAmounts returns the total paid, optionally restricted to one type
	// (empty type means all) and to the loans of one branch (empty branch
	// means all branches).
	SumAmounts(ctx context.Context, t Type, branchID string) (float64, error)
}
