package loan

import (
	"context"
	"time"
)

// QueryFilter is the explicit branch/status filter built from the acting
// user's role. Empty fields mean "no restriction".
type QueryFilter struct {
	BranchID string
	Statuses []Status
}

type Repository interface {
	Create(ctx context.Context, l *Loan) error
	GetByLoanID(ctx context.Context, loanID string) (*Loan, error)
	Save(ctx context.Context, l *Loan) error
	// SaveVersioned persists l only if its stored version still matches
	// l.Version; on success the version is bumped. A stale version returns
	// apperr.Conflict.
	SaveVersioned(ctx context.Context, l *Loan) error
	List(ctx context.Context, f QueryFilter) ([]Loan, error)
	// ListMaturedActive returns active loans whose due date already passed.
	ListMaturedActive(ctx context.Context, now time.Time) ([]Loan, error)
	ListCreatedBetween(ctx context.Context, branchID string, from, to time.Time) ([]Loan, error)
	CountByCustomerRef(ctx context.Context, customerRef uint64) (int64, error)

	CreateItems(ctx context.Context, items []Item) error
	ItemsByLoanRef(ctx context.Context, loanRef uint64) ([]Item, error)
}
