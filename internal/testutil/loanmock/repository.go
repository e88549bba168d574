package loanmock

import (
	"context"
	"errors"
	"time"

	"goldloan-backend/internal/domain/loan"
)

// Ensure compile-time compliance
var _ loan.Repository = (*Repo)(nil)

var errUnimplemented = errors.New("loanmock: method not implemented")

// Repo is a function-backed mock that satisfies loan.Repository.
// Fill in the function fields you need in a test; unfilled ones return
// errUnimplemented (or a zero value for write methods).
type Repo struct {
	CreateFn             func(ctx context.Context, l *loan.Loan) error
	GetByLoanIDFn        func(ctx context.Context, loanID string) (*loan.Loan, error)
	SaveFn               func(ctx context.Context, l *loan.Loan) error
	SaveVersionedFn      func(ctx context.Context, l *loan.Loan) error
	ListFn               func(ctx context.Context, f loan.QueryFilter) ([]loan.Loan, error)
	ListMaturedActiveFn  func(ctx context.Context, now time.Time) ([]loan.Loan, error)
	ListCreatedBetweenFn func(ctx context.Context, branchID string, from, to time.Time) ([]loan.Loan, error)
	CountByCustomerRefFn func(ctx context.Context, customerRef uint64) (int64, error)
	CreateItemsFn        func(ctx context.Context, items []loan.Item) error
	ItemsByLoanRefFn     func(ctx context.Context, loanRef uint64) ([]loan.Item, error)
}

func New() *Repo { return &Repo{} }

func (m *Repo) Create(ctx context.Context, l *loan.Loan) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, l)
	}
	return nil
}

func (m *Repo) GetByLoanID(ctx context.Context, loanID string) (*loan.Loan, error) {
	if m.GetByLoanIDFn != nil {
		return m.GetByLoanIDFn(ctx, loanID)
	}
	return nil, errUnimplemented
}

func (m *Repo) Save(ctx context.Context, l *loan.Loan) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, l)
	}
	return nil
}

func (m *Repo) SaveVersioned(ctx context.Context, l *loan.Loan) error {
	if m.SaveVersionedFn != nil {
		return m.SaveVersionedFn(ctx, l)
	}
	return nil
}

func (m *Repo) List(ctx context.Context, f loan.QueryFilter) ([]loan.Loan, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, f)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListMaturedActive(ctx context.Context, now time.Time) ([]loan.Loan, error) {
	if m.ListMaturedActiveFn != nil {
		return m.ListMaturedActiveFn(ctx, now)
	}
	return nil, errUnimplemented
}

func (m *Repo) ListCreatedBetween(ctx context.Context, branchID string, from, to time.Time) ([]loan.Loan, error) {
	if m.ListCreatedBetweenFn != nil {
		return m.ListCreatedBetweenFn(ctx, branchID, from, to)
	}
	return nil, errUnimplemented
}

func (m *Repo) CountByCustomerRef(ctx context.Context, customerRef uint64) (int64, error) {
	if m.CountByCustomerRefFn != nil {
		return m.CountByCustomerRefFn(ctx, customerRef)
	}
	return 0, errUnimplemented
}

func (m *Repo) CreateItems(ctx context.Context, items []loan.Item) error {
	if m.CreateItemsFn != nil {
		return m.CreateItemsFn(ctx, items)
	}
	return nil
}

func (m *Repo) ItemsByLoanRef(ctx context.Context, loanRef uint64) ([]loan.Item, error) {
	if m.ItemsByLoanRefFn != nil {
		return m.ItemsByLoanRefFn(ctx, loanRef)
	}
	return nil, errUnimplemented
}
