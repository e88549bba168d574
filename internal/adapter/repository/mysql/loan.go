package mysql

import (
	"context"
	"time"

	"goldloan-backend/internal/domain/apperr"
	loanDomain "goldloan-backend/internal/domain/loan"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type LoanRepository struct{ db *gorm.DB }

func NewLoanRepository(db *gorm.DB) *LoanRepository { return &LoanRepository{db: db} }

func (r *LoanRepository) Create(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *LoanRepository) Save(ctx context.Context, l *loanDomain.Loan) error {
	return r.db.WithContext(ctx).Save(l).Error
}

// SaveVersioned writes the row only while its stored version still matches
// the snapshot the caller read. A lost race surfaces as apperr.Conflict so
// the engine can retry the whole read-modify-write.
func (r *LoanRepository) SaveVersioned(ctx context.Context, l *loanDomain.Loan) error {
	prev := l.Version
	l.Version = prev + 1
	res := r.db.WithContext(ctx).
		Model(&loanDomain.Loan{}).
		Where("id = ? AND version = ?", l.ID, prev).
		Select("*").
		Omit("id", "created_at").
		Updates(l)
	if res.Error != nil {
		l.Version = prev
		return res.Error
	}
	if res.RowsAffected == 0 {
		l.Version = prev
		return apperr.Conflict("loan was modified concurrently")
	}
	return nil
}

func (r *LoanRepository) GetByLoanID(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).Where("loan_id = ?", loanID).First(&out)
	return &out, res.Error
}

// getByLoanIDForUpdate locks the row inside the surrounding transaction.
func (r *LoanRepository) getByLoanIDForUpdate(ctx context.Context, loanID string) (*loanDomain.Loan, error) {
	var out loanDomain.Loan
	res := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("loan_id = ?", loanID).
		First(&out)
	return &out, res.Error
}

func (r *LoanRepository) List(ctx context.Context, f loanDomain.QueryFilter) ([]loanDomain.Loan, error) {
	q := r.db.WithContext(ctx).Model(&loanDomain.Loan{})
	if f.BranchID != "" {
		q = q.Where("branch_id = ?", f.BranchID)
	}
	if len(f.Statuses) > 0 {
		q = q.Where("status IN ?", f.Statuses)
	}
	var out []loanDomain.Loan
	res := q.Order("created_at DESC").Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListMaturedActive(ctx context.Context, now time.Time) ([]loanDomain.Loan, error) {
	var out []loanDomain.Loan
	res := r.db.WithContext(ctx).
		Where("status = ? AND due_date < ?", loanDomain.StatusActive, now).
		Find(&out)
	return out, res.Error
}

func (r *LoanRepository) ListCreatedBetween(ctx context.Context, branchID string, from, to time.Time) ([]loanDomain.Loan, error) {
	q := r.db.WithContext(ctx).Where("created_at BETWEEN ? AND ?", from, to)
	if branchID != "" {
		q = q.Where("branch_id = ?", branchID)
	}
	var out []loanDomain.Loan
	res := q.Find(&out)
	return out, res.Error
}

func (r *LoanRepository) CountByCustomerRef(ctx context.Context, customerRef uint64) (int64, error) {
	var n int64
	res := r.db.WithContext(ctx).
		Model(&loanDomain.Loan{}).
		Where("customer_ref = ?", customerRef).
		Count(&n)
	return n, res.Error
}

func (r *LoanRepository) CreateItems(ctx context.Context, items []loanDomain.Item) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}

func (r *LoanRepository) ItemsByLoanRef(ctx context.Context, loanRef uint64) ([]loanDomain.Item, error) {
	var out []loanDomain.Item
	res := r.db.WithContext(ctx).Where("loan_ref = ?", loanRef).Find(&out)
	return out, res.Error
}
