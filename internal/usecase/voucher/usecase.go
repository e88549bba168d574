package voucher

import (
	"context"
	"errors"
	"time"

	"goldloan-backend/internal/domain/actor"
	"goldloan-backend/internal/domain/apperr"
	domain "goldloan-backend/internal/domain/voucher"
	"goldloan-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	vouchers domain.Repository

	now func() time.Time
}

func NewUsecase(vouchers domain.Repository) *Usecase {
	return &Usecase{vouchers: vouchers, now: time.Now}
}

type Input struct {
	Type        string
	Category    string
	Amount      float64
	Description string
	Date        time.Time
}

func (u *Usecase) Create(ctx context.Context, act actor.Actor, in Input) (*domain.Voucher, error) {
	if in.Type == "" || in.Category == "" {
		return nil, apperr.Validation("voucher type and category are required")
	}
	if in.Amount <= 0 {
		return nil, apperr.Validation("voucher amount must be positive")
	}
	when := in.Date
	if when.IsZero() {
		when = u.now().UTC()
	}
	v := &domain.Voucher{
		VoucherID:   id.NewID32(),
		Type:        in.Type,
		Category:    in.Category,
		Amount:      in.Amount,
		Description: in.Description,
		Date:        when,
		CreatedBy:   act.UserID,
		BranchID:    act.BranchID,
	}
	if err := u.vouchers.Create(ctx, v); err != nil {
		return nil, apperr.Internal(err)
	}
	return v, nil
}

func (u *Usecase) Get(ctx context.Context, voucherID string) (*domain.Voucher, error) {
	v, err := u.vouchers.GetByVoucherID(ctx, voucherID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("voucher")
		}
		return nil, apperr.Internal(err)
	}
	return v, nil
}

func (u *Usecase) Update(ctx context.Context, voucherID string, in Input) (*domain.Voucher, error) {
	v, err := u.Get(ctx, voucherID)
	if err != nil {
		return nil, err
	}
	if in.Type != "" {
		v.Type = in.Type
	}
	if in.Category != "" {
		v.Category = in.Category
	}
	if in.Amount > 0 {
		v.Amount = in.Amount
	}
	if in.Description != "" {
		v.Description = in.Description
	}
	if !in.Date.IsZero() {
		v.Date = in.Date
	}
	if err := u.vouchers.Save(ctx, v); err != nil {
		return nil, apperr.Internal(err)
	}
	return v, nil
}

func (u *Usecase) Delete(ctx context.Context, voucherID string) error {
	v, err := u.Get(ctx, voucherID)
	if err != nil {
		return err
	}
	if err := u.vouchers.Delete(ctx, v.ID); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// List returns the branch-scoped journal; a zero date means all days.
func (u *Usecase) List(ctx context.Context, act actor.Actor, requestedBranch string, date time.Time) ([]domain.Voucher, error) {
	branchID := act.BranchScope(requestedBranch)
	if date.IsZero() {
		out, err := u.vouchers.List(ctx, branchID)
		if err != nil {
			return nil, apperr.Internal(err)
		}
		return out, nil
	}
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	end := start.Add(24*time.Hour - time.Second)
	out, err := u.vouchers.ListBetween(ctx, branchID, start, end)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}
