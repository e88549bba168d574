package master

import (
	"context"
	"errors"
	"log"
	"math"
	"time"

	"goldloan-backend/internal/domain/apperr"
	"goldloan-backend/internal/domain/goldrate"
	"goldloan-backend/internal/domain/scheme"

	"gorm.io/gorm"
)

// Fine-gold fractions for deriving tier prices from the 24k spot rate.
const (
	fraction22K = 0.916
	fraction20K = 0.833
	fraction18K = 0.750
)

// RateFetcher is the metals market API collaborator. Fetch24K returns the
// spot price per gram of pure gold in the ledger currency.
type RateFetcher interface {
	Fetch24K(ctx context.Context) (float64, error)
}

type Usecase struct {
	rates   goldrate.Repository
	schemes scheme.Repository
	fetcher RateFetcher

	now func() time.Time
}

func NewUsecase(rates goldrate.Repository, schemes scheme.Repository, fetcher RateFetcher) *Usecase {
	return &Usecase{rates: rates, schemes: schemes, fetcher: fetcher, now: time.Now}
}

type GoldRateInput struct {
	Date           time.Time
	RatePerGram22K float64
	RatePerGram20K float64
	RatePerGram18K float64
	UpdatedBy      string
}

// AddGoldRate records the authoritative rate for one calendar day. A second
// submission for the same day overwrites the first (one record per day).
func (u *Usecase) AddGoldRate(ctx context.Context, in GoldRateInput) (*goldrate.GoldRate, error) {
	if in.RatePerGram22K < 0 || in.RatePerGram20K < 0 || in.RatePerGram18K < 0 {
		return nil, apperr.Validation("gold rates cannot be negative")
	}
	day := in.Date
	if day.IsZero() {
		day = u.now().UTC()
	}
	day = startOfDay(day)

	existing, err := u.rates.GetByDate(ctx, day)
	switch {
	case err == nil:
		existing.RatePerGram22K = in.RatePerGram22K
		existing.RatePerGram20K = in.RatePerGram20K
		existing.RatePerGram18K = in.RatePerGram18K
		existing.UpdatedBy = in.UpdatedBy
		if err := u.rates.Save(ctx, existing); err != nil {
			return nil, apperr.Internal(err)
		}
		return existing, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, apperr.Internal(err)
	}

	r := &goldrate.GoldRate{
		RateDate:       day,
		RatePerGram22K: in.RatePerGram22K,
		RatePerGram20K: in.RatePerGram20K,
		RatePerGram18K: in.RatePerGram18K,
		UpdatedBy:      in.UpdatedBy,
	}
	if err := u.rates.Create(ctx, r); err != nil {
		return nil, apperr.Internal(err)
	}
	return r, nil
}

// LatestGoldRate returns the most recent rate record. A missing record, or
// one with no positive tier, surfaces as NotFound.
func (u *Usecase) LatestGoldRate(ctx context.Context) (*goldrate.GoldRate, error) {
	r, err := u.rates.Latest(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("gold rate")
		}
		return nil, apperr.Internal(err)
	}
	if r.IsZero() {
		return nil, apperr.NotFound("gold rate")
	}
	return r, nil
}

// RateForPurity maps a purity label to its per-gram price. An unknown label
// or a non-positive price is an error, never a zero fallback.
func RateForPurity(r *goldrate.GoldRate, purity string) (float64, error) {
	var rate float64
	switch purity {
	case goldrate.Purity22K:
		rate = r.RatePerGram22K
	case goldrate.Purity20K:
		rate = r.RatePerGram20K
	case goldrate.Purity18K:
		rate = r.RatePerGram18K
	default:
		return 0, apperr.Validation("unknown purity %q", purity)
	}
	if rate <= 0 {
		return 0, apperr.Validation("gold rate for %s is not set by admin", purity)
	}
	return rate, nil
}

func (u *Usecase) DeleteGoldRate(ctx context.Context, id uint64) error {
	if err := u.rates.Delete(ctx, id); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

// RefreshMarketRate fills in today's rate from the metals API when no admin
// has set one yet. Runs on the daily scheduler; an existing record for
// today always wins.
func (u *Usecase) RefreshMarketRate(ctx context.Context) error {
	if u.fetcher == nil {
		return nil
	}
	today := startOfDay(u.now().UTC())
	if _, err := u.rates.GetByDate(ctx, today); err == nil {
		log.Printf("rate refresh: rate for %s already set, skipping", today.Format("2006-01-02"))
		return nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Internal(err)
	}

	spot, err := u.fetcher.Fetch24K(ctx)
	if err != nil {
		return err
	}
	if spot <= 0 {
		return apperr.Validation("market returned non-positive spot rate")
	}
	r := &goldrate.GoldRate{
		RateDate:       today,
		RatePerGram22K: math.Round(spot * fraction22K),
		RatePerGram20K: math.Round(spot * fraction20K),
		RatePerGram18K: math.Round(spot * fraction18K),
		UpdatedBy:      "market-sync",
	}
	if err := u.rates.Create(ctx, r); err != nil {
		return apperr.Internal(err)
	}
	log.Printf("rate refresh: stored market rate for %s (22k=%.0f)", today.Format("2006-01-02"), r.RatePerGram22K)
	return nil
}

type SchemeInput struct {
	SchemeName        string
	InterestRate      float64
	TenureMonths      int
	MaxLoanPercentage float64
	PreInterestMonths int
	PenalInterestRate float64
	OverdueFine       float64
	Description       string
}

func (u *Usecase) AddScheme(ctx context.Context, in SchemeInput) (*scheme.Scheme, error) {
	if in.SchemeName == "" {
		return nil, apperr.Validation("scheme name is required")
	}
	if in.InterestRate <= 0 || in.TenureMonths <= 0 || in.MaxLoanPercentage <= 0 {
		return nil, apperr.Validation("interest rate, tenure and max loan percentage must be positive")
	}
	if _, err := u.schemes.GetByName(ctx, in.SchemeName); err == nil {
		return nil, apperr.Validation("scheme %q already exists", in.SchemeName)
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.Internal(err)
	}

	s := &scheme.Scheme{
		SchemeName:        in.SchemeName,
		InterestRate:      in.InterestRate,
		TenureMonths:      in.TenureMonths,
		MaxLoanPercentage: in.MaxLoanPercentage,
		PreInterestMonths: in.PreInterestMonths,
		PenalInterestRate: in.PenalInterestRate,
		OverdueFine:       in.OverdueFine,
		Description:       in.Description,
		IsActive:          true,
	}
	if err := u.schemes.Create(ctx, s); err != nil {
		return nil, apperr.Internal(err)
	}
	return s, nil
}

func (u *Usecase) GetScheme(ctx context.Context, id uint64) (*scheme.Scheme, error) {
	s, err := u.schemes.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("scheme")
		}
		return nil, apperr.Internal(err)
	}
	return s, nil
}

func (u *Usecase) ListSchemes(ctx context.Context) ([]scheme.Scheme, error) {
	out, err := u.schemes.ListActive(ctx)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

// UpdateScheme is the admin edit path. Loans already issued keep the terms
// frozen at origination, so edits only affect future pledges.
func (u *Usecase) UpdateScheme(ctx context.Context, id uint64, in SchemeInput) (*scheme.Scheme, error) {
	s, err := u.GetScheme(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.InterestRate > 0 {
		s.InterestRate = in.InterestRate
	}
	if in.TenureMonths > 0 {
		s.TenureMonths = in.TenureMonths
	}
	if in.MaxLoanPercentage > 0 {
		s.MaxLoanPercentage = in.MaxLoanPercentage
	}
	if in.PreInterestMonths >= 0 {
		s.PreInterestMonths = in.PreInterestMonths
	}
	if in.PenalInterestRate >= 0 {
		s.PenalInterestRate = in.PenalInterestRate
	}
	if in.OverdueFine >= 0 {
		s.OverdueFine = in.OverdueFine
	}
	if in.Description != "" {
		s.Description = in.Description
	}
	if err := u.schemes.Save(ctx, s); err != nil {
		return nil, apperr.Internal(err)
	}
	return s, nil
}

// DeactivateScheme soft-deletes: historical loans must keep resolving the
// scheme, so there is no hard delete.
func (u *Usecase) DeactivateScheme(ctx context.Context, id uint64) error {
	s, err := u.GetScheme(ctx, id)
	if err != nil {
		return err
	}
	s.IsActive = false
	if err := u.schemes.Save(ctx, s); err != nil {
		return apperr.Internal(err)
	}
	return nil
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
