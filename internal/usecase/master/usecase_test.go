package master

import (
	"context"
	"testing"
	"time"

	"goldloan-backend/internal/domain/apperr"
	"goldloan-backend/internal/domain/goldrate"
	"goldloan-backend/internal/domain/scheme"

	"gorm.io/gorm"
)

type mockRateRepo struct {
	CreateFn    func(ctx context.Context, r *goldrate.GoldRate) error
	LatestFn    func(ctx context.Context) (*goldrate.GoldRate, error)
	GetByDateFn func(ctx context.Context, day time.Time) (*goldrate.GoldRate, error)
	SaveFn      func(ctx context.Context, r *goldrate.GoldRate) error
	DeleteFn    func(ctx context.Context, id uint64) error
}

func (m *mockRateRepo) Create(ctx context.Context, r *goldrate.GoldRate) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, r)
	}
	return nil
}
func (m *mockRateRepo) Latest(ctx context.Context) (*goldrate.GoldRate, error) {
	if m.LatestFn != nil {
		return m.LatestFn(ctx)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockRateRepo) GetByDate(ctx context.Context, day time.Time) (*goldrate.GoldRate, error) {
	if m.GetByDateFn != nil {
		return m.GetByDateFn(ctx, day)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockRateRepo) Save(ctx context.Context, r *goldrate.GoldRate) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, r)
	}
	return nil
}
func (m *mockRateRepo) Delete(ctx context.Context, id uint64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}
	return nil
}

type mockSchemeRepo struct {
	CreateFn    func(ctx context.Context, s *scheme.Scheme) error
	GetByIDFn   func(ctx context.Context, id uint64) (*scheme.Scheme, error)
	GetByNameFn func(ctx context.Context, name string) (*scheme.Scheme, error)
	SaveFn      func(ctx context.Context, s *scheme.Scheme) error
}

func (m *mockSchemeRepo) Create(ctx context.Context, s *scheme.Scheme) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}
func (m *mockSchemeRepo) GetByID(ctx context.Context, id uint64) (*scheme.Scheme, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockSchemeRepo) GetByName(ctx context.Context, name string) (*scheme.Scheme, error) {
	if m.GetByNameFn != nil {
		return m.GetByNameFn(ctx, name)
	}
	return nil, gorm.ErrRecordNotFound
}
func (m *mockSchemeRepo) ListActive(ctx context.Context) ([]scheme.Scheme, error) { return nil, nil }
func (m *mockSchemeRepo) Save(ctx context.Context, s *scheme.Scheme) error {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, s)
	}
	return nil
}

type stubFetcher struct {
	price float64
	err   error
}

func (s *stubFetcher) Fetch24K(ctx context.Context) (float64, error) { return s.price, s.err }

func TestAddGoldRate_CreatesFirstRecordOfTheDay(t *testing.T) {
	var created *goldrate.GoldRate
	rates := &mockRateRepo{
		CreateFn: func(ctx context.Context, r *goldrate.GoldRate) error {
			created = r
			return nil
		},
	}
	uc := NewUsecase(rates, &mockSchemeRepo{}, nil)

	out, err := uc.AddGoldRate(context.Background(), GoldRateInput{
		Date:           time.Date(2026, 8, 15, 14, 30, 0, 0, time.UTC),
		RatePerGram22K: 6500,
		RatePerGram20K: 5900,
		RatePerGram18K: 5300,
		UpdatedBy:      "admin-1",
	})
	if err != nil {
		t.Fatalf("AddGoldRate: %v", err)
	}
	if created == nil {
		t.Fatal("record not created")
	}
	// The submission time truncates to the calendar day.
	want := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	if !out.RateDate.Equal(want) {
		t.Fatalf("RateDate = %v, want %v", out.RateDate, want)
	}
	if out.RatePerGram22K != 6500 || out.UpdatedBy != "admin-1" {
		t.Fatalf("unexpected record: %+v", out)
	}
}

func TestAddGoldRate_SecondSubmissionOverwrites(t *testing.T) {
	existing := &goldrate.GoldRate{
		ID:             7,
		RateDate:       time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
		RatePerGram22K: 6000,
		UpdatedBy:      "admin-1",
	}
	saved := false
	rates := &mockRateRepo{
		GetByDateFn: func(ctx context.Context, day time.Time) (*goldrate.GoldRate, error) {
			return existing, nil
		},
		SaveFn: func(ctx context.Context, r *goldrate.GoldRate) error {
			saved = true
			return nil
		},
		CreateFn: func(ctx context.Context, r *goldrate.GoldRate) error {
			t.Fatal("must update in place, not create a second record")
			return nil
		},
	}
	uc := NewUsecase(rates, &mockSchemeRepo{}, nil)

	out, err := uc.AddGoldRate(context.Background(), GoldRateInput{
		Date:           existing.RateDate,
		RatePerGram22K: 6600,
		RatePerGram20K: 6000,
		RatePerGram18K: 5400,
		UpdatedBy:      "admin-2",
	})
	if err != nil {
		t.Fatalf("AddGoldRate: %v", err)
	}
	if !saved {
		t.Fatal("existing record not saved")
	}
	if out.ID != 7 || out.RatePerGram22K != 6600 || out.UpdatedBy != "admin-2" {
		t.Fatalf("overwrite did not stick: %+v", out)
	}
}

func TestAddGoldRate_RejectsNegative(t *testing.T) {
	uc := NewUsecase(&mockRateRepo{}, &mockSchemeRepo{}, nil)
	_, err := uc.AddGoldRate(context.Background(), GoldRateInput{RatePerGram22K: -1})
	if !apperr.IsValidation(err) {
		t.Fatalf("want validation error, got %v", err)
	}
}

func TestLatestGoldRate_MissingOrAllZero(t *testing.T) {
	uc := NewUsecase(&mockRateRepo{}, &mockSchemeRepo{}, nil)
	if _, err := uc.LatestGoldRate(context.Background()); !apperr.IsNotFound(err) {
		t.Fatalf("no record: want NotFound, got %v", err)
	}

	uc = NewUsecase(&mockRateRepo{
		LatestFn: func(ctx context.Context) (*goldrate.GoldRate, error) {
			return &goldrate.GoldRate{}, nil
		},
	}, &mockSchemeRepo{}, nil)
	if _, err := uc.LatestGoldRate(context.Background()); !apperr.IsNotFound(err) {
		t.Fatalf("all-zero record: want NotFound, got %v", err)
	}
}

func TestRateForPurity(t *testing.T) {
	r := &goldrate.GoldRate{RatePerGram22K: 6500, RatePerGram20K: 5900}

	if got, err := RateForPurity(r, goldrate.Purity22K); err != nil || got != 6500 {
		t.Fatalf("22k: got %.2f, %v", got, err)
	}
	if _, err := RateForPurity(r, "24k"); !apperr.IsValidation(err) {
		t.Fatalf("unknown purity: want validation error, got %v", err)
	}
	// 18k tier unset: must error, never price at zero.
	if _, err := RateForPurity(r, goldrate.Purity18K); !apperr.IsValidation(err) {
		t.Fatalf("unset tier: want validation error, got %v", err)
	}
}

func TestRefreshMarketRate_DerivesTiersFromSpot(t *testing.T) {
	var created *goldrate.GoldRate
	rates := &mockRateRepo{
		CreateFn: func(ctx context.Context, r *goldrate.GoldRate) error {
			created = r
			return nil
		},
	}
	uc := NewUsecase(rates, &mockSchemeRepo{}, &stubFetcher{price: 7000})

	if err := uc.RefreshMarketRate(context.Background()); err != nil {
		t.Fatalf("RefreshMarketRate: %v", err)
	}
	if created == nil {
		t.Fatal("market rate not stored")
	}
	if created.RatePerGram22K != 6412 { // round(7000 * 0.916)
		t.Fatalf("22k = %.2f, want 6412", created.RatePerGram22K)
	}
	if created.RatePerGram20K != 5831 { // round(7000 * 0.833)
		t.Fatalf("20k = %.2f, want 5831", created.RatePerGram20K)
	}
	if created.RatePerGram18K != 5250 {
		t.Fatalf("18k = %.2f, want 5250", created.RatePerGram18K)
	}
	if created.UpdatedBy != "market-sync" {
		t.Fatalf("UpdatedBy = %q", created.UpdatedBy)
	}
}

func TestRefreshMarketRate_AdminRateWins(t *testing.T) {
	rates := &mockRateRepo{
		GetByDateFn: func(ctx context.Context, day time.Time) (*goldrate.GoldRate, error) {
			return &goldrate.GoldRate{RatePerGram22K: 6500}, nil
		},
		CreateFn: func(ctx context.Context, r *goldrate.GoldRate) error {
			t.Fatal("must not overwrite an admin-set rate")
			return nil
		},
	}
	uc := NewUsecase(rates, &mockSchemeRepo{}, &stubFetcher{price: 7000})
	if err := uc.RefreshMarketRate(context.Background()); err != nil {
		t.Fatalf("RefreshMarketRate: %v", err)
	}
}

func TestRefreshMarketRate_NoFetcherIsNoop(t *testing.T) {
	uc := NewUsecase(&mockRateRepo{}, &mockSchemeRepo{}, nil)
	if err := uc.RefreshMarketRate(context.Background()); err != nil {
		t.Fatalf("nil fetcher must be a no-op: %v", err)
	}
}

func TestRefreshMarketRate_BadSpot(t *testing.T) {
	uc := NewUsecase(&mockRateRepo{}, &mockSchemeRepo{}, &stubFetcher{price: 0})
	if err := uc.RefreshMarketRate(context.Background()); !apperr.IsValidation(err) {
		t.Fatalf("non-positive spot: want validation error, got %v", err)
	}
}

func validScheme() SchemeInput {
	return SchemeInput{
		SchemeName:        "Standard Gold Loan",
		InterestRate:      12,
		TenureMonths:      12,
		MaxLoanPercentage: 75,
		PenalInterestRate: 6,
		OverdueFine:       500,
	}
}

func TestAddScheme(t *testing.T) {
	var created *scheme.Scheme
	schemes := &mockSchemeRepo{
		CreateFn: func(ctx context.Context, s *scheme.Scheme) error {
			created = s
			return nil
		},
	}
	uc := NewUsecase(&mockRateRepo{}, schemes, nil)

	out, err := uc.AddScheme(context.Background(), validScheme())
	if err != nil {
		t.Fatalf("AddScheme: %v", err)
	}
	if created == nil || !out.IsActive {
		t.Fatalf("scheme must be created active: %+v", out)
	}
}

func TestAddScheme_Validation(t *testing.T) {
	uc := NewUsecase(&mockRateRepo{}, &mockSchemeRepo{}, nil)

	for _, tc := range []struct {
		name string
		mut  func(*SchemeInput)
	}{
		{"missing name", func(in *SchemeInput) { in.SchemeName = "" }},
		{"zero interest", func(in *SchemeInput) { in.InterestRate = 0 }},
		{"zero tenure", func(in *SchemeInput) { in.TenureMonths = 0 }},
		{"zero ltv cap", func(in *SchemeInput) { in.MaxLoanPercentage = 0 }},
	} {
		in := validScheme()
		tc.mut(&in)
		if _, err := uc.AddScheme(context.Background(), in); !apperr.IsValidation(err) {
			t.Fatalf("%s: want validation error, got %v", tc.name, err)
		}
	}
}

func TestAddScheme_DuplicateName(t *testing.T) {
	schemes := &mockSchemeRepo{
		GetByNameFn: func(ctx context.Context, name string) (*scheme.Scheme, error) {
			return &scheme.Scheme{SchemeName: name}, nil
		},
	}
	uc := NewUsecase(&mockRateRepo{}, schemes, nil)
	if _, err := uc.AddScheme(context.Background(), validScheme()); !apperr.IsValidation(err) {
		t.Fatalf("duplicate name: want validation error, got %v", err)
	}
}

func TestUpdateScheme_PartialEdit(t *testing.T) {
	stored := &scheme.Scheme{
		ID:                3,
		SchemeName:        "Standard Gold Loan",
		InterestRate:      12,
		TenureMonths:      12,
		MaxLoanPercentage: 75,
		PenalInterestRate: 6,
		OverdueFine:       500,
		IsActive:          true,
	}
	schemes := &mockSchemeRepo{
		GetByIDFn: func(ctx context.Context, id uint64) (*scheme.Scheme, error) {
			return stored, nil
		},
	}
	uc := NewUsecase(&mockRateRepo{}, schemes, nil)

	out, err := uc.UpdateScheme(context.Background(), 3, SchemeInput{InterestRate: 10})
	if err != nil {
		t.Fatalf("UpdateScheme: %v", err)
	}
	if out.InterestRate != 10 {
		t.Fatalf("InterestRate = %.2f, want 10", out.InterestRate)
	}
	// Untouched fields keep their values.
	if out.TenureMonths != 12 || out.MaxLoanPercentage != 75 {
		t.Fatalf("unrelated fields changed: %+v", out)
	}
}

func TestUpdateScheme_Unknown(t *testing.T) {
	uc := NewUsecase(&mockRateRepo{}, &mockSchemeRepo{}, nil)
	if _, err := uc.UpdateScheme(context.Background(), 99, validScheme()); !apperr.IsNotFound(err) {
		t.Fatalf("want NotFound, got %v", err)
	}
}

func TestDeactivateScheme_SoftDelete(t *testing.T) {
	stored := &scheme.Scheme{ID: 3, SchemeName: "Standard Gold Loan", IsActive: true}
	var saved *scheme.Scheme
	schemes := &mockSchemeRepo{
		GetByIDFn: func(ctx context.Context, id uint64) (*scheme.Scheme, error) {
			return stored, nil
		},
		SaveFn: func(ctx context.Context, s *scheme.Scheme) error {
			saved = s
			return nil
		},
	}
	uc := NewUsecase(&mockRateRepo{}, schemes, nil)

	if err := uc.DeactivateScheme(context.Background(), 3); err != nil {
		t.Fatalf("DeactivateScheme: %v", err)
	}
	if saved == nil || saved.IsActive {
		t.Fatal("scheme must be saved inactive")
	}
}
