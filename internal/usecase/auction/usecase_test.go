package auction

import (
	"context"
	"strings"
	"testing"
	"time"

	"goldloan-backend/internal/domain/actor"
	"goldloan-backend/internal/domain/apperr"
	"goldloan-backend/internal/domain/loan"
	"goldloan-backend/internal/domain/uow"
	"goldloan-backend/internal/domain/voucher"
	"goldloan-backend/internal/testutil/loanmock"
	"goldloan-backend/internal/testutil/notifymock"
	"goldloan-backend/internal/testutil/uowmock"
)

type mockVoucherRepo struct {
	CreateFn func(ctx context.Context, v *voucher.Voucher) error
}

func (m *mockVoucherRepo) Create(ctx context.Context, v *voucher.Voucher) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, v)
	}
	return nil
}
func (m *mockVoucherRepo) GetByVoucherID(ctx context.Context, voucherID string) (*voucher.Voucher, error) {
	return nil, nil
}
func (m *mockVoucherRepo) Save(ctx context.Context, v *voucher.Voucher) error { return nil }
func (m *mockVoucherRepo) Delete(ctx context.Context, id uint64) error        { return nil }
func (m *mockVoucherRepo) List(ctx context.Context, branchID string) ([]voucher.Voucher, error) {
	return nil, nil
}
func (m *mockVoucherRepo) ListBetween(ctx context.Context, branchID string, from, to time.Time) ([]voucher.Voucher, error) {
	return nil, nil
}

func admin() actor.Actor { return actor.Actor{UserID: "admin-1", Role: actor.RoleAdmin} }

func overdueLoan() *loan.Loan {
	return &loan.Loan{
		ID:             1,
		LoanID:         "LN-1",
		LoanAmount:     50000,
		CurrentBalance: 50000,
		Status:         loan.StatusOverdue,
		BranchID:       "BR-01",
		DueDate:        time.Now().AddDate(0, -2, 0),
	}
}

func fixtureFor(l *loan.Loan, vouchers *mockVoucherRepo) (*Usecase, *notifymock.Recorder) {
	loans := &loanmock.Repo{
		GetByLoanIDFn: func(ctx context.Context, loanID string) (*loan.Loan, error) {
			return l, nil
		},
	}
	notifier := notifymock.New()
	tx := uowmock.Passthrough(uow.Repos{Loans: loans, Vouchers: vouchers})
	return NewUsecase(loans, tx, notifier), notifier
}

func TestRecordSale_DisposesLoanAndBooksProceeds(t *testing.T) {
	l := overdueLoan()
	var booked *voucher.Voucher
	vouchers := &mockVoucherRepo{CreateFn: func(ctx context.Context, v *voucher.Voucher) error {
		booked = v
		return nil
	}}
	uc, notifier := fixtureFor(l, vouchers)

	out, err := uc.RecordSale(context.Background(), admin(), "LN-1", RecordSaleInput{
		SaleAmount: 45000,
		BidderName: "Ravi",
	})
	if err != nil {
		t.Fatalf("RecordSale: %v", err)
	}
	if out.Status != loan.StatusAuctioned || out.CurrentBalance != 0 {
		t.Fatalf("loan must be auctioned with zero balance: %+v", out)
	}
	if out.AuctionDate == nil || out.SaleAmount != 45000 || out.BidderName != "Ravi" {
		t.Fatalf("sale fields not recorded: %+v", out)
	}
	if booked == nil {
		t.Fatal("proceeds voucher not created")
	}
	if booked.Type != "income" || booked.Category != "Auction Proceeds" || booked.Amount != 45000 {
		t.Fatalf("unexpected voucher: %+v", booked)
	}
	if booked.BranchID != "BR-01" {
		t.Fatalf("voucher must land in the loan's branch, got %q", booked.BranchID)
	}
	if !strings.Contains(booked.Description, "LN-1") {
		t.Fatalf("voucher description must reference the loan: %q", booked.Description)
	}
	if notifier.Count() != 1 {
		t.Fatalf("want one notification, got %d", notifier.Count())
	}
}

func TestRecordSale_MaturedActiveLoanIsEligible(t *testing.T) {
	// Active but past due: the sweep has not run yet, disposal still works.
	l := overdueLoan()
	l.Status = loan.StatusActive
	uc, _ := fixtureFor(l, &mockVoucherRepo{})

	if _, err := uc.RecordSale(context.Background(), admin(), "LN-1", RecordSaleInput{
		SaleAmount: 45000, BidderName: "Ravi",
	}); err != nil {
		t.Fatalf("matured active loan must be auctionable: %v", err)
	}
}

func TestRecordSale_IneligibleStates(t *testing.T) {
	for _, tc := range []struct {
		name string
		mut  func(*loan.Loan)
	}{
		{"active inside tenure", func(l *loan.Loan) {
			l.Status = loan.StatusActive
			l.DueDate = time.Now().AddDate(0, 2, 0)
		}},
		{"already closed", func(l *loan.Loan) { l.Status = loan.StatusClosed }},
		{"already auctioned", func(l *loan.Loan) { l.Status = loan.StatusAuctioned }},
	} {
		l := overdueLoan()
		tc.mut(l)
		uc, notifier := fixtureFor(l, &mockVoucherRepo{})
		_, err := uc.RecordSale(context.Background(), admin(), "LN-1", RecordSaleInput{
			SaleAmount: 45000, BidderName: "Ravi",
		})
		if !apperr.IsValidation(err) {
			t.Fatalf("%s: want validation error, got %v", tc.name, err)
		}
		if notifier.Count() != 0 {
			t.Fatalf("%s: failed sale must not notify", tc.name)
		}
	}
}

func TestRecordSale_InputValidation(t *testing.T) {
	uc, _ := fixtureFor(overdueLoan(), &mockVoucherRepo{})

	if _, err := uc.RecordSale(context.Background(), admin(), "LN-1", RecordSaleInput{
		SaleAmount: 0, BidderName: "Ravi",
	}); !apperr.IsValidation(err) {
		t.Fatalf("zero sale amount: want validation error, got %v", err)
	}
	if _, err := uc.RecordSale(context.Background(), admin(), "LN-1", RecordSaleInput{
		SaleAmount: 45000,
	}); !apperr.IsValidation(err) {
		t.Fatalf("missing bidder: want validation error, got %v", err)
	}
}

func TestEligibleLoans_BranchScoped(t *testing.T) {
	var gotFilter loan.QueryFilter
	loans := &loanmock.Repo{
		ListFn: func(ctx context.Context, f loan.QueryFilter) ([]loan.Loan, error) {
			gotFilter = f
			return []loan.Loan{*overdueLoan()}, nil
		},
	}
	uc := NewUsecase(loans, uowmock.New(), notifymock.New())

	st := actor.Actor{UserID: "staff-1", Role: actor.RoleStaff, BranchID: "BR-01"}
	out, err := uc.EligibleLoans(context.Background(), st, "BR-99")
	if err != nil {
		t.Fatalf("EligibleLoans: %v", err)
	}
	if gotFilter.BranchID != "BR-01" {
		t.Fatalf("staff must be pinned to own branch, got %q", gotFilter.BranchID)
	}
	if len(gotFilter.Statuses) != 1 || gotFilter.Statuses[0] != loan.StatusOverdue {
		t.Fatalf("must filter on overdue, got %v", gotFilter.Statuses)
	}
	if len(out) != 1 {
		t.Fatalf("want 1 loan, got %d", len(out))
	}
}
