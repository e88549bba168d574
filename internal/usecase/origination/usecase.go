package origination

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"goldloan-backend/internal/domain/actor"
	"goldloan-backend/internal/domain/apperr"
	"goldloan-backend/internal/domain/customer"
	"goldloan-backend/internal/domain/goldrate"
	"goldloan-backend/internal/domain/loan"
	"goldloan-backend/internal/domain/notification"
	"goldloan-backend/internal/domain/scheme"
	"goldloan-backend/internal/domain/schemereq"
	"goldloan-backend/internal/domain/uow"
	"goldloan-backend/internal/usecase/master"
	"goldloan-backend/internal/usecase/overdue"
	"goldloan-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	loans     loan.Repository
	customers customer.Repository
	schemes   scheme.Repository
	rates     goldrate.Repository
	requests  schemereq.Repository
	tx        uow.UnitOfWork
	notifier  notification.Notifier

	now func() time.Time
}

func NewUsecase(
	loans loan.Repository,
	customers customer.Repository,
	schemes scheme.Repository,
	rates goldrate.Repository,
	requests schemereq.Repository,
	tx uow.UnitOfWork,
	notifier notification.Notifier,
) *Usecase {
	return &Usecase{
		loans:     loans,
		customers: customers,
		schemes:   schemes,
		rates:     rates,
		requests:  requests,
		tx:        tx,
		notifier:  notifier,
		now:       time.Now,
	}
}

type ItemInput struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	NetWeight   float64  `json:"net_weight"`
	Purity      string   `json:"purity"`
	Photos      []string `json:"photos"`
}

type CreateLoanInput struct {
	CustomerID          string
	SchemeID            uint64
	Items               []ItemInput
	RequestedLoanAmount float64
	PreInterestAmount   float64
	UseOverride         bool
}

// CreateLoan values the pledged items against the latest gold rate,
// enforces the loan-to-value ceiling, and persists the loan with its items
// as one transaction. Any failure leaves no partial loan behind; the caller
// at the upload boundary reacts to the synchronous error by cleaning up
// item photos.
func (u *Usecase) CreateLoan(ctx context.Context, act actor.Actor, in CreateLoanInput) (*loan.Loan, error) {
	if len(in.Items) == 0 {
		return nil, apperr.Validation("at least one pledged item is required")
	}
	if in.RequestedLoanAmount <= 0 {
		return nil, apperr.Validation("loan amount must be positive")
	}
	if in.PreInterestAmount < 0 {
		return nil, apperr.Validation("pre-interest amount cannot be negative")
	}

	cust, err := u.customers.GetByCustomerID(ctx, in.CustomerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("customer")
		}
		return nil, apperr.Internal(err)
	}

	sch, err := u.schemes.GetByID(ctx, in.SchemeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("scheme")
		}
		return nil, apperr.Internal(err)
	}

	appliedRate := sch.InterestRate
	appliedTenure := sch.TenureMonths
	appliedMaxPct := sch.MaxLoanPercentage

	if in.UseOverride {
		req, err := u.requests.LatestApproved(ctx, cust.ID, sch.ID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperr.Validation("no approved custom scheme request found for this customer")
			}
			return nil, apperr.Internal(err)
		}
		appliedRate = req.ProposedInterestRate
		appliedTenure = req.ProposedTenureMonths
		if req.ProposedMaxLoanPct != nil {
			appliedMaxPct = *req.ProposedMaxLoanPct
		}
	}

	rate, err := u.rates.Latest(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Validation("today's gold rate not set by admin")
		}
		return nil, apperr.Internal(err)
	}
	if rate.IsZero() {
		return nil, apperr.Validation("today's gold rate not set by admin")
	}

	// Fail fast: every item's purity must price before any valuation is
	// accepted.
	var totalWeight, totalValuation float64
	for _, it := range in.Items {
		if it.NetWeight <= 0 {
			return nil, apperr.Validation("item %q has non-positive weight", it.Name)
		}
		perGram, err := master.RateForPurity(rate, it.Purity)
		if err != nil {
			return nil, err
		}
		totalWeight += it.NetWeight
		totalValuation += it.NetWeight * perGram
	}

	maxLoan := totalValuation * (appliedMaxPct / 100)
	if in.RequestedLoanAmount > maxLoan {
		return nil, apperr.Validation("loan amount exceeds limit of %.2f", maxLoan)
	}

	loanDate := u.now().UTC()
	pledgeRate, _ := master.RateForPurity(rate, in.Items[0].Purity)

	l := &loan.Loan{
		LoanID:            id.NewLoanID(),
		CustomerRef:       cust.ID,
		SchemeRef:         sch.ID,
		TotalWeight:       totalWeight,
		GoldRateAtPledge:  pledgeRate,
		Valuation:         totalValuation,
		LoanAmount:        in.RequestedLoanAmount,
		InterestRate:      appliedRate,
		PreInterestAmount: in.PreInterestAmount,
		MonthlyInterest:   (in.RequestedLoanAmount * appliedRate / 100) / float64(appliedTenure),
		LoanDate:          loanDate,
		DueDate:           loanDate.AddDate(0, appliedTenure, 0),
		NextPaymentDate:   loanDate.AddDate(0, 1, 0),
		CurrentBalance:    in.RequestedLoanAmount,
		PaymentFrequency:  "monthly",
		Status:            loan.StatusActive,
		CreatedBy:         act.UserID,
		BranchID:          act.BranchID,
	}

	err = u.tx.WithinTx(ctx, func(r uow.Repos) error {
		if err := r.Loans.Create(ctx, l); err != nil {
			return err
		}
		items := make([]loan.Item, len(in.Items))
		for i, it := range in.Items {
			items[i] = loan.Item{
				LoanRef:     l.ID,
				Name:        it.Name,
				Description: it.Description,
				NetWeight:   it.NetWeight,
				Purity:      it.Purity,
				Photos:      strings.Join(it.Photos, ","),
			}
		}
		return r.Loans.CreateItems(ctx, items)
	})
	if err != nil {
		return nil, apperr.Internal(err)
	}

	u.notifier.Notify(ctx, notification.Event{
		Title:         "New Loan Created",
		Message:       fmt.Sprintf("A new loan %s of %.2f has been issued.", l.LoanID, l.LoanAmount),
		Severity:      notification.SeveritySuccess,
		BranchID:      l.BranchID,
		ReferenceID:   l.LoanID,
		ReferenceType: "Loan",
	})
	return l, nil
}

// LoanDetail is the read model for one loan: items, frozen scheme terms and
// the penalty computed at read time.
type LoanDetail struct {
	Loan          loan.Loan       `json:"loan"`
	Items         []loan.Item     `json:"items"`
	Scheme        *scheme.Scheme  `json:"scheme,omitempty"`
	Penalty       overdue.Penalty `json:"penalty"`
	PayableAmount float64         `json:"payable_amount"`
}

func (u *Usecase) GetLoan(ctx context.Context, loanID string) (*LoanDetail, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("loan")
		}
		return nil, apperr.Internal(err)
	}

	items, err := u.loans.ItemsByLoanRef(ctx, l.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	// Missing scheme is tolerated for display; penalty falls back to zero
	// charges.
	sch, err := u.schemes.GetByID(ctx, l.SchemeRef)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Internal(err)
		}
		sch = nil
	}

	pen := overdue.ComputePenalty(l, sch, u.now().UTC())
	return &LoanDetail{
		Loan:          *l,
		Items:         items,
		Scheme:        sch,
		Penalty:       pen,
		PayableAmount: l.CurrentBalance + pen.Amount,
	}, nil
}

// DashboardStats summarizes the loan book visible to the actor: counts per
// status plus the amounts still locked in loans on the book.
type DashboardStats struct {
	ActiveLoans        int64   `json:"active_loans"`
	OverdueLoans       int64   `json:"overdue_loans"`
	ClosedLoans        int64   `json:"closed_loans"`
	AuctionedLoans     int64   `json:"auctioned_loans"`
	OutstandingBalance float64 `json:"outstanding_balance"`
	PledgedValuation   float64 `json:"pledged_valuation"`
}

func (u *Usecase) DashboardStats(ctx context.Context, act actor.Actor, requestedBranch string) (*DashboardStats, error) {
	all, err := u.loans.List(ctx, loan.QueryFilter{BranchID: act.BranchScope(requestedBranch)})
	if err != nil {
		return nil, apperr.Internal(err)
	}
	s := &DashboardStats{}
	for _, l := range all {
		switch l.Status {
		case loan.StatusActive:
			s.ActiveLoans++
		case loan.StatusOverdue:
			s.OverdueLoans++
		case loan.StatusClosed:
			s.ClosedLoans++
		case loan.StatusAuctioned:
			s.AuctionedLoans++
		}
		if l.Status == loan.StatusActive || l.Status == loan.StatusOverdue {
			s.OutstandingBalance += l.CurrentBalance
			s.PledgedValuation += l.Valuation
		}
	}
	return s, nil
}

// ListLoans applies the actor's branch scope; admins may request a specific
// branch explicitly.
func (u *Usecase) ListLoans(ctx context.Context, act actor.Actor, requestedBranch string, statuses []loan.Status) ([]loan.Loan, error) {
	f := loan.QueryFilter{
		BranchID: act.BranchScope(requestedBranch),
		Statuses: statuses,
	}
	out, err := u.loans.List(ctx, f)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}
