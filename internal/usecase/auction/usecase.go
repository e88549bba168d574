package auction

import (
	"context"
	"fmt"
	"time"

	"goldloan-backend/internal/domain/actor"
	"goldloan-backend/internal/domain/apperr"
	"goldloan-backend/internal/domain/loan"
	"goldloan-backend/internal/domain/notification"
	"goldloan-backend/internal/domain/uow"
	"goldloan-backend/internal/domain/voucher"
	"goldloan-backend/pkg/id"
)

type Usecase struct {
	loans    loan.Repository
	tx       uow.UnitOfWork
	notifier notification.Notifier

	now func() time.Time
}

func NewUsecase(loans loan.Repository, tx uow.UnitOfWork, notifier notification.Notifier) *Usecase {
	return &Usecase{loans: loans, tx: tx, notifier: notifier, now: time.Now}
}

type RecordSaleInput struct {
	SaleAmount    float64
	BidderName    string
	BidderContact string
	Remarks       string
}

// eligible covers loans already swept to overdue plus matured loans the
// sweep has not reached yet, so disposal never waits on job timing.
func eligible(l *loan.Loan, now time.Time) bool {
	if l.Status == loan.StatusOverdue {
		return true
	}
	return l.Status == loan.StatusActive && now.After(l.DueDate)
}

// RecordSale terminally disposes of a defaulted loan: status auctioned,
// balance zeroed, sale recorded, and the proceeds booked as an income
// voucher — all in one transaction. Shortfall or surplus against the
// outstanding liability is not reconciled; the sale is a flat cash-in.
func (u *Usecase) RecordSale(ctx context.Context, act actor.Actor, loanID string, in RecordSaleInput) (*loan.Loan, error) {
	if in.SaleAmount <= 0 {
		return nil, apperr.Validation("sale amount must be positive")
	}
	if in.BidderName == "" {
		return nil, apperr.Validation("bidder name is required")
	}

	now := u.now().UTC()
	var out *loan.Loan

	err := u.tx.WithinLoanTx(ctx, loanID, func(r uow.Repos, l *loan.Loan) error {
		if !eligible(l, now) {
			return apperr.Validation("loan must be overdue to auction")
		}

		auctionDate := now
		l.Status = loan.StatusAuctioned
		l.CurrentBalance = 0
		l.AuctionDate = &auctionDate
		l.SaleAmount = in.SaleAmount
		l.BidderName = in.BidderName
		l.BidderContact = in.BidderContact
		l.AuctionRemarks = in.Remarks

		if err := r.Loans.SaveVersioned(ctx, l); err != nil {
			return err
		}

		v := &voucher.Voucher{
			VoucherID:   id.NewID32(),
			Type:        "income",
			Category:    "Auction Proceeds",
			Amount:      in.SaleAmount,
			Description: fmt.Sprintf("Auction of Loan %s (Bidder: %s)", l.LoanID, in.BidderName),
			Date:        now,
			CreatedBy:   act.UserID,
			BranchID:    l.BranchID,
		}
		if err := r.Vouchers.Create(ctx, v); err != nil {
			return err
		}
		out = l
		return nil
	})
	if err != nil {
		// WithinLoanTx surfaces a missing loan as apperr.NotFound already.
		if apperr.IsNotFound(err) || apperr.IsValidation(err) || apperr.IsConflict(err) {
			return nil, err
		}
		return nil, apperr.Internal(err)
	}

	u.notifier.Notify(ctx, notification.Event{
		Title:         "Loan Auctioned",
		Message:       fmt.Sprintf("Loan %s auctioned for %.2f to %s.", out.LoanID, in.SaleAmount, in.BidderName),
		Severity:      notification.SeverityInfo,
		BranchID:      out.BranchID,
		ReferenceID:   out.LoanID,
		ReferenceType: "Loan",
	})
	return out, nil
}

// EligibleLoans lists overdue loans scoped to the actor's branch.
func (u *Usecase) EligibleLoans(ctx context.Context, act actor.Actor, requestedBranch string) ([]loan.Loan, error) {
	f := loan.QueryFilter{
		BranchID: act.BranchScope(requestedBranch),
		Statuses: []loan.Status{loan.StatusOverdue},
	}
	out, err := u.loans.List(ctx, f)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}
