package payment

import (
	"context"
	"errors"
	"time"

	"goldloan-backend/internal/domain/actor"
	"goldloan-backend/internal/domain/apperr"
	"goldloan-backend/internal/domain/loan"
	domain "goldloan-backend/internal/domain/payment"
	"goldloan-backend/internal/domain/uow"
	"goldloan-backend/pkg/id"

	"gorm.io/gorm"
)

// Concurrent principal payments race on the balance; the whole
// read-modify-write transaction is retried this many times on a version
// conflict before the conflict surfaces.
const maxSaveAttempts = 3

type Usecase struct {
	loans    loan.Repository
	payments domain.Repository
	tx       uow.UnitOfWork

	now func() time.Time
}

func NewUsecase(loans loan.Repository, payments domain.Repository, tx uow.UnitOfWork) *Usecase {
	return &Usecase{loans: loans, payments: payments, tx: tx, now: time.Now}
}

type AddPaymentInput struct {
	LoanID      string
	Amount      float64
	Type        domain.Type
	Mode        domain.Mode
	PaymentDate time.Time
	Remarks     string
}

// AddPayment applies one payment to a loan. The payment row and the loan
// mutation commit as a single transaction; no reader ever observes one
// without the other.
//
// Effects by type:
//   - full_settlement: loan closes and the balance zeroes regardless of the
//     recorded amount (the caller is expected to pass the full payable).
//   - principal: balance decreases; at or below zero it clamps to zero and
//     the loan closes.
//   - interest: balance unchanged; the next payment date advances one
//     calendar month from its prior value, not from today.
//
// Overdue loans still accept collections of every type; an interest payment
// on one advances the next payment date but does not clear the overdue flag.
func (u *Usecase) AddPayment(ctx context.Context, act actor.Actor, in AddPaymentInput) (*domain.Payment, error) {
	if in.Amount <= 0 {
		return nil, apperr.Validation("payment amount must be positive")
	}
	if !in.Type.Valid() {
		return nil, apperr.Validation("invalid payment type %q", string(in.Type))
	}
	mode := in.Mode
	if mode == "" {
		mode = domain.ModeCash
	}
	if !mode.Valid() {
		return nil, apperr.Validation("invalid payment mode %q", string(mode))
	}
	when := in.PaymentDate
	if when.IsZero() {
		when = u.now().UTC()
	}

	var out *domain.Payment
	var lastErr error
	for attempt := 0; attempt < maxSaveAttempts; attempt++ {
		out, lastErr = u.applyOnce(ctx, act, in, mode, when)
		if lastErr == nil || !apperr.IsConflict(lastErr) {
			return out, lastErr
		}
	}
	return nil, lastErr
}

func (u *Usecase) applyOnce(ctx context.Context, act actor.Actor, in AddPaymentInput, mode domain.Mode, when time.Time) (*domain.Payment, error) {
	var created *domain.Payment

	err := u.tx.WithinLoanTx(ctx, in.LoanID, func(r uow.Repos, l *loan.Loan) error {
		if l.Status == loan.StatusClosed {
			return apperr.Validation("loan is already closed")
		}
		if l.Status == loan.StatusAuctioned {
			return apperr.Validation("loan has been auctioned")
		}

		switch in.Type {
		case domain.TypeFullSettlement:
			l.Status = loan.StatusClosed
			l.CurrentBalance = 0
		case domain.TypePrincipal:
			l.CurrentBalance -= in.Amount
			if l.CurrentBalance <= 0 {
				l.CurrentBalance = 0
				l.Status = loan.StatusClosed
			}
		case domain.TypeInterest:
			l.NextPaymentDate = l.NextPaymentDate.AddDate(0, 1, 0)
		}

		p := &domain.Payment{
			PaymentID:   id.NewID32(),
			LoanRef:     l.ID,
			PaymentDate: when,
			Amount:      in.Amount,
			Type:        in.Type,
			Mode:        mode,
			CollectedBy: act.UserID,
			Remarks:     in.Remarks,
		}
		if err := r.Payments.Create(ctx, p); err != nil {
			return err
		}
		if err := r.Loans.SaveVersioned(ctx, l); err != nil {
			return err
		}
		created = p
		return nil
	})
	if err != nil {
		// WithinLoanTx surfaces a missing loan as apperr.NotFound already.
		if apperr.IsNotFound(err) || apperr.IsValidation(err) || apperr.IsConflict(err) {
			return nil, err
		}
		return nil, apperr.Internal(err)
	}
	return created, nil
}

func (u *Usecase) ListByLoan(ctx context.Context, loanID string) ([]domain.Payment, error) {
	l, err := u.loans.GetByLoanID(ctx, loanID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("loan")
		}
		return nil, apperr.Internal(err)
	}
	out, err := u.payments.ListByLoanRef(ctx, l.ID)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}
