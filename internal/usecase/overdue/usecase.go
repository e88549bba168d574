package overdue

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"goldloan-backend/internal/domain/apperr"
	"goldloan-backend/internal/domain/loan"
	"goldloan-backend/internal/domain/notification"
	"goldloan-backend/internal/domain/scheme"
)

type Usecase struct {
	loans    loan.Repository
	notifier notification.Notifier
}

func NewUsecase(loans loan.Repository, notifier notification.Notifier) *Usecase {
	return &Usecase{loans: loans, notifier: notifier}
}

// Sweep flags every active loan whose due date has passed as overdue and
// notifies the loan's branch. The query filters on status=active, so a
// re-run over already-overdue loans touches nothing and sends nothing.
// Writes go through the version check: a loan mutated after the snapshot
// was taken (a payment or settlement landing mid-sweep) is skipped, never
// overwritten, and the next run re-evaluates it.
func (u *Usecase) Sweep(ctx context.Context, now time.Time) (int, error) {
	matured, err := u.loans.ListMaturedActive(ctx, now)
	if err != nil {
		return 0, apperr.Internal(err)
	}
	if len(matured) == 0 {
		log.Println("overdue sweep: no new overdue loans")
		return 0, nil
	}

	flagged := 0
	for i := range matured {
		l := &matured[i]
		l.Status = loan.StatusOverdue
		if err := u.loans.SaveVersioned(ctx, l); err != nil {
			if apperr.IsConflict(err) {
				log.Printf("overdue sweep: %s changed since snapshot, skipping", l.LoanID)
				continue
			}
			log.Printf("overdue sweep: save %s: %v", l.LoanID, err)
			continue
		}
		flagged++
		u.notifier.Notify(ctx, notification.Event{
			Title:         "Loan Overdue Alert",
			Message:       fmt.Sprintf("Loan %s (Amt: %.2f) is now OVERDUE.", l.LoanID, l.LoanAmount),
			Severity:      notification.SeverityWarning,
			BranchID:      l.BranchID,
			ReferenceID:   l.LoanID,
			ReferenceType: "Loan",
		})
	}
	log.Printf("overdue sweep: flagged %d of %d matured loans", flagged, len(matured))
	return flagged, nil
}

// Penalty is a read-time computation; it is never persisted.
type Penalty struct {
	DaysOverdue   int     `json:"days_overdue"`
	PenalInterest float64 `json:"penal_interest"`
	FlatFine      float64 `json:"flat_fine"`
	Amount        float64 `json:"amount"`
	Details       string  `json:"details"`
}

// ComputePenalty derives the overdue charges for a loan at the given
// instant. A closed loan or one still inside its tenure owes nothing.
// Penal interest is a simple daily-prorated annual rate on the current
// balance (not the original principal); the fine is flat; the total is
// rounded up to the next whole currency unit.
func ComputePenalty(l *loan.Loan, s *scheme.Scheme, now time.Time) Penalty {
	if l.Status == loan.StatusClosed || !now.After(l.DueDate) {
		return Penalty{Details: "No penalty"}
	}

	days := int(math.Ceil(math.Abs(now.Sub(l.DueDate).Hours()) / 24))

	var penalInterest, flatFine float64
	if s != nil && s.PenalInterestRate > 0 {
		penalInterest = (l.CurrentBalance * s.PenalInterestRate * (float64(days) / 365)) / 100
	}
	if s != nil && s.OverdueFine > 0 {
		flatFine = s.OverdueFine
	}

	return Penalty{
		DaysOverdue:   days,
		PenalInterest: penalInterest,
		FlatFine:      flatFine,
		Amount:        math.Ceil(penalInterest + flatFine),
		Details: fmt.Sprintf("Overdue by %d days. Fine: %.2f, Penal Interest: %.2f",
			days, flatFine, penalInterest),
	}
}
