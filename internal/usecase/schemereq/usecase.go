package schemereq

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"goldloan-backend/internal/domain/actor"
	"goldloan-backend/internal/domain/apperr"
	"goldloan-backend/internal/domain/notification"
	domain "goldloan-backend/internal/domain/schemereq"
	"goldloan-backend/pkg/id"

	"gorm.io/gorm"
)

type Usecase struct {
	requests domain.Repository
	notifier notification.Notifier
}

func NewUsecase(requests domain.Repository, notifier notification.Notifier) *Usecase {
	return &Usecase{requests: requests, notifier: notifier}
}

type CreateInput struct {
	CustomerRef          uint64
	SchemeRef            uint64
	ProposedInterestRate float64
	ProposedTenureMonths int
	ProposedMaxLoanPct   *float64
	Reason               string
}

func (u *Usecase) Create(ctx context.Context, act actor.Actor, in CreateInput) (*domain.SchemeRequest, error) {
	if in.CustomerRef == 0 || in.SchemeRef == 0 || strings.TrimSpace(in.Reason) == "" {
		return nil, apperr.Validation("missing required fields")
	}
	if in.ProposedInterestRate <= 0 || in.ProposedTenureMonths <= 0 {
		return nil, apperr.Validation("proposed interest rate and tenure must be positive")
	}
	if in.ProposedMaxLoanPct != nil && *in.ProposedMaxLoanPct <= 0 {
		return nil, apperr.Validation("proposed max loan percentage must be positive")
	}

	r := &domain.SchemeRequest{
		RequestID:            id.NewID32(),
		StaffID:              act.UserID,
		CustomerRef:          in.CustomerRef,
		SchemeRef:            in.SchemeRef,
		BranchID:             act.BranchID,
		ProposedInterestRate: in.ProposedInterestRate,
		ProposedTenureMonths: in.ProposedTenureMonths,
		ProposedMaxLoanPct:   in.ProposedMaxLoanPct,
		Reason:               in.Reason,
		Status:               domain.StatusPending,
	}
	if err := u.requests.Create(ctx, r); err != nil {
		return nil, apperr.Internal(err)
	}

	// Admin-only notification: branch left empty on purpose.
	u.notifier.Notify(ctx, notification.Event{
		Title:         "New Scheme Customization Request",
		Message:       fmt.Sprintf("Staff %s requested scheme customization for a customer.", act.UserID),
		Severity:      notification.SeverityWarning,
		ReferenceID:   r.RequestID,
		ReferenceType: "SchemeRequest",
	})
	return r, nil
}

type ReviewInput struct {
	Approve      bool
	AdminComment string
}

// Review transitions a pending request to approved or rejected, exactly
// once. A request that already left pending cannot be reviewed again.
func (u *Usecase) Review(ctx context.Context, act actor.Actor, requestID string, in ReviewInput) (*domain.SchemeRequest, error) {
	r, err := u.Get(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if r.Status != domain.StatusPending {
		return nil, apperr.Validation("request is already %s", r.Status)
	}

	if in.Approve {
		r.Status = domain.StatusApproved
	} else {
		r.Status = domain.StatusRejected
	}
	r.ReviewedBy = act.UserID
	r.AdminComment = in.AdminComment
	if err := u.requests.Save(ctx, r); err != nil {
		return nil, apperr.Internal(err)
	}

	sev := notification.SeveritySuccess
	if !in.Approve {
		sev = notification.SeverityError
	}
	u.notifier.Notify(ctx, notification.Event{
		Title:         fmt.Sprintf("Scheme Request %s", strings.ToUpper(string(r.Status))),
		Message:       fmt.Sprintf("Request for customer customization has been %s.", r.Status),
		Severity:      sev,
		BranchID:      r.BranchID,
		ReferenceID:   r.RequestID,
		ReferenceType: "SchemeRequest",
	})
	return r, nil
}

func (u *Usecase) Get(ctx context.Context, requestID string) (*domain.SchemeRequest, error) {
	r, err := u.requests.GetByRequestID(ctx, requestID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("scheme request")
		}
		return nil, apperr.Internal(err)
	}
	return r, nil
}

// List is actor-scoped: staff see their own requests, admins everything
// (optionally filtered by status).
func (u *Usecase) List(ctx context.Context, act actor.Actor, status domain.Status) ([]domain.SchemeRequest, error) {
	f := domain.ListFilter{Status: status}
	if act.Role == actor.RoleStaff {
		f.StaffID = act.UserID
	}
	out, err := u.requests.List(ctx, f)
	if err != nil {
		return nil, apperr.Internal(err)
	}
	return out, nil
}

// FindApprovedOverride returns the newest approved request for the exact
// (customer, scheme) pair, or NotFound. Callers must not assume there is at
// most one approved request per pair.
func (u *Usecase) FindApprovedOverride(ctx context.Context, customerRef, schemeRef uint64) (*domain.SchemeRequest, error) {
	r, err := u.requests.LatestApproved(ctx, customerRef, schemeRef)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("approved scheme request")
		}
		return nil, apperr.Internal(err)
	}
	return r, nil
}
