package notify

import (
	"context"
	"log"

	"goldloan-backend/internal/domain/notification"
	"goldloan-backend/internal/domain/user"
)

// Mailer is the optional SMTP sink; nil disables email entirely.
type Mailer interface {
	Send(to, subject, body string) error
}

// Service fans one event out to every active admin plus the active staff of
// the event's branch (admins only when the branch is empty). Every failure
// is logged and swallowed: notifications never fail the operation that
// emitted them.
type Service struct {
	users  user.Repository
	store  notification.Repository
	mailer Mailer
}

func NewService(users user.Repository, store notification.Repository, mailer Mailer) *Service {
	return &Service{users: users, store: store, mailer: mailer}
}

func (s *Service) Notify(ctx context.Context, ev notification.Event) {
	admins, err := s.users.ListActiveAdmins(ctx)
	if err != nil {
		log.Printf("notify: list admins: %v", err)
		return
	}

	recipients := admins
	if ev.BranchID != "" {
		staff, err := s.users.ListActiveStaffByBranch(ctx, ev.BranchID)
		if err != nil {
			log.Printf("notify: list staff for branch %s: %v", ev.BranchID, err)
		} else {
			recipients = append(recipients, staff...)
		}
	}
	if len(recipients) == 0 {
		return
	}

	sev := ev.Severity
	if sev == "" {
		sev = notification.SeverityInfo
	}

	seen := make(map[string]struct{}, len(recipients))
	rows := make([]notification.Notification, 0, len(recipients))
	for _, r := range recipients {
		if _, dup := seen[r.UserID]; dup {
			continue
		}
		seen[r.UserID] = struct{}{}
		rows = append(rows, notification.Notification{
			Recipient:     r.UserID,
			Title:         ev.Title,
			Message:       ev.Message,
			Severity:      sev,
			BranchID:      ev.BranchID,
			ReferenceID:   ev.ReferenceID,
			ReferenceType: ev.ReferenceType,
		})
	}
	if err := s.store.CreateBatch(ctx, rows); err != nil {
		log.Printf("notify: store notifications: %v", err)
		return
	}

	if s.mailer == nil {
		return
	}
	for _, a := range admins {
		if a.Email == "" {
			continue
		}
		if err := s.mailer.Send(a.Email, ev.Title, ev.Message); err != nil {
			log.Printf("notify: email %s: %v", a.Email, err)
		}
	}
}

func (s *Service) ListForRecipient(ctx context.Context, recipient string) ([]notification.Notification, error) {
	return s.store.ListByRecipient(ctx, recipient)
}

func (s *Service) MarkRead(ctx context.Context, id uint64, recipient string) error {
	return s.store.MarkRead(ctx, id, recipient)
}
