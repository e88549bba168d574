package notification

import "context"

type Repository interface {
	CreateBatch(ctx context.Context, ns []Notification) error
	ListByRecipient(ctx context.Context, recipient string) ([]Notification, error)
	MarkRead(ctx context.Context, id uint64, recipient string) error
}

// Notifier is implemented by the fan-out service. Engines treat it as
// fire-and-forget: a failed notification never fails the operation that
// emitted it.
type Notifier interface {
	Notify(ctx context.Context, ev Event)
}
