package schemereq

import "context"

type ListFilter struct {
	StaffID string
	Status  Status
}

type Repository interface {
	Create(ctx context.Context, r *SchemeRequest) error
	GetByRequestID(ctx context.Context, requestID string) (*SchemeRequest, error)
	Save(ctx context.Context, r *SchemeRequest) error
	List(ctx context.Context, f ListFilter) ([]SchemeRequest, error)
	// LatestApproved returns the most recently created approved request for
	// the exact (customer, scheme) pair. Multiple approved requests may
	// coexist; only the newest is honored.
	LatestApproved(ctx context.Context, customerRef, schemeRef uint64) (*SchemeRequest, error)
}
