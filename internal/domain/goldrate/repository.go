package goldrate

import (
	"context"
	"time"
)

type Repository interface {
	Create(ctx context.Context, r *GoldRate) error
	// Latest returns the most recent record by rate date regardless of the
	// caller's clock; callers needing "today specifically" check RateDate.
	Latest(ctx context.Context) (*GoldRate, error)
	GetByDate(ctx context.Context, day time.Time) (*GoldRate, error)
	Save(ctx context.Context, r *GoldRate) error
	Delete(ctx context.Context, id uint64) error
}
