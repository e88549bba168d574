package scheme

import "context"

type Repository interface {
	Create(ctx context.Context, s *Scheme) error
	GetByID(ctx context.Context, id uint64) (*Scheme, error)
	GetByName(ctx context.Context, name string) (*Scheme, error)
	ListActive(ctx context.Context) ([]Scheme, error)
	Save(ctx context.Context, s *Scheme) error
}
