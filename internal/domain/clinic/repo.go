package clinic

import "context"

type Repository interface {
	Get(ctx context.Context) (*About, error)
	Upsert(ctx context.Context, a *About) error
}
