package person

import "context"

type Repository interface {
	GetAll(ctx context.Context) ([]Person, error)
	Count(ctx context.Context) (int64, error)
}
