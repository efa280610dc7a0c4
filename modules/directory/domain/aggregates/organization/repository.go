package organization

import "context"

type Repository interface {
	GetAll(ctx context.Context) ([]Organization, error)
	Count(ctx context.Context) (int64, error)
}
