package role

import "context"

type Repository interface {
	// GetAll returns the full role history, current and closed.
	GetAll(ctx context.Context) ([]Role, error)
	// GetCurrent returns only roles with is_current = true.
	GetCurrent(ctx context.Context) ([]Role, error)
	Count(ctx context.Context) (int64, error)
}
