package rollup

import "context"

// NetworkStatusRepository owns the network_status table. ReplaceAll swaps the
// full table contents atomically: delete plus batched inserts in one
// transaction, so readers never observe a half-replaced table and a failed
// refresh leaves the previous contents in place.
type NetworkStatusRepository interface {
	ReplaceAll(ctx context.Context, records []NetworkStatus) (batches int, err error)
	GetPaginated(ctx context.Context, params *NetworkStatusFindParams) ([]NetworkStatus, int64, error)
	Count(ctx context.Context) (int64, error)
	CountExecutives(ctx context.Context) (int64, error)
	CountCurrentlyEmployed(ctx context.Context) (int64, error)
}

type OrganizationSummaryRepository interface {
	ReplaceAll(ctx context.Context, records []OrganizationSummary) (batches int, err error)
	GetPaginated(ctx context.Context, params *OrganizationSummaryFindParams) ([]OrganizationSummary, int64, error)
	TopByCurrentEmployees(ctx context.Context, limit int) ([]OrganizationSummary, error)
	Count(ctx context.Context) (int64, error)
}
