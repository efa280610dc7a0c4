package persistence

import (
	"context"
	"encoding/json"
	"fmt"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/scoutline/scoutline/modules/summary/domain/entities/rollup"
	"github.com/scoutline/scoutline/pkg/composables"
	"github.com/scoutline/scoutline/pkg/repo"
)

const organizationSummaryInsert = `
INSERT INTO organization_summary (
	org_id, name, org_type, sport, industry, is_active,
	parent_org_id, parent_org_name,
	total_employees, current_employees, executive_count,
	departments, role_distribution,
	recent_hires_30d, recent_departures_30d,
	last_updated
)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12::jsonb,$13::jsonb,$14,$15,NOW())`

type PgOrganizationSummaryRepository struct {
	batchSize int
}

func NewOrganizationSummaryRepository(batchSize int) rollup.OrganizationSummaryRepository {
	if batchSize <= 0 {
		batchSize = 100
	}
	return &PgOrganizationSummaryRepository{batchSize: batchSize}
}

func (r *PgOrganizationSummaryRepository) ReplaceAll(ctx context.Context, records []rollup.OrganizationSummary) (int, error) {
	batches := 0
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		tx, err := composables.UseTx(txCtx)
		if err != nil {
			return err
		}

		if _, err := tx.Exec(txCtx, `DELETE FROM organization_summary WHERE org_id <> $1`, pgUUID(uuid.Nil)); err != nil {
			return gerrors.Wrap(err, "clear organization_summary")
		}

		for start := 0; start < len(records); start += r.batchSize {
			end := start + r.batchSize
			if end > len(records) {
				end = len(records)
			}
			if err := insertOrganizationSummaryBatch(txCtx, tx, records[start:end]); err != nil {
				return gerrors.Wrapf(err, "insert organization_summary batch %d", batches+1)
			}
			batches++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return batches, nil
}

func insertOrganizationSummaryBatch(ctx context.Context, tx repo.Tx, records []rollup.OrganizationSummary) error {
	batch := &pgx.Batch{}
	for _, rec := range records {
		departments, err := jsonCounts(rec.Departments)
		if err != nil {
			return err
		}
		roleDistribution, err := jsonCounts(rec.RoleDistribution)
		if err != nil {
			return err
		}

		batch.Queue(organizationSummaryInsert,
			pgUUID(rec.OrgID),
			rec.Name,
			rec.OrgType,
			rec.Sport,
			rec.Industry,
			rec.IsActive,
			pgNullableUUID(rec.ParentOrgID),
			pgNullableText(rec.ParentOrgName),
			rec.TotalEmployees,
			rec.CurrentEmployees,
			rec.ExecutiveCount,
			departments,
			roleDistribution,
			rec.RecentHires30d,
			rec.RecentDepartures30d,
		)
	}

	results := tx.SendBatch(ctx, batch)
	defer func() { _ = results.Close() }()
	for range records {
		if _, err := results.Exec(); err != nil {
			return err
		}
	}
	return results.Close()
}

func jsonCounts(m map[string]int) (string, error) {
	if len(m) == 0 {
		return "{}", nil
	}
	b, err := json.Marshal(m)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

const organizationSummarySelect = `
SELECT org_id, name, org_type, sport, industry, is_active,
	parent_org_id, parent_org_name,
	total_employees, current_employees, executive_count,
	departments, role_distribution,
	recent_hires_30d, recent_departures_30d
FROM organization_summary`

func (r *PgOrganizationSummaryRepository) GetPaginated(ctx context.Context, params *rollup.OrganizationSummaryFindParams) ([]rollup.OrganizationSummary, int64, error) {
	if params == nil {
		params = &rollup.OrganizationSummaryFindParams{}
	}

	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, 0, err
	}

	where, args := organizationSummaryFilters(params)

	limit := params.Limit
	if limit <= 0 {
		limit = 100
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	query := organizationSummarySelect + where + fmt.Sprintf(`
ORDER BY current_employees DESC, name
LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)

	rows, err := tx.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out, err := collectOrganizationSummaries(rows)
	if err != nil {
		return nil, 0, err
	}

	var total int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM organization_summary`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func organizationSummaryFilters(params *rollup.OrganizationSummaryFindParams) (string, []any) {
	var (
		conditions []string
		args       []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if params.Name != "" {
		add("name ILIKE $%d", "%"+params.Name+"%")
	}
	if params.OrgType != "" {
		add("org_type = $%d", params.OrgType)
	}
	if params.Sport != "" {
		add("sport = $%d", params.Sport)
	}

	if len(conditions) == 0 {
		return "", nil
	}
	where := "\nWHERE " + conditions[0]
	for _, cond := range conditions[1:] {
		where += " AND " + cond
	}
	return where, args
}

func (r *PgOrganizationSummaryRepository) TopByCurrentEmployees(ctx context.Context, limit int) ([]rollup.OrganizationSummary, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, organizationSummarySelect+`
ORDER BY current_employees DESC, name
LIMIT $1`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrganizationSummaries(rows)
}

func (r *PgOrganizationSummaryRepository) Count(ctx context.Context) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM organization_summary`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func collectOrganizationSummaries(rows pgx.Rows) ([]rollup.OrganizationSummary, error) {
	var out []rollup.OrganizationSummary
	for rows.Next() {
		rec, err := scanOrganizationSummary(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func scanOrganizationSummary(row pgx.Row) (rollup.OrganizationSummary, error) {
	var (
		orgID            uuid.UUID
		name             string
		orgType          pgtype.Text
		sport            pgtype.Text
		industry         pgtype.Text
		isActive         bool
		parentID         pgtype.UUID
		parentName       pgtype.Text
		totalEmployees   int
		currentEmployees int
		executiveCount   int
		departments      []byte
		roleDistribution []byte
		recentHires      int
		recentDepartures int
	)
	if err := row.Scan(
		&orgID, &name, &orgType, &sport, &industry, &isActive,
		&parentID, &parentName,
		&totalEmployees, &currentEmployees, &executiveCount,
		&departments, &roleDistribution,
		&recentHires, &recentDepartures,
	); err != nil {
		return rollup.OrganizationSummary{}, err
	}

	rec := rollup.OrganizationSummary{
		OrgID:               orgID,
		Name:                name,
		IsActive:            isActive,
		ParentOrgID:         uuidPtrFromPg(parentID),
		ParentOrgName:       textPtrFromPg(parentName),
		TotalEmployees:      totalEmployees,
		CurrentEmployees:    currentEmployees,
		ExecutiveCount:      executiveCount,
		Departments:         map[string]int{},
		RoleDistribution:    map[string]int{},
		RecentHires30d:      recentHires,
		RecentDepartures30d: recentDepartures,
	}
	if v := textPtrFromPg(orgType); v != nil {
		rec.OrgType = *v
	}
	if v := textPtrFromPg(sport); v != nil {
		rec.Sport = *v
	}
	if v := textPtrFromPg(industry); v != nil {
		rec.Industry = *v
	}
	if len(departments) > 0 {
		if err := json.Unmarshal(departments, &rec.Departments); err != nil {
			return rollup.OrganizationSummary{}, gerrors.Wrap(err, "decode departments")
		}
	}
	if len(roleDistribution) > 0 {
		if err := json.Unmarshal(roleDistribution, &rec.RoleDistribution); err != nil {
			return rollup.OrganizationSummary{}, gerrors.Wrap(err, "decode role_distribution")
		}
	}
	return rec, nil
}
