package persistence

import (
	"context"
	"fmt"
	"time"

	gerrors "github.com/go-faster/errors"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/scoutline/scoutline/modules/summary/domain/entities/rollup"
	"github.com/scoutline/scoutline/pkg/composables"
	"github.com/scoutline/scoutline/pkg/repo"
)

const networkStatusInsert = `
INSERT INTO network_status (
	person_id, full_name, first_name, last_name, linkedin_url,
	current_job_title, current_department, current_standardized_department,
	current_organization, current_org_type, current_sport, current_industry,
	role_start_date, is_executive, current_roles_count, total_roles_count,
	created_at, last_updated
)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,NOW())`

type PgNetworkStatusRepository struct {
	batchSize int
}

func NewNetworkStatusRepository(batchSize int) rollup.NetworkStatusRepository {
	if batchSize <= 0 {
		batchSize = 200
	}
	return &PgNetworkStatusRepository{batchSize: batchSize}
}

// ReplaceAll deletes all rows and reinserts records in one transaction. Any
// batch failure rolls everything back, leaving the previous table contents
// visible to readers. The delete carries a never-false predicate because the
// store rejects unfiltered deletes.
func (r *PgNetworkStatusRepository) ReplaceAll(ctx context.Context, records []rollup.NetworkStatus) (int, error) {
	batches := 0
	err := composables.InTx(ctx, func(txCtx context.Context) error {
		tx, err := composables.UseTx(txCtx)
		if err != nil {
			return err
		}

		if _, err := tx.Exec(txCtx, `DELETE FROM network_status WHERE id <> $1`, pgUUID(uuid.Nil)); err != nil {
			return gerrors.Wrap(err, "clear network_status")
		}

		for start := 0; start < len(records); start += r.batchSize {
			end := start + r.batchSize
			if end > len(records) {
				end = len(records)
			}
			if err := insertNetworkStatusBatch(txCtx, tx, records[start:end]); err != nil {
				return gerrors.Wrapf(err, "insert network_status batch %d", batches+1)
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

func insertNetworkStatusBatch(ctx context.Context, tx repo.Tx, records []rollup.NetworkStatus) error {
	batch := &pgx.Batch{}
	for _, rec := range records {
		batch.Queue(networkStatusInsert,
			pgUUID(rec.PersonID),
			rec.FullName,
			rec.FirstName,
			rec.LastName,
			rec.LinkedInURL,
			pgNullableText(rec.CurrentJobTitle),
			pgNullableText(rec.CurrentDepartment),
			pgNullableText(rec.CurrentStandardizedDepartment),
			pgNullableText(rec.CurrentOrganization),
			pgNullableText(rec.CurrentOrgType),
			pgNullableText(rec.CurrentSport),
			pgNullableText(rec.CurrentIndustry),
			pgNullableDate(rec.RoleStartDate),
			rec.IsExecutive,
			rec.CurrentRolesCount,
			rec.TotalRolesCount,
			rec.CreatedAt,
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

func (r *PgNetworkStatusRepository) GetPaginated(ctx context.Context, params *rollup.NetworkStatusFindParams) ([]rollup.NetworkStatus, int64, error) {
	if params == nil {
		params = &rollup.NetworkStatusFindParams{}
	}

	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, 0, err
	}

	where, args := networkStatusFilters(params)

	limit := params.Limit
	if limit <= 0 {
		limit = 100
	}
	offset := params.Offset
	if offset < 0 {
		offset = 0
	}

	query := `
SELECT person_id, full_name, first_name, last_name, linkedin_url,
	current_job_title, current_department, current_standardized_department,
	current_organization, current_org_type, current_sport, current_industry,
	role_start_date, is_executive, current_roles_count, total_roles_count,
	created_at
FROM network_status` + where + fmt.Sprintf(`
ORDER BY full_name, person_id
LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)

	rows, err := tx.Query(ctx, query, append(args, limit, offset)...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var out []rollup.NetworkStatus
	for rows.Next() {
		rec, err := scanNetworkStatus(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM network_status`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func networkStatusFilters(params *rollup.NetworkStatusFindParams) (string, []any) {
	var (
		conditions []string
		args       []any
	)
	add := func(cond string, arg any) {
		args = append(args, arg)
		conditions = append(conditions, fmt.Sprintf(cond, len(args)))
	}

	if params.Name != "" {
		add("full_name ILIKE $%d", "%"+params.Name+"%")
	}
	if params.Organization != "" {
		add("current_organization ILIKE $%d", "%"+params.Organization+"%")
	}
	if params.OrgType != "" {
		add("current_org_type = $%d", params.OrgType)
	}
	if params.Sport != "" {
		add("current_sport = $%d", params.Sport)
	}
	if params.IsExecutive != nil {
		add("is_executive = $%d", *params.IsExecutive)
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

func (r *PgNetworkStatusRepository) Count(ctx context.Context) (int64, error) {
	return r.countWhere(ctx, ``)
}

func (r *PgNetworkStatusRepository) CountExecutives(ctx context.Context) (int64, error) {
	return r.countWhere(ctx, ` WHERE is_executive = TRUE`)
}

func (r *PgNetworkStatusRepository) CountCurrentlyEmployed(ctx context.Context) (int64, error) {
	return r.countWhere(ctx, ` WHERE current_organization IS NOT NULL`)
}

func (r *PgNetworkStatusRepository) countWhere(ctx context.Context, where string) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}
	var count int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM network_status`+where).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanNetworkStatus(row pgx.Row) (rollup.NetworkStatus, error) {
	var (
		personID  uuid.UUID
		fullName  string
		firstName pgtype.Text
		lastName  pgtype.Text
		linkedIn  pgtype.Text
		jobTitle  pgtype.Text
		dept      pgtype.Text
		stdDept   pgtype.Text
		orgName   pgtype.Text
		orgType   pgtype.Text
		sport     pgtype.Text
		industry  pgtype.Text
		startDate pgtype.Date
		isExec    bool
		current   int
		total     int
		createdAt time.Time
	)
	if err := row.Scan(
		&personID, &fullName, &firstName, &lastName, &linkedIn,
		&jobTitle, &dept, &stdDept,
		&orgName, &orgType, &sport, &industry,
		&startDate, &isExec, &current, &total,
		&createdAt,
	); err != nil {
		return rollup.NetworkStatus{}, err
	}

	rec := rollup.NetworkStatus{
		PersonID:                      personID,
		FullName:                      fullName,
		CurrentJobTitle:               textPtrFromPg(jobTitle),
		CurrentDepartment:             textPtrFromPg(dept),
		CurrentStandardizedDepartment: textPtrFromPg(stdDept),
		CurrentOrganization:           textPtrFromPg(orgName),
		CurrentOrgType:                textPtrFromPg(orgType),
		CurrentSport:                  textPtrFromPg(sport),
		CurrentIndustry:               textPtrFromPg(industry),
		RoleStartDate:                 datePtrFromPg(startDate),
		IsExecutive:                   isExec,
		CurrentRolesCount:             current,
		TotalRolesCount:               total,
		CreatedAt:                     createdAt,
	}
	if v := textPtrFromPg(firstName); v != nil {
		rec.FirstName = *v
	}
	if v := textPtrFromPg(lastName); v != nil {
		rec.LastName = *v
	}
	if v := textPtrFromPg(linkedIn); v != nil {
		rec.LinkedInURL = *v
	}
	return rec, nil
}
