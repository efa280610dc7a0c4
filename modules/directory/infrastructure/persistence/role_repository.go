package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/scoutline/scoutline/modules/directory/domain/aggregates/role"
	"github.com/scoutline/scoutline/pkg/composables"
)

const roleSelectColumns = `id, person_id, org_id, job_title, dept, standardized_department,
	start_date, end_date, is_current, is_executive`

type PgRoleRepository struct{}

func NewRoleRepository() role.Repository {
	return &PgRoleRepository{}
}

func (r *PgRoleRepository) GetAll(ctx context.Context) ([]role.Role, error) {
	return r.query(ctx, `SELECT `+roleSelectColumns+` FROM role ORDER BY person_id, start_date, id`)
}

func (r *PgRoleRepository) GetCurrent(ctx context.Context) ([]role.Role, error) {
	return r.query(ctx, `SELECT `+roleSelectColumns+` FROM role WHERE is_current = TRUE ORDER BY person_id, start_date, id`)
}

func (r *PgRoleRepository) Count(ctx context.Context) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM role`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *PgRoleRepository) query(ctx context.Context, sql string) ([]role.Role, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, sql)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []role.Role
	for rows.Next() {
		rec, err := scanRole(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func scanRole(row pgx.Row) (role.Role, error) {
	var (
		id          uuid.UUID
		personID    uuid.UUID
		orgID       uuid.UUID
		jobTitle    pgtype.Text
		dept        pgtype.Text
		stdDept     pgtype.Text
		startDate   pgtype.Date
		endDate     pgtype.Date
		isCurrent   bool
		isExecutive bool
	)
	if err := row.Scan(&id, &personID, &orgID, &jobTitle, &dept, &stdDept, &startDate, &endDate, &isCurrent, &isExecutive); err != nil {
		return role.Role{}, err
	}
	return role.Hydrate(
		id,
		personID,
		orgID,
		textFromPg(jobTitle),
		textFromPg(dept),
		textFromPg(stdDept),
		dateFromPg(startDate),
		datePtrFromPg(endDate),
		isCurrent,
		isExecutive,
	), nil
}
