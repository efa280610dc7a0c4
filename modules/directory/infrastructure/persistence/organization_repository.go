package persistence

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/scoutline/scoutline/modules/directory/domain/aggregates/organization"
	"github.com/scoutline/scoutline/pkg/composables"
)

const organizationSelectColumns = `id, name, org_type, sport, industry, parent_org_id, is_active`

type PgOrganizationRepository struct{}

func NewOrganizationRepository() organization.Repository {
	return &PgOrganizationRepository{}
}

func (r *PgOrganizationRepository) GetAll(ctx context.Context) ([]organization.Organization, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `SELECT `+organizationSelectColumns+` FROM organization ORDER BY name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []organization.Organization
	for rows.Next() {
		o, err := scanOrganization(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

func (r *PgOrganizationRepository) Count(ctx context.Context) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM organization`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanOrganization(row pgx.Row) (organization.Organization, error) {
	var (
		id       uuid.UUID
		name     string
		orgType  pgtype.Text
		sport    pgtype.Text
		industry pgtype.Text
		parentID pgtype.UUID
		isActive bool
	)
	if err := row.Scan(&id, &name, &orgType, &sport, &industry, &parentID, &isActive); err != nil {
		return organization.Organization{}, err
	}
	return organization.Hydrate(
		id,
		name,
		organization.Type(textFromPg(orgType)),
		textFromPg(sport),
		textFromPg(industry),
		uuidPtrFromPg(parentID),
		isActive,
	), nil
}
