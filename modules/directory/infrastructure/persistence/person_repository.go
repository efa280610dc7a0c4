package persistence

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/scoutline/scoutline/modules/directory/domain/aggregates/person"
	"github.com/scoutline/scoutline/pkg/composables"
)

const personSelectColumns = `id, full_name, first_name, last_name, linkedin_url, created_at`

type PgPersonRepository struct{}

func NewPersonRepository() person.Repository {
	return &PgPersonRepository{}
}

func (r *PgPersonRepository) GetAll(ctx context.Context) ([]person.Person, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := tx.Query(ctx, `SELECT `+personSelectColumns+` FROM person ORDER BY full_name, id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []person.Person
	for rows.Next() {
		p, err := scanPerson(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *PgPersonRepository) Count(ctx context.Context) (int64, error) {
	tx, err := composables.UseTx(ctx)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM person`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func scanPerson(row pgx.Row) (person.Person, error) {
	var (
		id        uuid.UUID
		fullName  string
		firstName pgtype.Text
		lastName  pgtype.Text
		linkedIn  pgtype.Text
		createdAt time.Time
	)
	if err := row.Scan(&id, &fullName, &firstName, &lastName, &linkedIn, &createdAt); err != nil {
		return person.Person{}, err
	}
	return person.Hydrate(
		id,
		fullName,
		textFromPg(firstName),
		textFromPg(lastName),
		textFromPg(linkedIn),
		createdAt,
	), nil
}
