package role

import (
	"bytes"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Role links one person to one organization for a bounded period. Rows are
// append-only history; closing a role flips is_current and stamps end_date,
// both done by the import pipeline.
type Role struct {
	id                     uuid.UUID
	personID               uuid.UUID
	orgID                  uuid.UUID
	jobTitle               string
	dept                   string
	standardizedDepartment string
	startDate              time.Time
	endDate                *time.Time
	isCurrent              bool
	isExecutive            bool
}

func Hydrate(
	id uuid.UUID,
	personID uuid.UUID,
	orgID uuid.UUID,
	jobTitle string,
	dept string,
	standardizedDepartment string,
	startDate time.Time,
	endDate *time.Time,
	isCurrent bool,
	isExecutive bool,
) Role {
	return Role{
		id:                     id,
		personID:               personID,
		orgID:                  orgID,
		jobTitle:               strings.TrimSpace(jobTitle),
		dept:                   strings.TrimSpace(dept),
		standardizedDepartment: strings.TrimSpace(standardizedDepartment),
		startDate:              startDate,
		endDate:                endDate,
		isCurrent:              isCurrent,
		isExecutive:            isExecutive,
	}
}

func (r Role) ID() uuid.UUID                   { return r.id }
func (r Role) PersonID() uuid.UUID             { return r.personID }
func (r Role) OrgID() uuid.UUID                { return r.orgID }
func (r Role) JobTitle() string                { return r.jobTitle }
func (r Role) Dept() string                    { return r.dept }
func (r Role) StandardizedDepartment() string  { return r.standardizedDepartment }
func (r Role) StartDate() time.Time            { return r.startDate }
func (r Role) EndDate() *time.Time             { return r.endDate }
func (r Role) IsCurrent() bool                 { return r.isCurrent }
func (r Role) IsExecutive() bool               { return r.isExecutive }

// MorePrimaryThan orders current roles for primary selection: later start date
// first, equal dates broken by smaller role id so the choice is total.
func (r Role) MorePrimaryThan(other Role) bool {
	if !r.startDate.Equal(other.startDate) {
		return r.startDate.After(other.startDate)
	}
	return bytes.Compare(r.id[:], other.id[:]) < 0
}
