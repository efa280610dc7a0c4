package rollup

import "github.com/google/uuid"

// OrganizationSummary is one denormalized row of the organization_summary table.
// Employee counts are distinct-person counts, never role-row counts.
type OrganizationSummary struct {
	OrgID    uuid.UUID
	Name     string
	OrgType  string
	Sport    string
	Industry string
	IsActive bool

	ParentOrgID   *uuid.UUID
	ParentOrgName *string

	TotalEmployees   int
	CurrentEmployees int
	ExecutiveCount   int

	// Departments maps standardized department to current-role count, unbounded.
	// RoleDistribution maps job title to current-role count, truncated to the
	// configured top N to bound row size.
	Departments      map[string]int
	RoleDistribution map[string]int

	RecentHires30d      int
	RecentDepartures30d int
}

type OrganizationSummaryFindParams struct {
	Name    string
	OrgType string
	Sport   string
	Limit   int
	Offset  int
}
