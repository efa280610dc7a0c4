package rollup

import (
	"time"

	"github.com/google/uuid"
)

// NetworkStatus is one denormalized row of the network_status table: a person's
// headline current position plus lifetime role counts. Rows are rebuilt wholesale
// on every refresh; nothing mutates them in place.
type NetworkStatus struct {
	PersonID    uuid.UUID
	FullName    string
	FirstName   string
	LastName    string
	LinkedInURL string

	// Primary current role, nil when the person holds no current role.
	CurrentJobTitle               *string
	CurrentDepartment             *string
	CurrentStandardizedDepartment *string
	CurrentOrganization           *string
	CurrentOrgType                *string
	CurrentSport                  *string
	CurrentIndustry               *string
	RoleStartDate                 *time.Time
	IsExecutive                   bool

	CurrentRolesCount int
	TotalRolesCount   int

	CreatedAt time.Time
}

type NetworkStatusFindParams struct {
	Name         string
	Organization string
	OrgType      string
	Sport        string
	IsExecutive  *bool
	Limit        int
	Offset       int
}

// DashboardStats are the headline numbers the serving layer renders, computed
// from the summary tables only.
type DashboardStats struct {
	TotalPeople        int64 `json:"total_people"`
	TotalOrganizations int64 `json:"total_organizations"`
	TotalExecutives    int64 `json:"total_executives"`
	CurrentlyEmployed  int64 `json:"currently_employed"`
}
