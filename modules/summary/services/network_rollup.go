package services

import (
	"github.com/google/uuid"

	"github.com/scoutline/scoutline/modules/directory/domain/aggregates/organization"
	"github.com/scoutline/scoutline/modules/directory/domain/aggregates/person"
	"github.com/scoutline/scoutline/modules/directory/domain/aggregates/role"
	"github.com/scoutline/scoutline/modules/summary/domain/department"
	"github.com/scoutline/scoutline/modules/summary/domain/entities/rollup"
)

// SourceSnapshot is the in-memory view of the source store a refresh works from.
// The three reads are separate round-trips; a mid-refresh source update can
// produce a mixed-age snapshot, which the next refresh corrects.
type SourceSnapshot struct {
	Persons       []person.Person
	Organizations []organization.Organization
	Roles         []role.Role
}

type NetworkRollupStats struct {
	Persons         int
	WithCurrentRole int
	// OrphanRoles reference a person that no longer exists; their contribution
	// is dropped with a warning, never an error.
	OrphanRoles int
	// UnresolvedOrgRoles are current roles whose organization is missing. They
	// still count toward current_roles_count but cannot serve as the primary role.
	UnresolvedOrgRoles int
}

// BuildNetworkStatus folds the role history into one record per person. Every
// person gets a row; current-role fields stay nil for people with no current
// role. The primary current role is the one with the most recent start date,
// ties broken by smallest role id.
func BuildNetworkStatus(snap SourceSnapshot) ([]rollup.NetworkStatus, NetworkRollupStats) {
	var stats NetworkRollupStats

	personIDs := make(map[uuid.UUID]struct{}, len(snap.Persons))
	for _, p := range snap.Persons {
		personIDs[p.ID()] = struct{}{}
	}
	orgByID := make(map[uuid.UUID]organization.Organization, len(snap.Organizations))
	for _, o := range snap.Organizations {
		orgByID[o.ID()] = o
	}

	totalRoles := make(map[uuid.UUID]int, len(personIDs))
	currentRoles := make(map[uuid.UUID][]role.Role, len(personIDs))
	for _, r := range snap.Roles {
		if _, ok := personIDs[r.PersonID()]; !ok {
			stats.OrphanRoles++
			continue
		}
		totalRoles[r.PersonID()]++
		if r.IsCurrent() {
			currentRoles[r.PersonID()] = append(currentRoles[r.PersonID()], r)
		}
	}

	records := make([]rollup.NetworkStatus, 0, len(snap.Persons))
	for _, p := range snap.Persons {
		rec := rollup.NetworkStatus{
			PersonID:          p.ID(),
			FullName:          p.FullName(),
			FirstName:         p.FirstName(),
			LastName:          p.LastName(),
			LinkedInURL:       p.LinkedInURL(),
			CurrentRolesCount: len(currentRoles[p.ID()]),
			TotalRolesCount:   totalRoles[p.ID()],
			CreatedAt:         p.CreatedAt(),
		}

		if primary, org, ok := selectPrimaryRole(currentRoles[p.ID()], orgByID, &stats); ok {
			title := primary.JobTitle()
			dept := primary.Dept()
			stdDept := primary.StandardizedDepartment()
			if stdDept == "" {
				stdDept = string(department.Classify(title, dept))
			}
			orgName := org.Name()
			orgType := string(org.OrgType())
			sport := org.Sport()
			industry := org.Industry()
			start := primary.StartDate()

			rec.CurrentJobTitle = &title
			rec.CurrentDepartment = &dept
			rec.CurrentStandardizedDepartment = &stdDept
			rec.CurrentOrganization = &orgName
			rec.CurrentOrgType = &orgType
			rec.CurrentSport = &sport
			rec.CurrentIndustry = &industry
			rec.RoleStartDate = &start
			rec.IsExecutive = primary.IsExecutive()
			stats.WithCurrentRole++
		}

		records = append(records, rec)
	}

	stats.Persons = len(records)
	return records, stats
}

// selectPrimaryRole picks the headline role among a person's current roles,
// considering only roles whose organization resolves.
func selectPrimaryRole(
	currents []role.Role,
	orgByID map[uuid.UUID]organization.Organization,
	stats *NetworkRollupStats,
) (role.Role, organization.Organization, bool) {
	var (
		best    role.Role
		bestOrg organization.Organization
		found   bool
	)
	for _, r := range currents {
		org, ok := orgByID[r.OrgID()]
		if !ok {
			stats.UnresolvedOrgRoles++
			continue
		}
		if !found || r.MorePrimaryThan(best) {
			best = r
			bestOrg = org
			found = true
		}
	}
	return best, bestOrg, found
}
