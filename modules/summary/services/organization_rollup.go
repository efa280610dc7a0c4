package services

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"github.com/scoutline/scoutline/modules/directory/domain/aggregates/organization"
	"github.com/scoutline/scoutline/modules/summary/domain/department"
	"github.com/scoutline/scoutline/modules/summary/domain/entities/rollup"
)

const recentActivityWindow = 30 * 24 * time.Hour

type OrganizationRollupStats struct {
	Organizations int
	RoleRows      int
	// OrphanRoles reference an organization that no longer exists.
	OrphanRoles int
}

type orgAccumulator struct {
	everPersons      map[uuid.UUID]struct{}
	currentPersons   map[uuid.UUID]struct{}
	executivePersons map[uuid.UUID]struct{}
	recentHires      map[uuid.UUID]struct{}
	recentDepartures map[uuid.UUID]struct{}
	departments      map[string]int
	titles           map[string]int
}

func newOrgAccumulator() *orgAccumulator {
	return &orgAccumulator{
		everPersons:      map[uuid.UUID]struct{}{},
		currentPersons:   map[uuid.UUID]struct{}{},
		executivePersons: map[uuid.UUID]struct{}{},
		recentHires:      map[uuid.UUID]struct{}{},
		recentDepartures: map[uuid.UUID]struct{}{},
		departments:      map[string]int{},
		titles:           map[string]int{},
	}
}

// BuildOrganizationSummary folds the role history into one record per
// organization. Organizations with no roles still produce a record with zero
// counts. Employee metrics count distinct persons: two historical roles at the
// same organization count one person.
func BuildOrganizationSummary(snap SourceSnapshot, now time.Time, titleLimit int) ([]rollup.OrganizationSummary, OrganizationRollupStats) {
	var stats OrganizationRollupStats
	stats.RoleRows = len(snap.Roles)

	orgByID := make(map[uuid.UUID]organization.Organization, len(snap.Organizations))
	for _, o := range snap.Organizations {
		orgByID[o.ID()] = o
	}

	recentCutoff := now.Add(-recentActivityWindow)

	accs := make(map[uuid.UUID]*orgAccumulator, len(snap.Organizations))
	for _, r := range snap.Roles {
		if _, ok := orgByID[r.OrgID()]; !ok {
			stats.OrphanRoles++
			continue
		}
		acc := accs[r.OrgID()]
		if acc == nil {
			acc = newOrgAccumulator()
			accs[r.OrgID()] = acc
		}

		acc.everPersons[r.PersonID()] = struct{}{}
		if end := r.EndDate(); end != nil && end.After(recentCutoff) && !end.After(now) {
			acc.recentDepartures[r.PersonID()] = struct{}{}
		}
		if !r.IsCurrent() {
			continue
		}

		acc.currentPersons[r.PersonID()] = struct{}{}
		if r.IsExecutive() {
			acc.executivePersons[r.PersonID()] = struct{}{}
		}
		if start := r.StartDate(); start.After(recentCutoff) && !start.After(now) {
			acc.recentHires[r.PersonID()] = struct{}{}
		}

		stdDept := r.StandardizedDepartment()
		if stdDept == "" {
			stdDept = string(department.Classify(r.JobTitle(), r.Dept()))
		}
		acc.departments[stdDept]++
		if title := r.JobTitle(); title != "" {
			acc.titles[title]++
		}
	}

	records := make([]rollup.OrganizationSummary, 0, len(snap.Organizations))
	for _, o := range snap.Organizations {
		rec := rollup.OrganizationSummary{
			OrgID:            o.ID(),
			Name:             o.Name(),
			OrgType:          string(o.OrgType()),
			Sport:            o.Sport(),
			Industry:         o.Industry(),
			IsActive:         o.IsActive(),
			ParentOrgID:      o.ParentOrgID(),
			Departments:      map[string]int{},
			RoleDistribution: map[string]int{},
		}

		// Single-level parent lookup only; deeper chains are not resolved.
		if parentID := o.ParentOrgID(); parentID != nil {
			if parent, ok := orgByID[*parentID]; ok {
				name := parent.Name()
				rec.ParentOrgName = &name
			}
		}

		if acc := accs[o.ID()]; acc != nil {
			rec.TotalEmployees = len(acc.everPersons)
			rec.CurrentEmployees = len(acc.currentPersons)
			rec.ExecutiveCount = len(acc.executivePersons)
			rec.RecentHires30d = len(acc.recentHires)
			rec.RecentDepartures30d = len(acc.recentDepartures)
			rec.Departments = acc.departments
			rec.RoleDistribution = topTitles(acc.titles, titleLimit)
		}

		records = append(records, rec)
	}

	stats.Organizations = len(records)
	return records, stats
}

// topTitles keeps the N most frequent titles. Ties break alphabetically so
// repeated refreshes over unchanged data emit identical rows.
func topTitles(counts map[string]int, limit int) map[string]int {
	if limit <= 0 || len(counts) <= limit {
		return counts
	}

	type titleCount struct {
		title string
		count int
	}
	ranked := make([]titleCount, 0, len(counts))
	for title, count := range counts {
		ranked = append(ranked, titleCount{title, count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].title < ranked[j].title
	})

	out := make(map[string]int, limit)
	for _, tc := range ranked[:limit] {
		out[tc.title] = tc.count
	}
	return out
}
