package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scoutline/scoutline/modules/directory/domain/aggregates/organization"
	"github.com/scoutline/scoutline/modules/directory/domain/aggregates/person"
	"github.com/scoutline/scoutline/modules/directory/domain/aggregates/role"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildNetworkStatus_PrimaryRoleIsMostRecentStart(t *testing.T) {
	personID := uuid.New()
	teamID := uuid.New()
	leagueID := uuid.New()
	oldEnd := date(2020, 6, 30)

	snap := SourceSnapshot{
		Persons: []person.Person{
			person.Hydrate(personID, "Dana Whitfield", "Dana", "Whitfield", "", date(2024, 1, 1)),
		},
		Organizations: []organization.Organization{
			organization.Hydrate(teamID, "Harbor City FC", organization.TypeTeam, "Soccer", "Sports", nil, true),
			organization.Hydrate(leagueID, "National Soccer League", organization.TypeLeague, "Soccer", "Sports", nil, true),
		},
		Roles: []role.Role{
			role.Hydrate(uuid.New(), personID, teamID, "Ticket Sales Representative", "Sales", "", date(2021, 3, 1), nil, true, false),
			role.Hydrate(uuid.New(), personID, leagueID, "VP of Partnerships", "Partnerships", "", date(2023, 7, 15), nil, true, true),
			role.Hydrate(uuid.New(), personID, teamID, "Sales Intern", "Sales", "", date(2019, 5, 1), &oldEnd, false, false),
		},
	}

	records, stats := BuildNetworkStatus(snap)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, personID, rec.PersonID)
	assert.Equal(t, "Dana Whitfield", rec.FullName)
	assert.Equal(t, 2, rec.CurrentRolesCount)
	assert.Equal(t, 3, rec.TotalRolesCount)

	require.NotNil(t, rec.CurrentJobTitle)
	assert.Equal(t, "VP of Partnerships", *rec.CurrentJobTitle)
	require.NotNil(t, rec.CurrentOrganization)
	assert.Equal(t, "National Soccer League", *rec.CurrentOrganization)
	require.NotNil(t, rec.CurrentOrgType)
	assert.Equal(t, "League", *rec.CurrentOrgType)
	require.NotNil(t, rec.RoleStartDate)
	assert.Equal(t, date(2023, 7, 15), *rec.RoleStartDate)
	assert.True(t, rec.IsExecutive)

	require.NotNil(t, rec.CurrentStandardizedDepartment)
	assert.Equal(t, "Sales & Partnerships", *rec.CurrentStandardizedDepartment)

	assert.Equal(t, 1, stats.Persons)
	assert.Equal(t, 1, stats.WithCurrentRole)
	assert.Zero(t, stats.OrphanRoles)
}

func TestBuildNetworkStatus_StartDateTieBreaksOnSmallestRoleID(t *testing.T) {
	personID := uuid.New()
	orgID := uuid.New()
	start := date(2024, 2, 1)

	lowID := uuid.MustParse("00000000-0000-0000-0000-000000000001")
	highID := uuid.MustParse("ffffffff-ffff-ffff-ffff-ffffffffffff")

	snap := SourceSnapshot{
		Persons: []person.Person{
			person.Hydrate(personID, "Riley Moss", "Riley", "Moss", "", date(2024, 1, 1)),
		},
		Organizations: []organization.Organization{
			organization.Hydrate(orgID, "Harbor City FC", organization.TypeTeam, "Soccer", "Sports", nil, true),
		},
		Roles: []role.Role{
			role.Hydrate(highID, personID, orgID, "Analyst", "Analytics", "", start, nil, true, false),
			role.Hydrate(lowID, personID, orgID, "Coach", "Football Operations", "", start, nil, true, false),
		},
	}

	records, _ := BuildNetworkStatus(snap)
	require.Len(t, records, 1)
	require.NotNil(t, records[0].CurrentJobTitle)
	assert.Equal(t, "Coach", *records[0].CurrentJobTitle)
}

func TestBuildNetworkStatus_PersonWithoutCurrentRoleStillListed(t *testing.T) {
	personID := uuid.New()
	orgID := uuid.New()
	end := date(2022, 12, 31)

	snap := SourceSnapshot{
		Persons: []person.Person{
			person.Hydrate(personID, "Jordan Elm", "Jordan", "Elm", "", date(2024, 1, 1)),
		},
		Organizations: []organization.Organization{
			organization.Hydrate(orgID, "Harbor City FC", organization.TypeTeam, "Soccer", "Sports", nil, true),
		},
		Roles: []role.Role{
			role.Hydrate(uuid.New(), personID, orgID, "Scout", "", "", date(2021, 1, 1), &end, false, false),
		},
	}

	records, stats := BuildNetworkStatus(snap)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Nil(t, rec.CurrentJobTitle)
	assert.Nil(t, rec.CurrentOrganization)
	assert.Nil(t, rec.RoleStartDate)
	assert.False(t, rec.IsExecutive)
	assert.Equal(t, 0, rec.CurrentRolesCount)
	assert.Equal(t, 1, rec.TotalRolesCount)
	assert.Zero(t, stats.WithCurrentRole)
}

func TestBuildNetworkStatus_SkipsOrphanAndUnresolvedOrgRoles(t *testing.T) {
	personID := uuid.New()
	orgID := uuid.New()

	snap := SourceSnapshot{
		Persons: []person.Person{
			person.Hydrate(personID, "Sam Reyes", "Sam", "Reyes", "", date(2024, 1, 1)),
		},
		Organizations: []organization.Organization{
			organization.Hydrate(orgID, "Harbor City FC", organization.TypeTeam, "Soccer", "Sports", nil, true),
		},
		Roles: []role.Role{
			role.Hydrate(uuid.New(), uuid.New(), orgID, "Ghost", "", "", date(2024, 1, 1), nil, true, false),
			role.Hydrate(uuid.New(), personID, uuid.New(), "Stranded", "", "", date(2024, 1, 1), nil, true, false),
		},
	}

	records, stats := BuildNetworkStatus(snap)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Nil(t, rec.CurrentJobTitle)
	assert.Equal(t, 1, rec.CurrentRolesCount)
	assert.Equal(t, 1, rec.TotalRolesCount)
	assert.Equal(t, 1, stats.OrphanRoles)
	assert.Equal(t, 1, stats.UnresolvedOrgRoles)
}

func TestBuildNetworkStatus_Idempotent(t *testing.T) {
	personID := uuid.New()
	orgID := uuid.New()

	snap := SourceSnapshot{
		Persons: []person.Person{
			person.Hydrate(personID, "Dana Whitfield", "Dana", "Whitfield", "", date(2024, 1, 1)),
		},
		Organizations: []organization.Organization{
			organization.Hydrate(orgID, "Harbor City FC", organization.TypeTeam, "Soccer", "Sports", nil, true),
		},
		Roles: []role.Role{
			role.Hydrate(uuid.New(), personID, orgID, "Head Coach", "Football Operations", "", date(2023, 1, 1), nil, true, false),
		},
	}

	first, _ := BuildNetworkStatus(snap)
	second, _ := BuildNetworkStatus(snap)
	assert.Equal(t, first, second)
}
