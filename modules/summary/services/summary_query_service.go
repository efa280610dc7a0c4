package services

import (
	"context"
	"strings"

	"github.com/scoutline/scoutline/modules/directory/domain/aggregates/organization"
	"github.com/scoutline/scoutline/modules/directory/domain/aggregates/person"
	"github.com/scoutline/scoutline/modules/directory/domain/aggregates/role"
	"github.com/scoutline/scoutline/modules/summary/domain/entities/rollup"
)

// SummaryQueryService is the read side. Dashboard and pagination reads come
// from the refreshed tables; SourceStats reads the source schema so operators
// can spot drift between the two.
type SummaryQueryService struct {
	persons     person.Repository
	orgs        organization.Repository
	roles       role.Repository
	networkRepo rollup.NetworkStatusRepository
	orgRepo     rollup.OrganizationSummaryRepository
}

func NewSummaryQueryService(
	persons person.Repository,
	orgs organization.Repository,
	roles role.Repository,
	networkRepo rollup.NetworkStatusRepository,
	orgRepo rollup.OrganizationSummaryRepository,
) *SummaryQueryService {
	return &SummaryQueryService{
		persons:     persons,
		orgs:        orgs,
		roles:       roles,
		networkRepo: networkRepo,
		orgRepo:     orgRepo,
	}
}

// SourceStats are row counts taken from the normalized schema. Comparing them
// against DashboardStats shows how stale the summary tables are.
type SourceStats struct {
	Persons            int64 `json:"persons"`
	Organizations      int64 `json:"organizations"`
	Roles              int64 `json:"roles"`
	CurrentAssignments int64 `json:"current_assignments"`
}

func (s *SummaryQueryService) SourceStats(ctx context.Context) (SourceStats, error) {
	var stats SourceStats
	var err error

	if stats.Persons, err = s.persons.Count(ctx); err != nil {
		return SourceStats{}, err
	}
	if stats.Organizations, err = s.orgs.Count(ctx); err != nil {
		return SourceStats{}, err
	}
	if stats.Roles, err = s.roles.Count(ctx); err != nil {
		return SourceStats{}, err
	}
	current, err := s.roles.GetCurrent(ctx)
	if err != nil {
		return SourceStats{}, err
	}
	stats.CurrentAssignments = int64(len(current))
	return stats, nil
}

func (s *SummaryQueryService) GetNetworkStatus(ctx context.Context, params *rollup.NetworkStatusFindParams) ([]rollup.NetworkStatus, int64, error) {
	if params == nil {
		params = &rollup.NetworkStatusFindParams{}
	}
	params.Name = strings.TrimSpace(params.Name)
	params.Organization = strings.TrimSpace(params.Organization)
	return s.networkRepo.GetPaginated(ctx, params)
}

func (s *SummaryQueryService) GetOrganizationSummaries(ctx context.Context, params *rollup.OrganizationSummaryFindParams) ([]rollup.OrganizationSummary, int64, error) {
	if params == nil {
		params = &rollup.OrganizationSummaryFindParams{}
	}
	params.Name = strings.TrimSpace(params.Name)
	return s.orgRepo.GetPaginated(ctx, params)
}

func (s *SummaryQueryService) TopOrganizationsByEmployees(ctx context.Context, limit int) ([]rollup.OrganizationSummary, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.orgRepo.TopByCurrentEmployees(ctx, limit)
}

func (s *SummaryQueryService) DashboardStats(ctx context.Context) (rollup.DashboardStats, error) {
	var stats rollup.DashboardStats
	var err error

	if stats.TotalPeople, err = s.networkRepo.Count(ctx); err != nil {
		return rollup.DashboardStats{}, err
	}
	if stats.TotalOrganizations, err = s.orgRepo.Count(ctx); err != nil {
		return rollup.DashboardStats{}, err
	}
	if stats.TotalExecutives, err = s.networkRepo.CountExecutives(ctx); err != nil {
		return rollup.DashboardStats{}, err
	}
	if stats.CurrentlyEmployed, err = s.networkRepo.CountCurrentlyEmployed(ctx); err != nil {
		return rollup.DashboardStats{}, err
	}
	return stats, nil
}
