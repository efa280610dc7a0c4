package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/scoutline/scoutline/modules/directory/domain/aggregates/organization"
	"github.com/scoutline/scoutline/modules/directory/domain/aggregates/person"
	"github.com/scoutline/scoutline/modules/directory/domain/aggregates/role"
	"github.com/scoutline/scoutline/modules/summary/domain/entities/rollup"
	"github.com/scoutline/scoutline/pkg/eventbus"
)

const (
	TableNetworkStatus       = "network_status"
	TableOrganizationSummary = "organization_summary"
)

type TableReport struct {
	Table      string `json:"table"`
	Success    bool   `json:"success"`
	Rows       int    `json:"rows"`
	Batches    int    `json:"batches"`
	DurationMS int64  `json:"duration_ms"`
	Error      string `json:"error,omitempty"`
}

type RefreshReport struct {
	NetworkStatus       TableReport `json:"network_status"`
	OrganizationSummary TableReport `json:"organization_summary"`
}

func (r RefreshReport) Success() bool {
	return r.NetworkStatus.Success && r.OrganizationSummary.Success
}

// RefreshService recomputes both summary tables from a source snapshot. A run
// is a pure projection: unchanged source state yields identical summaries no
// matter how often it executes. It is not safe to run concurrently with
// itself; invocation serialization is the scheduler's job.
type RefreshService struct {
	persons     person.Repository
	orgs        organization.Repository
	roles       role.Repository
	networkRepo rollup.NetworkStatusRepository
	orgRepo     rollup.OrganizationSummaryRepository
	publisher   eventbus.EventBus
	titleLimit  int
	now         func() time.Time
}

func NewRefreshService(
	persons person.Repository,
	orgs organization.Repository,
	roles role.Repository,
	networkRepo rollup.NetworkStatusRepository,
	orgRepo rollup.OrganizationSummaryRepository,
	publisher eventbus.EventBus,
	titleLimit int,
) *RefreshService {
	return &RefreshService{
		persons:     persons,
		orgs:        orgs,
		roles:       roles,
		networkRepo: networkRepo,
		orgRepo:     orgRepo,
		publisher:   publisher,
		titleLimit:  titleLimit,
		now:         time.Now,
	}
}

// RefreshAll refreshes both tables. The two runs are independent: a failure in
// one is recorded in the report and the other still executes. There is no
// internal retry; re-invoking the command is the retry.
func (s *RefreshService) RefreshAll(ctx context.Context) RefreshReport {
	return RefreshReport{
		NetworkStatus:       s.RefreshNetworkStatus(ctx),
		OrganizationSummary: s.RefreshOrganizationSummary(ctx),
	}
}

func (s *RefreshService) RefreshNetworkStatus(ctx context.Context) TableReport {
	started := s.now()
	report := TableReport{Table: TableNetworkStatus}

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return s.finish(ctx, report, started, err)
	}

	records, stats := BuildNetworkStatus(snap)
	if stats.OrphanRoles > 0 || stats.UnresolvedOrgRoles > 0 {
		logWithFields(ctx, logrus.WarnLevel, "network_status rollup skipped roles with missing relations", logrus.Fields{
			"orphan_roles":         stats.OrphanRoles,
			"unresolved_org_roles": stats.UnresolvedOrgRoles,
		})
	}
	logWithFields(ctx, logrus.InfoLevel, "network_status rollup built", logrus.Fields{
		"persons":           stats.Persons,
		"with_current_role": stats.WithCurrentRole,
	})

	report.Rows = len(records)
	report.Batches, err = s.networkRepo.ReplaceAll(ctx, records)
	return s.finish(ctx, report, started, err)
}

func (s *RefreshService) RefreshOrganizationSummary(ctx context.Context) TableReport {
	started := s.now()
	report := TableReport{Table: TableOrganizationSummary}

	snap, err := s.loadSnapshot(ctx)
	if err != nil {
		return s.finish(ctx, report, started, err)
	}

	records, stats := BuildOrganizationSummary(snap, s.now(), s.titleLimit)
	if stats.OrphanRoles > 0 {
		logWithFields(ctx, logrus.WarnLevel, "organization_summary rollup skipped roles with missing organizations", logrus.Fields{
			"orphan_roles": stats.OrphanRoles,
		})
	}
	logWithFields(ctx, logrus.InfoLevel, "organization_summary rollup built", logrus.Fields{
		"organizations": stats.Organizations,
		"role_rows":     stats.RoleRows,
	})

	report.Rows = len(records)
	report.Batches, err = s.orgRepo.ReplaceAll(ctx, records)
	return s.finish(ctx, report, started, err)
}

func (s *RefreshService) loadSnapshot(ctx context.Context) (SourceSnapshot, error) {
	persons, err := s.persons.GetAll(ctx)
	if err != nil {
		return SourceSnapshot{}, err
	}
	orgs, err := s.orgs.GetAll(ctx)
	if err != nil {
		return SourceSnapshot{}, err
	}
	roles, err := s.roles.GetAll(ctx)
	if err != nil {
		return SourceSnapshot{}, err
	}
	return SourceSnapshot{Persons: persons, Organizations: orgs, Roles: roles}, nil
}

func (s *RefreshService) finish(ctx context.Context, report TableReport, started time.Time, err error) TableReport {
	duration := s.now().Sub(started)
	report.DurationMS = duration.Milliseconds()
	report.Success = err == nil
	if err != nil {
		report.Error = err.Error()
	}

	if s.publisher != nil {
		s.publisher.Publish(RefreshCompleted{
			Table:    report.Table,
			Success:  report.Success,
			Rows:     report.Rows,
			Batches:  report.Batches,
			Duration: duration,
			Error:    report.Error,
		})
	}
	return report
}
