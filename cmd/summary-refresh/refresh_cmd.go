package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	dirpersistence "github.com/scoutline/scoutline/modules/directory/infrastructure/persistence"
	sumpersistence "github.com/scoutline/scoutline/modules/summary/infrastructure/persistence"
	"github.com/scoutline/scoutline/modules/summary/services"
	"github.com/scoutline/scoutline/pkg/composables"
	"github.com/scoutline/scoutline/pkg/configuration"
	"github.com/scoutline/scoutline/pkg/constants"
	"github.com/scoutline/scoutline/pkg/eventbus"
)

type refreshOutput struct {
	Command    string `json:"command"`
	DurationMS int64  `json:"duration_ms"`
	Result     any    `json:"result"`
}

func newRefreshCmd() *cobra.Command {
	var table string

	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Rebuild the summary tables from person, organization and role",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := configuration.Use()
			defer conf.Unload()

			pool, err := connectDB(cmd.Context())
			if err != nil {
				return err
			}
			defer pool.Close()

			ctx := composables.WithPool(cmd.Context(), pool)
			ctx = context.WithValue(ctx, constants.LoggerKey, conf.Logger())

			svc := newRefreshService(conf)

			start := time.Now()
			var result any
			ok := true
			switch table {
			case "all":
				report := svc.RefreshAll(ctx)
				result, ok = report, report.Success()
			case services.TableNetworkStatus:
				report := svc.RefreshNetworkStatus(ctx)
				result, ok = report, report.Success
			case services.TableOrganizationSummary:
				report := svc.RefreshOrganizationSummary(ctx)
				result, ok = report, report.Success
			default:
				return fmt.Errorf("unknown --table %q (want all, %s or %s)", table, services.TableNetworkStatus, services.TableOrganizationSummary)
			}

			out := refreshOutput{
				Command:    "summary refresh",
				DurationMS: time.Since(start).Milliseconds(),
				Result:     result,
			}
			if err := writeJSON(out); err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("refresh finished with failures")
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&table, "table", "all", "Table to refresh: all, network_status or organization_summary")
	return cmd
}

func newRefreshService(conf *configuration.Configuration) *services.RefreshService {
	publisher := eventbus.NewEventPublisher(conf.Logger())
	publisher.Subscribe(services.LogRefreshCompleted(conf.Logger()))
	return services.NewRefreshService(
		dirpersistence.NewPersonRepository(),
		dirpersistence.NewOrganizationRepository(),
		dirpersistence.NewRoleRepository(),
		sumpersistence.NewNetworkStatusRepository(conf.Refresh.NetworkStatusBatchSize),
		sumpersistence.NewOrganizationSummaryRepository(conf.Refresh.OrgSummaryBatchSize),
		publisher,
		conf.Refresh.RoleDistributionLimit,
	)
}
