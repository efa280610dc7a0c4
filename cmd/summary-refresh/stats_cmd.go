package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	dirpersistence "github.com/scoutline/scoutline/modules/directory/infrastructure/persistence"
	"github.com/scoutline/scoutline/modules/summary/domain/entities/rollup"
	sumpersistence "github.com/scoutline/scoutline/modules/summary/infrastructure/persistence"
	"github.com/scoutline/scoutline/modules/summary/services"
	"github.com/scoutline/scoutline/pkg/composables"
	"github.com/scoutline/scoutline/pkg/configuration"
	"github.com/scoutline/scoutline/pkg/constants"
)

type statsResult struct {
	Source    services.SourceStats    `json:"source"`
	Dashboard rollup.DashboardStats   `json:"dashboard"`
	TopOrgs   []topOrganizationOutput `json:"top_organizations"`
}

type topOrganizationOutput struct {
	Name             string `json:"name"`
	OrgType          string `json:"org_type"`
	CurrentEmployees int    `json:"current_employees"`
	TotalEmployees   int    `json:"total_employees"`
}

func newStatsCmd() *cobra.Command {
	var top int

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print source row counts and dashboard stats from the summary tables",
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

			svc := services.NewSummaryQueryService(
				dirpersistence.NewPersonRepository(),
				dirpersistence.NewOrganizationRepository(),
				dirpersistence.NewRoleRepository(),
				sumpersistence.NewNetworkStatusRepository(conf.Refresh.NetworkStatusBatchSize),
				sumpersistence.NewOrganizationSummaryRepository(conf.Refresh.OrgSummaryBatchSize),
			)

			start := time.Now()
			source, err := svc.SourceStats(ctx)
			if err != nil {
				return err
			}
			dashboard, err := svc.DashboardStats(ctx)
			if err != nil {
				return err
			}
			topOrgs, err := svc.TopOrganizationsByEmployees(ctx, top)
			if err != nil {
				return err
			}

			result := statsResult{Source: source, Dashboard: dashboard, TopOrgs: make([]topOrganizationOutput, 0, len(topOrgs))}
			for _, org := range topOrgs {
				result.TopOrgs = append(result.TopOrgs, topOrganizationOutput{
					Name:             org.Name,
					OrgType:          org.OrgType,
					CurrentEmployees: org.CurrentEmployees,
					TotalEmployees:   org.TotalEmployees,
				})
			}

			out := refreshOutput{
				Command:    "summary stats",
				DurationMS: time.Since(start).Milliseconds(),
				Result:     result,
			}
			return writeJSON(out)
		},
	}

	cmd.Flags().IntVar(&top, "top", 10, "Number of top organizations to include")
	return cmd
}
