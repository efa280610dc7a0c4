package main

import (
	"database/sql"
	"fmt"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/scoutline/scoutline/pkg/configuration"
	"github.com/scoutline/scoutline/pkg/logging"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate [up|down|status]",
		Short: "Run schema migrations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conf := configuration.Use()
			defer conf.Unload()

			db, err := sql.Open("pgx", conf.Database.ConnectionString())
			if err != nil {
				return fmt.Errorf("db open failed: %w", err)
			}
			defer func() { _ = db.Close() }()

			if err := goose.SetDialect("postgres"); err != nil {
				return err
			}
			// Migrations must not touch the log file; stderr only.
			goose.SetLogger(logging.ConsoleLogger(conf.LogrusLogLevel()))

			switch args[0] {
			case "up":
				return goose.UpContext(cmd.Context(), db, conf.MigrationsDir)
			case "down":
				return goose.DownContext(cmd.Context(), db, conf.MigrationsDir)
			case "status":
				return goose.StatusContext(cmd.Context(), db, conf.MigrationsDir)
			default:
				return fmt.Errorf("unknown migrate command %q (want up, down or status)", args[0])
			}
		},
	}
	return cmd
}
