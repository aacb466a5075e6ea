package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"hostpro/database"
	"hostpro/infrastructure/config"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			loadEnvironment()
			cfg := config.LoadAppConfigFromEnv()
			logger := initializeLogging(cfg)

			// Opening the database applies pending migrations.
			db, err := database.New(*cfg.Database, logger)
			if err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			defer db.Close()

			version, err := db.SchemaVersion()
			if err != nil {
				return fmt.Errorf("migrate: reading schema version: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "database %s at schema version %d\n", cfg.Database.Path, version)
			return nil
		},
	}
}
