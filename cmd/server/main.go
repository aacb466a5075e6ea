package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"hostpro/infrastructure/config"
	"hostpro/logging"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "hostpro",
		Short:         "HostPro hosting site and customer dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand runs the web server
			return runServe(cmd.Context())
		},
	}

	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newMigrateCmd())
	cmd.AddCommand(newCatalogCmd())

	return cmd
}

func loadEnvironment() {
	if err := godotenv.Load(); err != nil {
		println("No .env file found, using environment variables")
	} else {
		println("Loaded configuration from .env file")
	}
}

func initializeLogging(cfg *config.AppConfig) *logging.Logger {
	logger := logging.NewLogger(cfg.Logging)
	logging.SetDefault(logger)

	logger.Info("Application starting",
		"version", "1.0.0",
		"log_level", cfg.Logging.Level,
		"log_format", cfg.Logging.Format,
		"store_backend", cfg.Store.Backend,
	)

	return logger
}
