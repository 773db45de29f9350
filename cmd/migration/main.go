package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/latoulicious/ailie/internal/config"
	"github.com/latoulicious/ailie/pkg/database"
	"github.com/latoulicious/ailie/pkg/database/migration"
	"github.com/latoulicious/ailie/pkg/logging"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          "migration",
		Short:        "Manage the Ailie database schema",
		SilenceUsage: true,
	}

	var reset bool
	up := &cobra.Command{
		Use:   "up",
		Short: "Create or update every table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(db *gorm.DB, logger logging.Logger) error {
				if reset {
					if err := migration.Reset(db, logger); err != nil {
						return err
					}
				}
				return migration.RunMigration(db, logger)
			})
		},
	}
	up.Flags().BoolVar(&reset, "reset", false, "drop every table before migrating")

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Drop every table",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(migration.Reset)
		},
	}

	check := &cobra.Command{
		Use:   "check",
		Short: "Check database connectivity and schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDatabase(func(db *gorm.DB, logger logging.Logger) error {
				ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
				defer cancel()

				report, err := database.Check(ctx, db)
				if err != nil {
					return err
				}
				printReport(cmd, report)
				return nil
			})
		},
	}

	root.AddCommand(up, resetCmd, check)
	return root
}

// withDatabase loads the configuration, opens the store and runs fn
func withDatabase(fn func(db *gorm.DB, logger logging.Logger) error) error {
	cfg, err := config.LoadDatabaseConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logging.SetGlobalLoggerFactory(logging.NewLoggerFactory(cfg.Logger.Level, "text"))
	logger := logging.GetGlobalLoggerFactory().CreateLogger("migration")

	db, err := database.Open(cfg.Database, cfg.IsProduction())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close(db)

	logger.Info("Connected to database", map[string]interface{}{"dialect": db.Dialector.Name()})
	return fn(db, logger)
}

func printReport(cmd *cobra.Command, report *database.CheckReport) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "=== Database Connectivity Check ===")
	fmt.Fprintf(out, "Dialect: %s\n", report.Dialect)
	fmt.Fprintf(out, "Version: %s\n", report.Version)
	fmt.Fprintf(out, "Open connections: %d (in use %d, idle %d)\n", report.OpenConnections, report.InUse, report.Idle)
	fmt.Fprintf(out, "Simple query completed in %v\n", report.QueryLatency)
	if len(report.MissingTables) > 0 {
		fmt.Fprintf(out, "Missing tables (run `migration up`): %v\n", report.MissingTables)
	} else {
		fmt.Fprintln(out, "All expected tables exist")
	}
}
