package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lisapod/lisapod-api/internal/database"
	"github.com/lisapod/lisapod-api/pkg/config"
)

// migrateCmd represents the migrate command
var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long: `Manage database migrations for the Lisapod API.

The schema is managed through GORM auto-migration: applying migrations
creates or extends the tables for users, podcasts, episode segments and
generation jobs. Columns are never dropped.

Available subcommands:
  up      - Apply all pending migrations
  status  - Show current migration status`,
}

// migrateUpCmd applies pending migrations
var migrateUpCmd = &cobra.Command{
	Use:   "up",
	Short: "Apply all pending migrations",
	Long: `Apply all pending database migrations.

This brings the schema up to date with the current model definitions,
creating missing tables, columns and indexes.`,
	RunE: runMigrateUp,
}

// migrateStatusCmd shows migration status
var migrateStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show migration status",
	Long: `Display the current status of the database schema.

This shows which of the expected tables exist in the configured database.`,
	RunE: runMigrateStatus,
}

func init() {
	rootCmd.AddCommand(migrateCmd)
	migrateCmd.AddCommand(migrateUpCmd)
	migrateCmd.AddCommand(migrateStatusCmd)
}

func openDatabase() (*database.DB, error) {
	cfg, err := config.GetConfig()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	db, err := database.Initialize(cfg.Database.Path, cfg.Database.Verbose)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	return db, nil
}

func runMigrateUp(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("applying migrations: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied successfully")
	return nil
}

func runMigrateStatus(cmd *cobra.Command, args []string) error {
	db, err := openDatabase()
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Database Schema Status")
	fmt.Fprintln(out, strings.Repeat("=", 40))

	migrator := db.DB.Migrator()
	for _, table := range []string{"users", "podcasts", "episode_segments", "jobs"} {
		state := "missing"
		if migrator.HasTable(table) {
			state = "present"
		}
		fmt.Fprintf(out, "  %-18s %s\n", table, state)
	}

	return nil
}
