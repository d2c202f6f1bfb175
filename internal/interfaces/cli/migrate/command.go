// Package migrate implements the `migrate` CLI command.
package migrate

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"clubcms/internal/infrastructure/config"
	"clubcms/internal/infrastructure/database"
	"clubcms/internal/infrastructure/migration"
	"clubcms/internal/infrastructure/persistence/seeds"
	"clubcms/internal/shared/logger"
)

var env string

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database schema migrations",
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newSeedCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(cfg *config.Config, sqlDB *sql.DB) error {
				if cfg.Database.Driver == "mysql" {
					return migration.AutoMigrate(database.Get())
				}
				return migration.Up(sqlDB, cfg.Database.Driver)
			})
		},
	}
}

func newDownCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(cfg *config.Config, sqlDB *sql.DB) error {
				return migration.Down(sqlDB, cfg.Database.Driver)
			})
		},
	}
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(cfg *config.Config, sqlDB *sql.DB) error {
				return migration.Status(sqlDB, cfg.Database.Driver)
			})
		},
	}
}

func newSeedCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Create the default admin account if no users exist",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(cfg *config.Config, sqlDB *sql.DB) error {
				return seeds.SeedAdminUser(database.Get(), cfg.Auth.Password.BcryptCost, logger.NewLogger())
			})
		},
	}
}

func withDB(fn func(cfg *config.Config, sqlDB *sql.DB) error) error {
	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(&cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := database.Init(&cfg.Database); err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer database.Close()

	sqlDB, err := database.Get().DB()
	if err != nil {
		return fmt.Errorf("failed to get database handle: %w", err)
	}

	return fn(cfg, sqlDB)
}
