// Package migration manages the database schema through embedded goose
// migration scripts, with a GORM AutoMigrate fallback for drivers the
// scripts do not target.
package migration

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed scripts/*.sql
var scriptsFS embed.FS

func setup(driver string) error {
	goose.SetBaseFS(scriptsFS)

	dialect := "sqlite3"
	if driver == "mysql" {
		dialect = "mysql"
	}
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

// Up applies all pending migrations.
func Up(db *sql.DB, driver string) error {
	if err := setup(driver); err != nil {
		return err
	}
	if err := goose.Up(db, "scripts"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}
	return nil
}

// Down rolls back the most recent migration.
func Down(db *sql.DB, driver string) error {
	if err := setup(driver); err != nil {
		return err
	}
	if err := goose.Down(db, "scripts"); err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}
	return nil
}

// Status prints the migration status.
func Status(db *sql.DB, driver string) error {
	if err := setup(driver); err != nil {
		return err
	}
	if err := goose.Status(db, "scripts"); err != nil {
		return fmt.Errorf("failed to get migration status: %w", err)
	}
	return nil
}
