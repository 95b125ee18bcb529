package db

import (
	"database/sql"
	"fmt"
)

// Migration represents a database migration.
type Migration struct {
	Version int
	Name    string
	Up      func(*sql.DB) error
}

// migrations is the list of all migrations in order. The base schema is
// version 1; later structural changes append here and update SchemaSQL.
var migrations = []Migration{
	{
		Version: 1,
		Name:    "base_fleet_schema",
		Up:      migrationV1,
	},
}

// InitSchema creates the schema and applies outstanding migrations.
func InitSchema() error {
	database, err := GetDB()
	if err != nil {
		return err
	}

	if _, err := database.Exec(SchemaSQL); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return applyMigrations(database)
}

func applyMigrations(database *sql.DB) error {
	for _, m := range migrations {
		applied, err := migrationApplied(database, m.Version)
		if err != nil {
			return err
		}
		if applied {
			continue
		}

		if err := m.Up(database); err != nil {
			return fmt.Errorf("migration %d (%s) failed: %w", m.Version, m.Name, err)
		}

		if _, err := database.Exec(
			"INSERT INTO schema_migrations (version, name) VALUES (?, ?)",
			m.Version, m.Name,
		); err != nil {
			return fmt.Errorf("failed to record migration %d: %w", m.Version, err)
		}
	}
	return nil
}

func migrationApplied(database *sql.DB, version int) (bool, error) {
	var count int
	err := database.QueryRow(
		"SELECT COUNT(*) FROM schema_migrations WHERE version = ?", version,
	).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check migration %d: %w", version, err)
	}
	return count > 0, nil
}

// migrationV1 is a no-op: the base schema is created by SchemaSQL. It exists
// so the migrations table records the installed baseline.
func migrationV1(*sql.DB) error {
	return nil
}
