package database

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pressly/goose/v3"

	"hostpro/logging"
)

//go:embed migrations/*.sql
var migrationFiles embed.FS

// gooseLogger routes goose output through the structured logger.
type gooseLogger struct {
	logger *logging.Logger
}

func (g gooseLogger) Printf(format string, v ...interface{}) {
	g.logger.Database(strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (g gooseLogger) Fatalf(format string, v ...interface{}) {
	g.logger.Error(strings.TrimSpace(fmt.Sprintf(format, v...)), "subsystem", "database")
}

// runMigrations applies all pending migrations on the write connection
func (d *Database) runMigrations() error {
	d.logger.Database("Checking for database migrations")

	goose.SetBaseFS(migrationFiles)
	goose.SetLogger(gooseLogger{logger: d.logger})

	if err := goose.SetDialect(string(goose.DialectSQLite3)); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	before, err := goose.EnsureDBVersion(d.writeDB.DB)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	if err := goose.Up(d.writeDB.DB, "migrations"); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	after, err := goose.GetDBVersion(d.writeDB.DB)
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}

	if after != before {
		d.logger.Database("Database migrations completed", "from_version", before, "to_version", after)
	} else {
		d.logger.Database("Database was already up to date", "version", after)
	}

	return nil
}

// SchemaVersion returns the currently applied migration version.
func (d *Database) SchemaVersion() (int64, error) {
	version, err := goose.GetDBVersion(d.readDB.DB)
	if err != nil {
		return 0, fmt.Errorf("failed to read schema version: %w", err)
	}
	return version, nil
}

// checkDatabaseExists checks if the database file exists and is not empty
func checkDatabaseExists(path string) bool {
	if info, err := filepath.Abs(path); err == nil {
		if stat, err := os.Stat(info); err == nil && stat.Size() > 0 {
			return true
		}
	}

	return false
}
