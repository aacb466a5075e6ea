package database

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"hostpro/logging"

	_ "modernc.org/sqlite"
)

// Config holds database configuration
type Config struct {
	Path              string        `env:"DB_PATH" default:"./hostpro.db"`
	MaxOpenConns      int           `env:"DB_MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns      int           `env:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime   time.Duration `env:"DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime   time.Duration `env:"DB_CONN_MAX_IDLE_TIME" default:"15m"`
	BusyTimeoutMs     int           `env:"DB_BUSY_TIMEOUT_MS" default:"5000"`
	EnableForeignKeys bool          `env:"DB_ENABLE_FOREIGN_KEYS" default:"true"`
	EnableWAL         bool          `env:"DB_ENABLE_WAL" default:"true"`
}

// Database holds the preference database: a pool for reads and one
// connection for writes.
type Database struct {
	readDB  *sqlx.DB
	writeDB *sqlx.DB
	config  Config
	logger  *logging.Logger
}

// New opens the SQLite file at config.Path with a read pool and a single
// write connection, then applies pending migrations.
func New(config Config, logger *logging.Logger) (*Database, error) {
	dsn := buildDSN(config)
	existed := checkDatabaseExists(config.Path)

	readDB, err := openPool(dsn, config.MaxOpenConns, config.MaxIdleConns, config)
	if err != nil {
		return nil, fmt.Errorf("failed to open read database: %w", err)
	}
	// SQLite allows one writer at a time.
	writeDB, err := openPool(dsn, 1, 1, config)
	if err != nil {
		readDB.Close()
		return nil, fmt.Errorf("failed to open write database: %w", err)
	}

	d := &Database{readDB: readDB, writeDB: writeDB, config: config, logger: logger}
	for _, step := range []struct {
		name string
		run  func() error
	}{
		{"initialize database", d.initialize},
		{"run database migrations", d.runMigrations},
	} {
		if err := step.run(); err != nil {
			readDB.Close()
			writeDB.Close()
			return nil, fmt.Errorf("failed to %s: %w", step.name, err)
		}
	}

	logger.Database("Database ready",
		"path", config.Path,
		"existed", existed,
		"wal_mode", config.EnableWAL,
		"read_connections", config.MaxOpenConns)

	return d, nil
}

func openPool(dsn string, maxOpen, maxIdle int, config Config) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(config.ConnMaxLifetime)
	db.SetConnMaxIdleTime(config.ConnMaxIdleTime)
	return db, nil
}

// buildDSN constructs the SQLite Data Source Name using modernc pragma parameters
func buildDSN(config Config) string {
	pragmas := []string{fmt.Sprintf("busy_timeout(%d)", config.BusyTimeoutMs)}
	if config.EnableWAL {
		pragmas = append(pragmas, "journal_mode(WAL)")
	}
	if config.EnableForeignKeys {
		pragmas = append(pragmas, "foreign_keys(1)")
	}
	pragmas = append(pragmas, "synchronous(NORMAL)", "temp_store(MEMORY)")
	return "file:" + config.Path + "?_pragma=" + strings.Join(pragmas, "&_pragma=")
}

// initialize pings both pools and checks the journal mode took effect.
func (d *Database) initialize() error {
	for name, db := range map[string]*sqlx.DB{"read": d.readDB, "write": d.writeDB} {
		if err := db.Ping(); err != nil {
			return fmt.Errorf("failed to ping %s database: %w", name, err)
		}
	}

	if d.config.EnableWAL {
		var journalMode string
		if err := d.writeDB.Get(&journalMode, "PRAGMA journal_mode"); err != nil {
			return fmt.Errorf("failed to read journal mode: %w", err)
		}
		if journalMode != "wal" {
			d.logger.Warn("WAL mode not enabled", "journal_mode", journalMode)
		}
	}
	return nil
}

// ReadDB returns the read database connection
func (d *Database) ReadDB() *sqlx.DB {
	return d.readDB
}

// WriteDB returns the write database connection
func (d *Database) WriteDB() *sqlx.DB {
	return d.writeDB
}

// Close closes both database connections
func (d *Database) Close() error {
	d.logger.Database("Closing database connections")

	if d.config.EnableWAL {
		if _, err := d.writeDB.Exec("PRAGMA wal_checkpoint(TRUNCATE);"); err != nil {
			d.logger.Warn("failed to checkpoint WAL", "error", err)
		}
	}

	var errs []error
	if err := d.readDB.Close(); err != nil {
		errs = append(errs, fmt.Errorf("read connection: %w", err))
	}
	if err := d.writeDB.Close(); err != nil {
		errs = append(errs, fmt.Errorf("write connection: %w", err))
	}
	return errors.Join(errs...)
}

// PoolStats is a snapshot of one connection pool.
type PoolStats struct {
	OpenConnections int    `json:"open_connections"`
	InUse           int    `json:"in_use"`
	Idle            int    `json:"idle"`
	WaitCount       int64  `json:"wait_count"`
	WaitDuration    string `json:"wait_duration"`
	MaxOpenConns    int    `json:"max_open_conns"`
}

// HealthReport is returned by Health and served under /health.
type HealthReport struct {
	SchemaVersion int64     `json:"schema_version"`
	Read          PoolStats `json:"read_pool"`
	Write         PoolStats `json:"write_pool"`
}

func poolStats(db *sqlx.DB) PoolStats {
	s := db.Stats()
	return PoolStats{
		OpenConnections: s.OpenConnections,
		InUse:           s.InUse,
		Idle:            s.Idle,
		WaitCount:       s.WaitCount,
		WaitDuration:    s.WaitDuration.String(),
		MaxOpenConns:    s.MaxOpenConnections,
	}
}

// Health pings both pools and reports their statistics.
func (d *Database) Health(ctx context.Context) (*HealthReport, error) {
	if err := d.readDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("read database ping failed: %w", err)
	}
	if err := d.writeDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("write database ping failed: %w", err)
	}

	version, err := d.SchemaVersion()
	if err != nil {
		return nil, err
	}

	report := &HealthReport{
		SchemaVersion: version,
		Read:          poolStats(d.readDB),
		Write:         poolStats(d.writeDB),
	}
	d.logger.Database("Pool stats",
		"read_open", report.Read.OpenConnections,
		"read_in_use", report.Read.InUse,
		"write_in_use", report.Write.InUse)
	return report, nil
}

// WithTx executes a function within a database transaction (uses write connection)
func (d *Database) WithTx(ctx context.Context, fn func(*sqlx.Tx) error) error {
	tx, err := d.writeDB.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		if rollbackErr := tx.Rollback(); rollbackErr != nil {
			d.logger.Error("Failed to rollback transaction", "error", rollbackErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
