package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"hostpro/database"
	"hostpro/domain/contracts"
)

// BaseRepository provides database access and shared argument checks for SQL-backed repositories.
type BaseRepository struct {
	db *database.Database
}

// NewBaseRepository creates a new BaseRepository with database access
func NewBaseRepository(database *database.Database) *BaseRepository {
	return &BaseRepository{
		db: database,
	}
}

// ReadDB returns the read pool for SELECT operations
func (b *BaseRepository) ReadDB() *sqlx.DB {
	return b.db.ReadDB()
}

// WriteDB returns the serialized connection for INSERT/UPDATE/DELETE operations
func (b *BaseRepository) WriteDB() *sqlx.DB {
	return b.db.WriteDB()
}

// WithTx executes a function within a write transaction
func (b *BaseRepository) WithTx(ctx context.Context, fn func(*sqlx.Tx) error) error {
	return b.db.WithTx(ctx, fn)
}

// checkClientID rejects blank client identifiers before they reach storage.
func checkClientID(clientID string) error {
	if strings.TrimSpace(clientID) == "" {
		return contracts.ErrInvalidClientID
	}
	return nil
}
