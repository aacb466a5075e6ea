package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"hostpro/database"
	"hostpro/domain/contracts"
)

// SQLitePreferenceRepository stores client preferences in the client_preferences table.
type SQLitePreferenceRepository struct {
	*BaseRepository
}

// NewSQLitePreferenceRepository creates a SQLite-backed preference store.
func NewSQLitePreferenceRepository(db *database.Database) *SQLitePreferenceRepository {
	return &SQLitePreferenceRepository{BaseRepository: NewBaseRepository(db)}
}

var _ contracts.PreferenceStore = (*SQLitePreferenceRepository)(nil)

func (r *SQLitePreferenceRepository) Get(ctx context.Context, clientID, key string) (string, error) {
	if err := checkClientID(clientID); err != nil {
		return "", err
	}

	var value string
	err := r.ReadDB().GetContext(ctx, &value,
		`SELECT pref_value FROM client_preferences WHERE client_id = ? AND pref_key = ?`,
		clientID, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", contracts.ErrPreferenceNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get preference %q: %w", key, err)
	}
	return value, nil
}

func (r *SQLitePreferenceRepository) Set(ctx context.Context, clientID, key, value string) error {
	if err := checkClientID(clientID); err != nil {
		return err
	}

	_, err := r.WriteDB().ExecContext(ctx, `
		INSERT INTO client_preferences (client_id, pref_key, pref_value, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (client_id, pref_key)
		DO UPDATE SET pref_value = excluded.pref_value, updated_at = CURRENT_TIMESTAMP`,
		clientID, key, value)
	if err != nil {
		return fmt.Errorf("set preference %q: %w", key, err)
	}
	return nil
}

func (r *SQLitePreferenceRepository) Delete(ctx context.Context, clientID, key string) error {
	if err := checkClientID(clientID); err != nil {
		return err
	}

	if _, err := r.WriteDB().ExecContext(ctx,
		`DELETE FROM client_preferences WHERE client_id = ? AND pref_key = ?`,
		clientID, key); err != nil {
		return fmt.Errorf("delete preference %q: %w", key, err)
	}
	return nil
}

// Close is a no-op; the database lifecycle belongs to its owner.
func (r *SQLitePreferenceRepository) Close() error {
	return nil
}
