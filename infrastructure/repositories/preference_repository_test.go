package repositories

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostpro/database"
	"hostpro/domain/contracts"
	"hostpro/logging"
)

// storeFactories builds every backend so the same behaviour is checked against each.
func storeFactories(t *testing.T) map[string]func(t *testing.T) contracts.PreferenceStore {
	t.Helper()
	return map[string]func(t *testing.T) contracts.PreferenceStore{
		"memory": func(t *testing.T) contracts.PreferenceStore {
			return NewMemoryPreferenceRepository()
		},
		"sqlite": func(t *testing.T) contracts.PreferenceStore {
			logger := logging.NewLogger(&logging.Config{Level: "error", Output: "discard"})
			db, err := database.New(database.Config{
				Path:          filepath.Join(t.TempDir(), "prefs.db"),
				MaxOpenConns:  2,
				MaxIdleConns:  1,
				BusyTimeoutMs: 1000,
				EnableWAL:     true,
			}, logger)
			require.NoError(t, err)
			t.Cleanup(func() { db.Close() })
			return NewSQLitePreferenceRepository(db)
		},
		"pebble": func(t *testing.T) contracts.PreferenceStore {
			store, err := OpenPebblePreferenceRepository(filepath.Join(t.TempDir(), "prefs"))
			require.NoError(t, err)
			t.Cleanup(func() { store.Close() })
			return store
		},
	}
}

func TestPreferenceStores_RoundTrip(t *testing.T) {
	ctx := context.Background()

	for name, factory := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			store := factory(t)

			_, err := store.Get(ctx, "client-a", contracts.PreferenceTheme)
			assert.ErrorIs(t, err, contracts.ErrPreferenceNotFound)

			require.NoError(t, store.Set(ctx, "client-a", contracts.PreferenceTheme, "dark"))
			value, err := store.Get(ctx, "client-a", contracts.PreferenceTheme)
			require.NoError(t, err)
			assert.Equal(t, "dark", value)

			// Overwrite replaces the value
			require.NoError(t, store.Set(ctx, "client-a", contracts.PreferenceTheme, "light"))
			value, err = store.Get(ctx, "client-a", contracts.PreferenceTheme)
			require.NoError(t, err)
			assert.Equal(t, "light", value)

			// Clients are isolated
			_, err = store.Get(ctx, "client-b", contracts.PreferenceTheme)
			assert.ErrorIs(t, err, contracts.ErrPreferenceNotFound)

			require.NoError(t, store.Delete(ctx, "client-a", contracts.PreferenceTheme))
			_, err = store.Get(ctx, "client-a", contracts.PreferenceTheme)
			assert.ErrorIs(t, err, contracts.ErrPreferenceNotFound)

			// Deleting again is a no-op
			assert.NoError(t, store.Delete(ctx, "client-a", contracts.PreferenceTheme))
		})
	}
}

func TestPreferenceStores_RejectBlankClient(t *testing.T) {
	ctx := context.Background()

	for name, factory := range storeFactories(t) {
		t.Run(name, func(t *testing.T) {
			store := factory(t)
			assert.ErrorIs(t, store.Set(ctx, " ", contracts.PreferenceAuthToken, "tok"), contracts.ErrInvalidClientID)
			_, err := store.Get(ctx, "", contracts.PreferenceAuthToken)
			assert.ErrorIs(t, err, contracts.ErrInvalidClientID)
		})
	}
}

func TestPebblePreferenceRepository_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prefs")

	store, err := OpenPebblePreferenceRepository(path)
	require.NoError(t, err)
	require.NoError(t, store.Set(ctx, "client-a", contracts.PreferenceAuthToken, "tok123"))
	require.NoError(t, store.Close())

	_, err = store.Get(ctx, "client-a", contracts.PreferenceAuthToken)
	assert.ErrorAs(t, err, &ErrStoreClosed{})

	reopened, err := OpenPebblePreferenceRepository(path)
	require.NoError(t, err)
	defer reopened.Close()

	value, err := reopened.Get(ctx, "client-a", contracts.PreferenceAuthToken)
	require.NoError(t, err)
	assert.Equal(t, "tok123", value)
}

func TestMemoryPreferenceRepository_ClosedStoreFails(t *testing.T) {
	store := NewMemoryPreferenceRepository()
	require.NoError(t, store.Close())

	err := store.Set(context.Background(), "client-a", contracts.PreferenceTheme, "dark")
	assert.EqualError(t, err, "memory preference store is closed")
}
