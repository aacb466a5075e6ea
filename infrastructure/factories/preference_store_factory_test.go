package factories

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostpro/database"
	"hostpro/domain/contracts"
	"hostpro/infrastructure/config"
	"hostpro/logging"
)

func quietLogger() *logging.Logger {
	return logging.NewLogger(&logging.Config{Level: "error", Output: "discard"})
}

func TestPreferenceStoreFactory_Backends(t *testing.T) {
	dir := t.TempDir()
	dbCfg := &database.Config{
		Path:          filepath.Join(dir, "hostpro.db"),
		MaxOpenConns:  2,
		MaxIdleConns:  1,
		BusyTimeoutMs: 1000,
	}

	tests := []struct {
		backend     string
		expectDB    bool
		pebblePath  string
		expectedTag string
	}{
		{config.StoreBackendMemory, false, "", config.StoreBackendMemory},
		{config.StoreBackendPebble, false, filepath.Join(dir, "pebble"), config.StoreBackendPebble},
		{config.StoreBackendSQLite, true, "", config.StoreBackendSQLite},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			factory := NewPreferenceStoreFactory(&config.StoreConfig{Backend: tt.backend, PebblePath: tt.pebblePath}, dbCfg, quietLogger())

			bundle, err := factory.Create()
			require.NoError(t, err)
			defer bundle.Close()

			assert.Equal(t, tt.expectedTag, bundle.Backend)
			assert.Equal(t, tt.expectDB, bundle.Database != nil)

			ctx := context.Background()
			require.NoError(t, bundle.Store.Set(ctx, "client", contracts.PreferenceTheme, "dark"))
			value, err := bundle.Store.Get(ctx, "client", contracts.PreferenceTheme)
			require.NoError(t, err)
			assert.Equal(t, "dark", value)

			health, err := bundle.Health(ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.expectedTag, health["backend"])
			_, hasDB := health["database"]
			assert.Equal(t, tt.expectDB, hasDB)
		})
	}
}

func TestPreferenceStoreFactory_UnknownBackend(t *testing.T) {
	factory := NewPreferenceStoreFactory(&config.StoreConfig{Backend: "etcd"}, &database.Config{}, quietLogger())
	_, err := factory.Create()
	assert.ErrorContains(t, err, "etcd")
}
