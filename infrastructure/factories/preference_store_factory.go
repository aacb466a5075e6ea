package factories

import (
	"context"
	"fmt"

	"hostpro/database"
	"hostpro/domain/contracts"
	"hostpro/infrastructure/config"
	"hostpro/infrastructure/repositories"
	"hostpro/logging"
)

// PreferenceStoreFactory builds the preference store selected by configuration.
type PreferenceStoreFactory struct {
	cfg    *config.StoreConfig
	dbCfg  *database.Config
	logger *logging.Logger
}

// NewPreferenceStoreFactory creates a new preference store factory
func NewPreferenceStoreFactory(cfg *config.StoreConfig, dbCfg *database.Config, logger *logging.Logger) *PreferenceStoreFactory {
	return &PreferenceStoreFactory{
		cfg:    cfg,
		dbCfg:  dbCfg,
		logger: logger.WithComponent("preference_store_factory"),
	}
}

// StoreBundle holds the preference store together with the resources it owns.
// Database is nil unless the SQLite backend was selected.
type StoreBundle struct {
	Store    contracts.PreferenceStore
	Database *database.Database
	Backend  string
}

// Close releases the store and any database it opened.
func (b *StoreBundle) Close() error {
	var firstErr error
	if b.Store != nil {
		if err := b.Store.Close(); err != nil {
			firstErr = err
		}
	}
	if b.Database != nil {
		if err := b.Database.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// Create opens the configured backend.
func (f *PreferenceStoreFactory) Create() (*StoreBundle, error) {
	f.logger.Info("Opening preference store", "backend", f.cfg.Backend)

	switch f.cfg.Backend {
	case config.StoreBackendMemory:
		return &StoreBundle{
			Store:   repositories.NewMemoryPreferenceRepository(),
			Backend: config.StoreBackendMemory,
		}, nil

	case config.StoreBackendPebble:
		store, err := repositories.OpenPebblePreferenceRepository(f.cfg.PebblePath)
		if err != nil {
			return nil, err
		}
		return &StoreBundle{Store: store, Backend: config.StoreBackendPebble}, nil

	case config.StoreBackendSQLite, "":
		db, err := database.New(*f.dbCfg, f.logger)
		if err != nil {
			return nil, err
		}
		return &StoreBundle{
			Store:    repositories.NewSQLitePreferenceRepository(db),
			Database: db,
			Backend:  config.StoreBackendSQLite,
		}, nil

	default:
		return nil, fmt.Errorf("unknown preference store backend %q", f.cfg.Backend)
	}
}

// Health reports the backend in use and, for SQLite, connection pool stats.
func (b *StoreBundle) Health(ctx context.Context) (map[string]interface{}, error) {
	report := map[string]interface{}{"backend": b.Backend}
	if b.Database == nil {
		return report, nil
	}
	stats, err := b.Database.Health(ctx)
	if err != nil {
		return report, err
	}
	report["database"] = stats
	return report, nil
}
