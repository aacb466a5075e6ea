package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/cockroachdb/pebble"

	"hostpro/domain/contracts"
)

// Keys are laid out as "pref|<client>|<key>" so a client's preferences sort together.
const pebblePreferencePrefix = "pref|"

// PebblePreferenceRepository stores client preferences in an embedded Pebble database.
type PebblePreferenceRepository struct {
	mu   sync.RWMutex
	db   *pebble.DB
	path string
}

// OpenPebblePreferenceRepository opens (creating if needed) the Pebble database at path.
func OpenPebblePreferenceRepository(path string) (*PebblePreferenceRepository, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("pebble preference path is empty")
	}
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("preference pebble open: %w", err)
	}
	return &PebblePreferenceRepository{db: db, path: path}, nil
}

var _ contracts.PreferenceStore = (*PebblePreferenceRepository)(nil)

func pebblePreferenceKey(clientID, key string) []byte {
	return []byte(pebblePreferencePrefix + clientID + "|" + key)
}

func (r *PebblePreferenceRepository) Get(_ context.Context, clientID, key string) (string, error) {
	if err := checkClientID(clientID); err != nil {
		return "", err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.db == nil {
		return "", ErrStoreClosed{Backend: "pebble"}
	}
	value, closer, err := r.db.Get(pebblePreferenceKey(clientID, key))
	if errors.Is(err, pebble.ErrNotFound) {
		return "", contracts.ErrPreferenceNotFound
	}
	if err != nil {
		return "", fmt.Errorf("get preference %q: %w", key, err)
	}
	defer closer.Close()

	// value is only valid until closer.Close
	return string(value), nil
}

func (r *PebblePreferenceRepository) Set(_ context.Context, clientID, key, value string) error {
	if err := checkClientID(clientID); err != nil {
		return err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.db == nil {
		return ErrStoreClosed{Backend: "pebble"}
	}
	if err := r.db.Set(pebblePreferenceKey(clientID, key), []byte(value), pebble.Sync); err != nil {
		return fmt.Errorf("set preference %q: %w", key, err)
	}
	return nil
}

func (r *PebblePreferenceRepository) Delete(_ context.Context, clientID, key string) error {
	if err := checkClientID(clientID); err != nil {
		return err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.db == nil {
		return ErrStoreClosed{Backend: "pebble"}
	}
	if err := r.db.Delete(pebblePreferenceKey(clientID, key), pebble.Sync); err != nil {
		return fmt.Errorf("delete preference %q: %w", key, err)
	}
	return nil
}

// Close flushes and releases the Pebble database.
func (r *PebblePreferenceRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.db == nil {
		return nil
	}
	err := r.db.Close()
	r.db = nil
	if err != nil {
		return fmt.Errorf("preference pebble close: %w", err)
	}
	return nil
}
