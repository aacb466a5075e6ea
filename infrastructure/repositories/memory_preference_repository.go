package repositories

import (
	"context"
	"sync"

	"hostpro/domain/contracts"
)

// MemoryPreferenceRepository keeps preferences in process memory. Values do not survive a restart.
type MemoryPreferenceRepository struct {
	mu     sync.RWMutex
	values map[string]map[string]string
	closed bool
}

// NewMemoryPreferenceRepository creates an empty in-memory preference store.
func NewMemoryPreferenceRepository() *MemoryPreferenceRepository {
	return &MemoryPreferenceRepository{values: make(map[string]map[string]string)}
}

var _ contracts.PreferenceStore = (*MemoryPreferenceRepository)(nil)

func (r *MemoryPreferenceRepository) Get(_ context.Context, clientID, key string) (string, error) {
	if err := checkClientID(clientID); err != nil {
		return "", err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.closed {
		return "", ErrStoreClosed{Backend: "memory"}
	}
	value, ok := r.values[clientID][key]
	if !ok {
		return "", contracts.ErrPreferenceNotFound
	}
	return value, nil
}

func (r *MemoryPreferenceRepository) Set(_ context.Context, clientID, key, value string) error {
	if err := checkClientID(clientID); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrStoreClosed{Backend: "memory"}
	}
	prefs, ok := r.values[clientID]
	if !ok {
		prefs = make(map[string]string)
		r.values[clientID] = prefs
	}
	prefs[key] = value
	return nil
}

func (r *MemoryPreferenceRepository) Delete(_ context.Context, clientID, key string) error {
	if err := checkClientID(clientID); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrStoreClosed{Backend: "memory"}
	}
	delete(r.values[clientID], key)
	return nil
}

func (r *MemoryPreferenceRepository) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.closed = true
	return nil
}
