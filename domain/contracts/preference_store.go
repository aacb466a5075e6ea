package contracts

import "context"

// Well-known preference keys.
const (
	PreferenceAuthToken = "authToken"
	PreferenceTheme     = "theme"
)

// PreferenceStore persists small per-client key/value flags across process restarts.
type PreferenceStore interface {
	// Get returns ErrPreferenceNotFound when the key has never been set for the client.
	Get(ctx context.Context, clientID, key string) (string, error)
	Set(ctx context.Context, clientID, key, value string) error
	// Delete is a no-op for missing keys.
	Delete(ctx context.Context, clientID, key string) error
	Close() error
}
