package application

import (
	"context"
	"errors"
	"sync"

	"hostpro/domain/contracts"
	"hostpro/logging"
)

// Persisted theme values.
const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// ThemeStore holds one client's dark/light flag.
type ThemeStore struct {
	mu       sync.Mutex
	prefs    contracts.PreferenceStore
	clientID string
	dark     bool
	logger   *logging.Logger

	subs listeners[bool]
}

// NewThemeStore creates a theme store backed by prefs for the given client.
func NewThemeStore(prefs contracts.PreferenceStore, clientID string) *ThemeStore {
	return &ThemeStore{
		prefs:    prefs,
		clientID: clientID,
		logger:   logging.Default().WithComponent("theme_store").WithClient(clientID),
	}
}

// Init loads the persisted theme. When nothing usable is stored the system
// preference decides.
func (s *ThemeStore) Init(ctx context.Context, systemPrefersDark bool) {
	dark := systemPrefersDark

	value, err := s.prefs.Get(ctx, s.clientID, contracts.PreferenceTheme)
	switch {
	case err == nil && value == ThemeDark:
		dark = true
	case err == nil && value == ThemeLight:
		dark = false
	case err == nil:
		s.logger.Warn("Ignoring unrecognised stored theme", "value", value)
	case !errors.Is(err, contracts.ErrPreferenceNotFound):
		s.logger.Error("Failed to read theme preference", "error", err)
	}

	s.mu.Lock()
	s.dark = dark
	s.mu.Unlock()
}

// Toggle flips the theme, persists it and notifies subscribers. A failed
// write is logged and the in-memory value still changes.
func (s *ThemeStore) Toggle(ctx context.Context) bool {
	s.mu.Lock()
	s.dark = !s.dark
	dark := s.dark

	value := ThemeLight
	if dark {
		value = ThemeDark
	}
	if err := s.prefs.Set(ctx, s.clientID, contracts.PreferenceTheme, value); err != nil {
		s.logger.ClientError("Failed to persist theme", err, s.clientID)
	}

	s.subs.deliver.Lock()
	s.mu.Unlock()
	s.subs.emit(dark)
	s.subs.deliver.Unlock()

	return dark
}

// IsDark reports the current theme.
func (s *ThemeStore) IsDark() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dark
}

// Name returns the current theme as its persisted value.
func (s *ThemeStore) Name() string {
	if s.IsDark() {
		return ThemeDark
	}
	return ThemeLight
}

// Subscribe registers fn to receive the new flag after every toggle.
func (s *ThemeStore) Subscribe(fn func(dark bool)) (unsubscribe func()) {
	return s.subs.add(fn)
}

func (s *ThemeStore) close() {
	s.subs.clear()
}
