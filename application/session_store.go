package application

import (
	"context"
	"errors"
	"sync"

	"hostpro/domain/contracts"
	"hostpro/logging"
)

// SessionState is the authentication state of a client.
type SessionState int

const (
	Anonymous SessionState = iota
	Authenticated
)

func (s SessionState) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// SessionStore tracks whether a client is logged in. Presence of a stored
// token is the only credential.
type SessionStore struct {
	mu            sync.Mutex
	prefs         contracts.PreferenceStore
	clientID      string
	authenticated bool
	logger        *logging.Logger

	subs listeners[SessionState]
}

// NewSessionStore creates a session store backed by prefs for the given client.
func NewSessionStore(prefs contracts.PreferenceStore, clientID string) *SessionStore {
	return &SessionStore{
		prefs:    prefs,
		clientID: clientID,
		logger:   logging.Default().WithComponent("session_store").WithClient(clientID),
	}
}

// Init sets the state from the presence of a persisted token.
func (s *SessionStore) Init(ctx context.Context) {
	token, err := s.prefs.Get(ctx, s.clientID, contracts.PreferenceAuthToken)
	if err != nil && !errors.Is(err, contracts.ErrPreferenceNotFound) {
		s.logger.Error("Failed to read auth token", "error", err)
	}

	s.mu.Lock()
	s.authenticated = err == nil && token != ""
	s.mu.Unlock()
}

// Login persists token and marks the client authenticated. An empty token
// is ignored.
func (s *SessionStore) Login(ctx context.Context, token string) {
	if token == "" {
		return
	}

	s.mu.Lock()
	if err := s.prefs.Set(ctx, s.clientID, contracts.PreferenceAuthToken, token); err != nil {
		s.logger.ClientError("Failed to persist auth token", err, s.clientID)
	}
	s.authenticated = true
	s.logger.Security("Client logged in", "client_id", s.clientID)

	s.subs.deliver.Lock()
	s.mu.Unlock()
	s.subs.emit(Authenticated)
	s.subs.deliver.Unlock()
}

// Logout clears the persisted token and marks the client anonymous. Callers
// redirect to the landing page afterwards.
func (s *SessionStore) Logout(ctx context.Context) {
	s.mu.Lock()
	if err := s.prefs.Delete(ctx, s.clientID, contracts.PreferenceAuthToken); err != nil {
		s.logger.ClientError("Failed to clear auth token", err, s.clientID)
	}
	s.authenticated = false
	s.logger.Security("Client logged out", "client_id", s.clientID)

	s.subs.deliver.Lock()
	s.mu.Unlock()
	s.subs.emit(Anonymous)
	s.subs.deliver.Unlock()
}

// IsAuthenticated reports the current flag.
func (s *SessionStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// State returns the current state.
func (s *SessionStore) State() SessionState {
	if s.IsAuthenticated() {
		return Authenticated
	}
	return Anonymous
}

// Subscribe registers fn to receive the new state after login and logout.
func (s *SessionStore) Subscribe(fn func(SessionState)) (unsubscribe func()) {
	return s.subs.add(fn)
}

func (s *SessionStore) close() {
	s.subs.clear()
}
