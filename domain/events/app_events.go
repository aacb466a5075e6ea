package events

import "time"

// ToastsChangedEvent signals that a client's toast stack was mutated.
// Subscribers re-read the current stack rather than trusting event order.
type ToastsChangedEvent struct {
	ClientID  string
	Timestamp time.Time
}

// ThemeChangedEvent signals a client toggled between light and dark.
type ThemeChangedEvent struct {
	ClientID  string
	Dark      bool
	Timestamp time.Time
}

// SessionChangedEvent signals a client logged in or out.
type SessionChangedEvent struct {
	ClientID      string
	Authenticated bool
	Timestamp     time.Time
}

// ContextExpiredEvent signals the registry tore down an idle client context.
type ContextExpiredEvent struct {
	ClientID  string
	IdleFor   time.Duration
	Timestamp time.Time
}
