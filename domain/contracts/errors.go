package contracts

import "errors"

// Common errors for domain contracts
var (
	// ErrPreferenceNotFound occurs when a client has no stored value for a preference key
	ErrPreferenceNotFound = errors.New("preference not found")

	// ErrInvalidClientID occurs when a store is asked about an empty client id
	ErrInvalidClientID = errors.New("client id must not be empty")
)
