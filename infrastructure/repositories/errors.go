package repositories

import "fmt"

// ErrStoreClosed occurs when a preference store is used after Close.
type ErrStoreClosed struct {
	Backend string
}

func (e ErrStoreClosed) Error() string {
	return fmt.Sprintf("%s preference store is closed", e.Backend)
}
