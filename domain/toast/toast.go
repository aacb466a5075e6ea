package toast

import (
	"errors"
	"math"
	"strings"
	"time"
)

// Kind identifies the visual style of a toast.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

// DefaultDuration is how long a toast stays visible when no duration is given.
const DefaultDuration = 3000 * time.Millisecond

// Maximum field lengths accepted for a toast.
const (
	MaxTitleLength       = 120
	MaxDescriptionLength = 500
)

// ParseKind maps a raw kind string onto a known Kind. Empty input yields
// success, anything unrecognised yields info.
func ParseKind(raw string) Kind {
	switch Kind(strings.ToLower(strings.TrimSpace(raw))) {
	case "":
		return KindSuccess
	case KindSuccess:
		return KindSuccess
	case KindError:
		return KindError
	case KindInfo:
		return KindInfo
	default:
		return KindInfo
	}
}

// Toast is a transient notification owned by a notifier.
type Toast struct {
	ID          uint64
	Kind        Kind
	Title       string
	Description string
	Duration    time.Duration
	CreatedAt   time.Time
}

// Persistent reports whether the toast stays until dismissed.
func (t Toast) Persistent() bool {
	return t.Duration <= 0
}

// ExpiresAt returns the moment the toast is scheduled to disappear, or the
// zero time for persistent toasts.
func (t Toast) ExpiresAt() time.Time {
	if t.Persistent() {
		return time.Time{}
	}
	return t.CreatedAt.Add(t.Duration)
}

// Options configures a new toast.
type Options struct {
	Title       string         `validate:"max=120"`
	Description string         `validate:"max=500"`
	Kind        Kind
	Duration    *time.Duration // nil uses the notifier default; <= 0 means persistent
}

// MaxDurationMillis is the longest duration, in milliseconds, that fits a time.Duration.
const MaxDurationMillis = math.MaxInt64 / int64(time.Millisecond)

// ErrDurationOutOfRange is returned for millisecond durations too large to represent.
var ErrDurationOutOfRange = errors.New("toast duration out of range")

// FromMillis converts a client supplied millisecond duration. Zero or below
// means persistent.
func FromMillis(ms int64) (time.Duration, error) {
	if ms <= 0 {
		return 0, nil
	}
	if ms > MaxDurationMillis {
		return 0, ErrDurationOutOfRange
	}
	return time.Duration(ms) * time.Millisecond, nil
}

// Persist returns a pointer to a zero duration, marking a toast persistent.
func Persist() *time.Duration {
	d := time.Duration(0)
	return &d
}

// For returns a pointer to d for use in Options.Duration.
func For(d time.Duration) *time.Duration {
	return &d
}

// Normalize fills defaults and clamps field lengths. It never fails.
func (o Options) Normalize(defaultDuration time.Duration) (Kind, string, string, time.Duration) {
	kind := ParseKind(string(o.Kind))

	duration := defaultDuration
	if o.Duration != nil {
		duration = *o.Duration
	}
	if duration < 0 {
		duration = 0
	}

	return kind, truncate(strings.TrimSpace(o.Title), MaxTitleLength), truncate(strings.TrimSpace(o.Description), MaxDescriptionLength), duration
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
