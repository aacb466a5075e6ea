package serialization

import (
	"fmt"
	"io"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"

	"hostpro/domain/toast"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// ToastDTO is the wire form of a toast.
type ToastDTO struct {
	ID          uint64     `json:"id"`
	Kind        string     `json:"type"`
	Title       string     `json:"title,omitempty"`
	Description string     `json:"description,omitempty"`
	DurationMs  int64      `json:"duration"`
	CreatedAt   time.Time  `json:"createdAt"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
}

// ToastRequest is the JSON body or form accepted when a client asks for a
// toast. A missing duration uses the notifier default; zero or below is
// persistent.
type ToastRequest struct {
	Title       string `json:"title" form:"title"`
	Description string `json:"description" form:"description"`
	Kind        string `json:"type" form:"type"`
	DurationMs  *int64 `json:"duration" form:"duration"`
}

// Options converts the request into notifier options.
func (r ToastRequest) Options() (toast.Options, error) {
	opts := toast.Options{
		Title:       r.Title,
		Description: r.Description,
		Kind:        toast.Kind(strings.ToLower(r.Kind)),
	}
	if r.DurationMs != nil {
		d, err := toast.FromMillis(*r.DurationMs)
		if err != nil {
			return toast.Options{}, err
		}
		opts.Duration = toast.For(d)
	}
	return opts, nil
}

// ToastSerializer handles JSON encoding of toast stacks and decoding of toast requests.
type ToastSerializer struct{}

// NewToastSerializer creates a new toast serializer.
func NewToastSerializer() *ToastSerializer {
	return &ToastSerializer{}
}

// ToDTO converts a toast to its wire form.
func (s *ToastSerializer) ToDTO(t toast.Toast) ToastDTO {
	dto := ToastDTO{
		ID:          t.ID,
		Kind:        string(t.Kind),
		Title:       t.Title,
		Description: t.Description,
		DurationMs:  t.Duration.Milliseconds(),
		CreatedAt:   t.CreatedAt,
	}
	if !t.Persistent() {
		expires := t.ExpiresAt()
		dto.ExpiresAt = &expires
	}
	return dto
}

// EncodeToasts writes the stack as a JSON array, newest first.
func (s *ToastSerializer) EncodeToasts(w io.Writer, toasts []toast.Toast) error {
	dtos := make([]ToastDTO, 0, len(toasts))
	for _, t := range toasts {
		dtos = append(dtos, s.ToDTO(t))
	}
	return Encode(w, dtos)
}

// DecodeRequest reads a toast request from r.
func (s *ToastSerializer) DecodeRequest(r io.Reader) (ToastRequest, error) {
	var req ToastRequest
	if err := json.NewDecoder(r).Decode(&req); err != nil {
		return ToastRequest{}, fmt.Errorf("failed to decode toast request: %w", err)
	}
	return req, nil
}

// Encode writes v as JSON.
func Encode(w io.Writer, v interface{}) error {
	if err := json.NewEncoder(w).Encode(v); err != nil {
		return fmt.Errorf("failed to encode json: %w", err)
	}
	return nil
}
