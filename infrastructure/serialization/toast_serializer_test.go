package serialization

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostpro/domain/toast"
)

func TestToastSerializer_EncodeToasts(t *testing.T) {
	s := NewToastSerializer()
	created := time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

	toasts := []toast.Toast{
		{ID: 2, Kind: toast.KindError, Title: "Error", Duration: 0, CreatedAt: created},
		{ID: 1, Kind: toast.KindSuccess, Title: "Saved", Description: "done", Duration: 3 * time.Second, CreatedAt: created},
	}

	var buf bytes.Buffer
	require.NoError(t, s.EncodeToasts(&buf, toasts))

	var decoded []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)

	assert.Equal(t, float64(2), decoded[0]["id"])
	assert.Equal(t, "error", decoded[0]["type"])
	assert.Equal(t, float64(0), decoded[0]["duration"])
	assert.NotContains(t, decoded[0], "expiresAt", "persistent toasts never expire")

	assert.Equal(t, "success", decoded[1]["type"])
	assert.Equal(t, float64(3000), decoded[1]["duration"])
	assert.Equal(t, "2025-01-15T10:00:03Z", decoded[1]["expiresAt"])
}

func TestToastSerializer_EncodeEmptyStack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewToastSerializer().EncodeToasts(&buf, nil))
	assert.Equal(t, "[]", strings.TrimSpace(buf.String()))
}

func TestToastSerializer_DecodeRequest(t *testing.T) {
	s := NewToastSerializer()

	t.Run("explicit duration", func(t *testing.T) {
		req, err := s.DecodeRequest(strings.NewReader(`{"title":"Hi","type":"info","duration":500}`))
		require.NoError(t, err)

		opts, err := req.Options()
		require.NoError(t, err)
		assert.Equal(t, "Hi", opts.Title)
		assert.Equal(t, toast.KindInfo, opts.Kind)
		require.NotNil(t, opts.Duration)
		assert.Equal(t, 500*time.Millisecond, *opts.Duration)
	})

	t.Run("missing duration uses default", func(t *testing.T) {
		req, err := s.DecodeRequest(strings.NewReader(`{"title":"Hi"}`))
		require.NoError(t, err)
		opts, err := req.Options()
		require.NoError(t, err)
		assert.Nil(t, opts.Duration)
	})

	t.Run("duration too large to represent", func(t *testing.T) {
		req, err := s.DecodeRequest(strings.NewReader(`{"title":"Hi","duration":9223372036855}`))
		require.NoError(t, err)
		_, err = req.Options()
		assert.ErrorIs(t, err, toast.ErrDurationOutOfRange)
	})

	t.Run("largest representable duration stays timed", func(t *testing.T) {
		req, err := s.DecodeRequest(strings.NewReader(`{"title":"Hi","duration":9223372036854}`))
		require.NoError(t, err)
		opts, err := req.Options()
		require.NoError(t, err)
		require.NotNil(t, opts.Duration)
		assert.Positive(t, *opts.Duration)
	})

	t.Run("malformed body", func(t *testing.T) {
		_, err := s.DecodeRequest(strings.NewReader(`{"title":`))
		assert.Error(t, err)
	})
}
