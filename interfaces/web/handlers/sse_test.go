package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostpro/application"
	"hostpro/domain/toast"
	"hostpro/infrastructure/repositories"
	"hostpro/test/helpers"
)

type stubRenderer struct {
	html string
	err  error
}

func (s *stubRenderer) RenderStack(_ context.Context, toasts []toast.Toast) (string, error) {
	return s.html, s.err
}

func newTestManager(t *testing.T, renderer *stubRenderer) (*SSEManager, *application.ContextRegistry) {
	t.Helper()
	registry := application.NewContextRegistry(
		repositories.NewMemoryPreferenceRepository(),
		helpers.LoadCatalog(t),
		nil,
		application.ContextRegistryConfig{Scheduler: helpers.NewFakeScheduler()},
	)
	t.Cleanup(registry.Close)

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return NewSSEManager(ctx, registry, renderer), registry
}

func TestSSEManager_BroadcastToastsReachesEveryTab(t *testing.T) {
	manager, registry := newTestManager(t, &stubRenderer{html: "<ol class=\"toast-stack\">\n<li>Saved</li>\n</ol>"})
	_, err := registry.Resolve(context.Background(), "client-a", false)
	require.NoError(t, err)

	tab1 := httptest.NewRecorder()
	tab2 := httptest.NewRecorder()
	other := httptest.NewRecorder()
	require.NotNil(t, manager.AddConnection("client-a", tab1))
	require.NotNil(t, manager.AddConnection("client-a", tab2))
	require.NotNil(t, manager.AddConnection("client-b", other))
	assert.Equal(t, 2, manager.ConnectionCount("client-a"))

	manager.BroadcastToasts("client-a")

	want := "event: toasts\ndata: <ol class=\"toast-stack\">\ndata: <li>Saved</li>\ndata: </ol>\n\n"
	assert.Equal(t, want, tab1.Body.String())
	assert.Equal(t, want, tab2.Body.String())
	assert.Empty(t, other.Body.String())
	assert.Equal(t, "text/event-stream", tab1.Header().Get("Content-Type"))
}

func TestSSEManager_BroadcastToastsWithoutContextIsNoop(t *testing.T) {
	manager, _ := newTestManager(t, &stubRenderer{html: "<ol></ol>"})
	rec := httptest.NewRecorder()
	manager.AddConnection("ghost", rec)

	manager.BroadcastToasts("ghost")

	assert.Empty(t, rec.Body.String())
}

func TestSSEManager_RenderErrorSendsNothing(t *testing.T) {
	manager, registry := newTestManager(t, &stubRenderer{err: errors.New("boom")})
	_, err := registry.Resolve(context.Background(), "client-a", false)
	require.NoError(t, err)
	rec := httptest.NewRecorder()
	manager.AddConnection("client-a", rec)

	manager.BroadcastToasts("client-a")

	assert.Empty(t, rec.Body.String())
}

func TestSSEManager_RefreshAndDisconnect(t *testing.T) {
	manager, _ := newTestManager(t, &stubRenderer{})
	rec := httptest.NewRecorder()
	conn := manager.AddConnection("client-a", rec)

	manager.BroadcastRefresh("client-a", "theme")
	assert.Equal(t, "event: refresh\ndata: theme\n\n", rec.Body.String())

	manager.DisconnectClient("client-a")
	assert.Zero(t, manager.ConnectionCount("client-a"))
	select {
	case <-conn.done:
	default:
		t.Fatal("connection should be closed")
	}

	// Sending on a closed connection is refused.
	assert.ErrorIs(t, manager.sendToConnection(conn, EventRefresh, "x"), errConnectionClosed)
}

func TestSSEManager_KeepAliveIsComment(t *testing.T) {
	manager, _ := newTestManager(t, &stubRenderer{})
	rec := httptest.NewRecorder()
	manager.AddConnection("client-a", rec)

	manager.SendKeepAlive()

	assert.True(t, strings.HasPrefix(rec.Body.String(), ": "))
	assert.NotContains(t, rec.Body.String(), "event:")
}

func TestSSEManager_HandleRequiresAppContext(t *testing.T) {
	manager, _ := newTestManager(t, &stubRenderer{})
	rec := httptest.NewRecorder()

	manager.HandleSSEConnection(rec, httptest.NewRequest(http.MethodGet, "/events", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSSEManager_HandleSendsCurrentStackAndStopsWithRequest(t *testing.T) {
	manager, registry := newTestManager(t, &stubRenderer{html: "<ol></ol>"})
	ac, err := registry.Resolve(context.Background(), "client-a", false)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(application.WithAppContext(context.Background(), ac))
	req := httptest.NewRequest(http.MethodGet, "/events", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		manager.HandleSSEConnection(rec, req)
		close(done)
	}()

	require.Eventually(t, func() bool { return manager.ConnectionCount("client-a") == 1 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("handler did not return after the request context ended")
	}
	assert.Zero(t, manager.ConnectionCount("client-a"))
	assert.Contains(t, rec.Body.String(), "event: toasts\ndata: <ol></ol>\n\n")
}
