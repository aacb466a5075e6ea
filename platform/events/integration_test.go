package events

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hostpro/application"
	"hostpro/domain/catalog"
	"hostpro/domain/toast"
	"hostpro/infrastructure/repositories"
)

// Integration test for the complete event flow: store mutation -> EventBus -> EventHandlers -> SSE
func TestEventSystem_EndToEndFlow_StoreChangeToSSE(t *testing.T) {
	c, err := catalog.Load()
	require.NoError(t, err)

	mockSSE := &MockSSEBroadcaster{}
	toasts := make(chan string, 4)
	refreshes := make(chan string, 4)
	mockSSE.On("BroadcastToasts", mock.Anything).Return().Run(func(args mock.Arguments) {
		toasts <- args.String(0)
	})
	mockSSE.On("BroadcastRefresh", mock.Anything, mock.Anything).Return().Run(func(args mock.Arguments) {
		refreshes <- args.String(1)
	})

	bus := NewAppEventBus()
	NewNotificationEventHandlers(mockSSE).RegisterHandlers(bus)

	registry := application.NewContextRegistry(repositories.NewMemoryPreferenceRepository(), c, bus, application.ContextRegistryConfig{})
	defer registry.Close()

	ac, err := registry.Resolve(context.Background(), "client-e2e", false)
	require.NoError(t, err)

	ac.Toasts.Show(toast.Options{Title: "Saved", Duration: toast.Persist()})
	ac.Theme.Toggle(context.Background())

	select {
	case id := <-toasts:
		require.Equal(t, "client-e2e", id)
	case <-time.After(time.Second):
		t.Fatal("toast broadcast not received")
	}
	select {
	case reason := <-refreshes:
		require.Equal(t, "theme", reason)
	case <-time.After(time.Second):
		t.Fatal("refresh broadcast not received")
	}
}
