package events

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hostpro/domain/events"
)

func TestAppEventBus_PublishToastsChanged_Success(t *testing.T) {
	// Arrange
	eventBus := NewAppEventBus()
	done := make(chan events.ToastsChangedEvent, 1)

	eventBus.OnToastsChanged(func(event events.ToastsChangedEvent) {
		done <- event
	})

	// Act
	eventBus.PublishToastsChanged(events.ToastsChangedEvent{ClientID: "client-1", Timestamp: time.Now()})

	// Assert
	select {
	case received := <-done:
		assert.Equal(t, "client-1", received.ClientID)
		assert.False(t, received.Timestamp.IsZero())
	case <-time.After(100 * time.Millisecond):
		t.Fatal("Handler was not called within timeout")
	}
}

func TestAppEventBus_PublishThemeAndSession_Success(t *testing.T) {
	eventBus := NewAppEventBus()
	themes := make(chan events.ThemeChangedEvent, 1)
	sessions := make(chan events.SessionChangedEvent, 1)
	expired := make(chan events.ContextExpiredEvent, 1)

	eventBus.OnThemeChanged(func(e events.ThemeChangedEvent) { themes <- e })
	eventBus.OnSessionChanged(func(e events.SessionChangedEvent) { sessions <- e })
	eventBus.OnContextExpired(func(e events.ContextExpiredEvent) { expired <- e })

	eventBus.PublishThemeChanged(events.ThemeChangedEvent{ClientID: "c", Dark: true})
	eventBus.PublishSessionChanged(events.SessionChangedEvent{ClientID: "c", Authenticated: true})
	eventBus.PublishContextExpired(events.ContextExpiredEvent{ClientID: "c", IdleFor: time.Minute})

	select {
	case e := <-themes:
		assert.True(t, e.Dark)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("theme handler not called")
	}
	select {
	case e := <-sessions:
		assert.True(t, e.Authenticated)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("session handler not called")
	}
	select {
	case e := <-expired:
		assert.Equal(t, time.Minute, e.IdleFor)
	case <-time.After(100 * time.Millisecond):
		t.Fatal("expired handler not called")
	}
}

func TestAppEventBus_MultipleHandlers(t *testing.T) {
	eventBus := NewAppEventBus()

	var wg sync.WaitGroup
	var mu sync.Mutex
	calls := 0

	for i := 0; i < 3; i++ {
		wg.Add(1)
		eventBus.OnToastsChanged(func(events.ToastsChangedEvent) {
			defer wg.Done()
			mu.Lock()
			calls++
			mu.Unlock()
		})
	}

	eventBus.PublishToastsChanged(events.ToastsChangedEvent{ClientID: "c"})

	waited := make(chan struct{})
	go func() {
		wg.Wait()
		close(waited)
	}()
	select {
	case <-waited:
	case <-time.After(200 * time.Millisecond):
		t.Fatal("not every handler ran")
	}
	assert.Equal(t, 3, calls)
}

func TestAppEventBus_PanickingHandlerDoesNotAffectOthers(t *testing.T) {
	eventBus := NewAppEventBus()
	done := make(chan struct{}, 1)

	eventBus.OnSessionChanged(func(events.SessionChangedEvent) {
		panic("boom")
	})
	eventBus.OnSessionChanged(func(events.SessionChangedEvent) {
		done <- struct{}{}
	})

	require.NotPanics(t, func() {
		eventBus.PublishSessionChanged(events.SessionChangedEvent{ClientID: "c"})
	})

	select {
	case <-done:
	case <-time.After(100 * time.Millisecond):
		t.Fatal("healthy handler was not called")
	}
}

func TestAppEventBus_NoHandlers(t *testing.T) {
	eventBus := NewAppEventBus()
	assert.NotPanics(t, func() {
		eventBus.PublishToastsChanged(events.ToastsChangedEvent{ClientID: "c"})
		eventBus.PublishThemeChanged(events.ThemeChangedEvent{ClientID: "c"})
	})
}
