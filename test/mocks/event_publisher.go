package mocks

import (
	"github.com/stretchr/testify/mock"

	"hostpro/domain/events"
)

// MockAppEventPublisher is a mock implementation of AppEventPublisher for testing
type MockAppEventPublisher struct {
	mock.Mock
}

func (m *MockAppEventPublisher) PublishToastsChanged(event events.ToastsChangedEvent) {
	m.Called(event)
}

func (m *MockAppEventPublisher) PublishThemeChanged(event events.ThemeChangedEvent) {
	m.Called(event)
}

func (m *MockAppEventPublisher) PublishSessionChanged(event events.SessionChangedEvent) {
	m.Called(event)
}

func (m *MockAppEventPublisher) PublishContextExpired(event events.ContextExpiredEvent) {
	m.Called(event)
}
