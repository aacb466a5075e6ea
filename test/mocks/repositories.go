package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockPreferenceStore is a mock implementation of PreferenceStore
type MockPreferenceStore struct {
	mock.Mock
}

func (m *MockPreferenceStore) Get(ctx context.Context, clientID, key string) (string, error) {
	args := m.Called(ctx, clientID, key)
	return args.String(0), args.Error(1)
}

func (m *MockPreferenceStore) Set(ctx context.Context, clientID, key, value string) error {
	args := m.Called(ctx, clientID, key, value)
	return args.Error(0)
}

func (m *MockPreferenceStore) Delete(ctx context.Context, clientID, key string) error {
	args := m.Called(ctx, clientID, key)
	return args.Error(0)
}

func (m *MockPreferenceStore) Close() error {
	args := m.Called()
	return args.Error(0)
}
