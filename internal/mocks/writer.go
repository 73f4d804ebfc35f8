package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockWriter implements io.Writer for testing console output failures across packages
type MockWriter struct {
	mock.Mock
}

func (m *MockWriter) Write(p []byte) (int, error) {
	args := m.Called(p)

	// Handle function return types
	if fn, ok := args.Get(0).(func([]byte) int); ok {
		return fn(p), args.Error(1)
	}
	return args.Int(0), args.Error(1)
}
