package testutil

import "github.com/AntonioJCosta/histpick/internal/core/ports"

// MockCommandInjector is a mock implementation of ports.CommandInjector.
type MockCommandInjector struct {
	InjectFunc func(command string, run bool) error
}

// Inject calls the mock InjectFunc.
func (m *MockCommandInjector) Inject(command string, run bool) error {
	if m.InjectFunc != nil {
		return m.InjectFunc(command, run)
	}
	return ErrNotConfigured
}

var _ ports.CommandInjector = (*MockCommandInjector)(nil)
