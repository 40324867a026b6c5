package testutil

import (
	"github.com/AntonioJCosta/histpick/internal/core/domain/settings"
	"github.com/AntonioJCosta/histpick/internal/core/ports"
)

// MockSettingsProvider is a mock implementation of ports.SettingsProvider.
type MockSettingsProvider struct {
	GetSettingsFunc func() (settings.Settings, error)
}

// GetSettings mocks the GetSettings method.
func (m *MockSettingsProvider) GetSettings() (settings.Settings, error) {
	if m.GetSettingsFunc != nil {
		return m.GetSettingsFunc()
	}
	return settings.Default(), nil // Default behavior
}

var _ ports.SettingsProvider = (*MockSettingsProvider)(nil)
