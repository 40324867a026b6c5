package ports

import "github.com/AntonioJCosta/histpick/internal/core/domain/settings"

// SettingsProvider defines the interface for sourcing picker settings,
// like a configuration file.
type SettingsProvider interface {
	// GetSettings loads settings, falling back to defaults for absent values.
	GetSettings() (settings.Settings, error)
}
