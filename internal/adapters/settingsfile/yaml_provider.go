package settingsfile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/AntonioJCosta/histpick/internal/core/domain/history"
	"github.com/AntonioJCosta/histpick/internal/core/domain/settings"
	"github.com/AntonioJCosta/histpick/internal/core/ports"
	"gopkg.in/yaml.v3"
)

const settingsFilename = "config.yaml"

// YAMLProvider implements the SettingsProvider interface
// by reading settings from a YAML file.
type YAMLProvider struct {
	filePath string
}

// NewYAMLProvider creates a new YAMLProvider.
// filePath is the settings file; when empty, $HOME/.histpick/config.yaml is used.
func NewYAMLProvider(filePath string) (ports.SettingsProvider, error) {
	if filePath == "" {
		path, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		filePath = path
	}
	return &YAMLProvider{filePath: filePath}, nil
}

// DefaultPath returns $HOME/.histpick/config.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(homeDir, settings.DataDirName, settingsFilename), nil
}

// GetSettings reads the configured file over settings.Default().
// If the file does not exist or is empty, the defaults are returned and no error.
func (p *YAMLProvider) GetSettings() (settings.Settings, error) {
	loaded := settings.Default()

	yamlFile, err := os.ReadFile(p.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return loaded, nil
		}
		return settings.Settings{}, fmt.Errorf("failed to read settings file %s: %w", p.filePath, err)
	}
	if len(yamlFile) == 0 {
		return loaded, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(yamlFile))
	decoder.KnownFields(true)

	if err := decoder.Decode(&loaded); err != nil {
		// A file holding only comments or "---" has no document.
		if errors.Is(err, io.EOF) {
			return settings.Default(), nil
		}
		return settings.Settings{}, fmt.Errorf("failed to unmarshal settings from %s: %w", p.filePath, err)
	}

	if err := validate(loaded); err != nil {
		return settings.Settings{}, fmt.Errorf("invalid settings in %s: %w", p.filePath, err)
	}
	return loaded, nil
}

func validate(s settings.Settings) error {
	if _, err := history.ParseView(s.View); err != nil {
		return err
	}
	switch s.Injection {
	case settings.InjectAuto, settings.InjectTIOCSTI, settings.InjectClipboard, settings.InjectStdout:
	default:
		return fmt.Errorf("unknown injection mode %q", s.Injection)
	}
	return nil
}
