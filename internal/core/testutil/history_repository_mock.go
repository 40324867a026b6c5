package testutil

import (
	"github.com/AntonioJCosta/histpick/internal/core/ports"
)

// MockHistoryRepository is a mock implementation of the ports.HistoryRepository interface.
type MockHistoryRepository struct {
	LoadLogFunc             func() ([]string, error)
	LoadFavoritesFunc       func() ([]string, error)
	SaveFavoritesFunc       func(favorites []string) error
	DeleteFromLogFunc       func(command string) error
	GetSourceIdentifierFunc func() string

	// SavedFavorites records every sequence passed to SaveFavorites.
	SavedFavorites [][]string
	// DeletedCommands records every command passed to DeleteFromLog.
	DeletedCommands []string
}

// LoadLog mocks the LoadLog method.
func (m *MockHistoryRepository) LoadLog() ([]string, error) {
	if m.LoadLogFunc != nil {
		return m.LoadLogFunc()
	}
	return []string{}, nil
}

// LoadFavorites mocks the LoadFavorites method.
func (m *MockHistoryRepository) LoadFavorites() ([]string, error) {
	if m.LoadFavoritesFunc != nil {
		return m.LoadFavoritesFunc()
	}
	return []string{}, nil
}

// SaveFavorites mocks the SaveFavorites method.
func (m *MockHistoryRepository) SaveFavorites(favorites []string) error {
	m.SavedFavorites = append(m.SavedFavorites, append([]string(nil), favorites...))
	if m.SaveFavoritesFunc != nil {
		return m.SaveFavoritesFunc(favorites)
	}
	return nil
}

// DeleteFromLog mocks the DeleteFromLog method.
func (m *MockHistoryRepository) DeleteFromLog(command string) error {
	m.DeletedCommands = append(m.DeletedCommands, command)
	if m.DeleteFromLogFunc != nil {
		return m.DeleteFromLogFunc(command)
	}
	return nil
}

// GetSourceIdentifier mocks the GetSourceIdentifier method.
func (m *MockHistoryRepository) GetSourceIdentifier() string {
	if m.GetSourceIdentifierFunc != nil {
		return m.GetSourceIdentifierFunc()
	}
	return ""
}

// NewMockHistoryRepository returns a mock that serves the given log and favorites.
func NewMockHistoryRepository(log, favorites []string) *MockHistoryRepository {
	return &MockHistoryRepository{
		LoadLogFunc:       func() ([]string, error) { return append([]string(nil), log...), nil },
		LoadFavoritesFunc: func() ([]string, error) { return append([]string(nil), favorites...), nil },
	}
}

var _ ports.HistoryRepository = (*MockHistoryRepository)(nil)
