package testutil

import "github.com/AntonioJCosta/histpick/internal/core/ports"

// MockHistoryFileFinder is a mock implementation of ports.HistoryFileFinder.
type MockHistoryFileFinder struct {
	FindFunc func() (string, error)

	// Calls counts Find invocations.
	Calls int
}

// Find mocks the Find method. Without FindFunc it reports that nothing was found.
func (m *MockHistoryFileFinder) Find() (string, error) {
	m.Calls++
	if m.FindFunc != nil {
		return m.FindFunc()
	}
	return "", ErrNotConfigured
}

var _ ports.HistoryFileFinder = (*MockHistoryFileFinder)(nil)
