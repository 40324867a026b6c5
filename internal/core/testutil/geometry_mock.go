package testutil

import "github.com/AntonioJCosta/histpick/internal/core/ports"

// MockGeometry is a terminal whose height tests can change between calls.
type MockGeometry struct {
	Rows int
}

// Height implements ports.Geometry.
func (m *MockGeometry) Height() int {
	return m.Rows
}

var _ ports.Geometry = (*MockGeometry)(nil)
