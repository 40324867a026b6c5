package terminal

import (
	"fmt"

	"github.com/AntonioJCosta/histpick/internal/core/ports"
	"golang.org/x/term"
)

// Sizes used when the file descriptor is not a terminal.
const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

/*
Geometry reports the size of the terminal histpick draws on. It is read once
from the file descriptor and then kept current by SetSize, which the TUI calls
on every resize message.
*/
type Geometry struct {
	fd     int
	width  int
	height int
}

// NewGeometry reads the current size of fd, falling back to 80x24.
func NewGeometry(fd int) *Geometry {
	g := &Geometry{fd: fd, width: DefaultWidth, height: DefaultHeight}
	_ = g.Refresh()
	return g
}

// Refresh re-reads the size from the terminal. On error the last known size is kept.
func (g *Geometry) Refresh() error {
	width, height, err := term.GetSize(g.fd)
	if err != nil {
		return fmt.Errorf("failed to read terminal size: %w", err)
	}
	g.SetSize(width, height)
	return nil
}

// SetSize records a size reported by the terminal. Non-positive values are ignored.
func (g *Geometry) SetSize(width, height int) {
	if width > 0 {
		g.width = width
	}
	if height > 0 {
		g.height = height
	}
}

// Height implements ports.Geometry.
func (g *Geometry) Height() int {
	return g.height
}

func (g *Geometry) Width() int {
	return g.width
}

var _ ports.Geometry = (*Geometry)(nil)
