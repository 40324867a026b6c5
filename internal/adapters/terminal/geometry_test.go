package terminal

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGeometryFallsBackWhenNotATerminal(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "not-a-tty"))
	require.NoError(t, err)
	defer f.Close()

	g := NewGeometry(int(f.Fd()))

	assert.Equal(t, DefaultHeight, g.Height())
	assert.Equal(t, DefaultWidth, g.Width())
	assert.Error(t, g.Refresh())
	assert.Equal(t, DefaultHeight, g.Height(), "a failed refresh keeps the last size")
}

func TestSetSize(t *testing.T) {
	g := &Geometry{fd: -1, width: DefaultWidth, height: DefaultHeight}

	g.SetSize(120, 40)
	assert.Equal(t, 40, g.Height())
	assert.Equal(t, 120, g.Width())

	g.SetSize(0, -3)
	assert.Equal(t, 40, g.Height())
	assert.Equal(t, 120, g.Width())
}
