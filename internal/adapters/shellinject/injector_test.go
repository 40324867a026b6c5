package shellinject

import (
	"bytes"
	"errors"
	"testing"

	"github.com/AntonioJCosta/histpick/internal/core/domain/settings"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	pushed  []string
	copied  []string
	pushErr error
	copyErr error
	stdout  bytes.Buffer
	notices bytes.Buffer
}

func newTestInjector(t *testing.T, mode string, rec *recorder) *Injector {
	t.Helper()
	injector, err := NewInjector(mode, &rec.stdout, &rec.notices, zerolog.Nop())
	require.NoError(t, err)
	i := injector.(*Injector)
	i.pushInput = func(text string) error {
		if rec.pushErr != nil {
			return rec.pushErr
		}
		rec.pushed = append(rec.pushed, text)
		return nil
	}
	i.copyToClipboard = func(text string) error {
		if rec.copyErr != nil {
			return rec.copyErr
		}
		rec.copied = append(rec.copied, text)
		return nil
	}
	return i
}

func TestNewInjectorRejectsUnknownMode(t *testing.T) {
	_, err := NewInjector("carrier-pigeon", &bytes.Buffer{}, &bytes.Buffer{}, zerolog.Nop())
	assert.ErrorContains(t, err, "unknown injection mode")
}

func TestInjectTerminal(t *testing.T) {
	rec := &recorder{}
	i := newTestInjector(t, settings.InjectTIOCSTI, rec)

	require.NoError(t, i.Inject("git status", true))
	require.NoError(t, i.Inject("make", false))

	assert.Equal(t, []string{"git status\n", "make"}, rec.pushed)
	assert.Empty(t, rec.stdout.String())
}

func TestInjectTerminalFailureIsReturned(t *testing.T) {
	rec := &recorder{pushErr: ErrUnsupported}
	i := newTestInjector(t, settings.InjectTIOCSTI, rec)

	err := i.Inject("ls", true)

	assert.ErrorIs(t, err, ErrUnsupported)
	assert.Empty(t, rec.copied)
}

func TestInjectClipboard(t *testing.T) {
	rec := &recorder{}
	i := newTestInjector(t, settings.InjectClipboard, rec)

	require.NoError(t, i.Inject("ls -la", true))

	assert.Equal(t, []string{"ls -la"}, rec.copied)
	assert.Empty(t, rec.pushed)
	assert.Empty(t, rec.notices.String())
}

func TestInjectStdout(t *testing.T) {
	rec := &recorder{}
	i := newTestInjector(t, settings.InjectStdout, rec)

	require.NoError(t, i.Inject("echo hi", false))

	assert.Equal(t, "echo hi\n", rec.stdout.String())
}

func TestInjectAutoFallsBack(t *testing.T) {
	t.Run("terminal first", func(t *testing.T) {
		rec := &recorder{}
		require.NoError(t, newTestInjector(t, settings.InjectAuto, rec).Inject("ls", true))
		assert.Equal(t, []string{"ls\n"}, rec.pushed)
		assert.Empty(t, rec.copied)
		assert.Empty(t, rec.notices.String())
	})

	t.Run("clipboard when terminal is unsupported", func(t *testing.T) {
		rec := &recorder{pushErr: ErrUnsupported}
		require.NoError(t, newTestInjector(t, settings.InjectAuto, rec).Inject("ls", true))
		assert.Equal(t, []string{"ls"}, rec.copied)
		assert.Empty(t, rec.stdout.String())
		assert.Contains(t, rec.notices.String(), "copied to the clipboard")
	})

	t.Run("stdout when nothing else works", func(t *testing.T) {
		rec := &recorder{pushErr: ErrUnsupported, copyErr: errors.New("no xclip")}
		require.NoError(t, newTestInjector(t, settings.InjectAuto, rec).Inject("ls", true))
		assert.Equal(t, "ls\n", rec.stdout.String())
		assert.Contains(t, rec.notices.String(), "printing the command instead")
	})
}
