/*
Package shellinject hands the picked command back to the shell that started
histpick: typed into the terminal input queue, copied to the clipboard or
printed on stdout for a shell widget to read.
*/
package shellinject

import (
	"errors"
	"fmt"
	"io"

	"github.com/AntonioJCosta/histpick/internal/core/domain/settings"
	"github.com/AntonioJCosta/histpick/internal/core/ports"
	"github.com/AntonioJCosta/histpick/internal/handlers/ui"
	"github.com/atotto/clipboard"
	"github.com/rs/zerolog"
)

// ErrUnsupported is returned when a mode cannot work on this system or terminal.
var ErrUnsupported = errors.New("injection mode not supported here")

const terminalDevice = "/dev/tty"

type Injector struct {
	mode    string
	stdout  io.Writer
	notices io.Writer // told when auto mode falls back
	logger  zerolog.Logger

	// replaced in tests
	pushInput       func(text string) error
	copyToClipboard func(text string) error
}

// NewInjector returns an injector for one of the settings.Inject* modes.
// Commands printed in stdout mode go to stdout; fallback notices go to notices.
func NewInjector(mode string, stdout, notices io.Writer, logger zerolog.Logger) (ports.CommandInjector, error) {
	switch mode {
	case settings.InjectAuto, settings.InjectTIOCSTI, settings.InjectClipboard, settings.InjectStdout:
	default:
		return nil, fmt.Errorf("unknown injection mode %q", mode)
	}
	if stdout == nil {
		panic("stdout cannot be nil")
	}
	if notices == nil {
		panic("notices cannot be nil")
	}
	return &Injector{
		mode:    mode,
		stdout:  stdout,
		notices: notices,
		logger:  logger,
		pushInput: func(text string) error {
			return pushToTerminal(terminalDevice, text)
		},
		copyToClipboard: writeClipboard,
	}, nil
}

// Inject implements ports.CommandInjector. Only the terminal mode can submit
// the command; the others hand it over for the user to run.
func (i *Injector) Inject(command string, run bool) error {
	switch i.mode {
	case settings.InjectTIOCSTI:
		return i.injectTerminal(command, run)
	case settings.InjectClipboard:
		return i.copyToClipboard(command)
	case settings.InjectStdout:
		return i.print(command)
	}

	err := i.injectTerminal(command, run)
	if err == nil {
		return nil
	}
	i.logger.Debug().Err(err).Msg("terminal injection failed, trying clipboard")
	if err := i.copyToClipboard(command); err != nil {
		i.logger.Debug().Err(err).Msg("clipboard unavailable, printing command")
		i.notify("Cannot type into the terminal or use the clipboard; printing the command instead.")
		return i.print(command)
	}
	i.notify("Cannot type into the terminal; command copied to the clipboard.")
	return nil
}

// notify tells the user where the command went. Failing to do so is not an
// injection error.
func (i *Injector) notify(message string) {
	if _, err := fmt.Fprintln(i.notices, ui.InfoColor(message)); err != nil {
		i.logger.Debug().Err(err).Msg("could not print fallback notice")
	}
}

func (i *Injector) injectTerminal(command string, run bool) error {
	text := command
	if run {
		text += "\n"
	}
	if err := i.pushInput(text); err != nil {
		return fmt.Errorf("failed to type command into %s: %w", terminalDevice, err)
	}
	return nil
}

func (i *Injector) print(command string) error {
	if _, err := fmt.Fprintln(i.stdout, command); err != nil {
		return fmt.Errorf("failed to print command: %w", err)
	}
	return nil
}

func writeClipboard(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("clipboard: %w", ErrUnsupported)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("failed to copy command to clipboard: %w", err)
	}
	return nil
}
