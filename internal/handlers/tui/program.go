package tui

import (
	"fmt"
	"io"

	"github.com/AntonioJCosta/histpick/internal/core/services/session"
	tea "github.com/charmbracelet/bubbletea"
)

// Run shows the picker on the alternate screen until the user selects or
// cancels. The screen is drawn on output and keys are read from the
// controlling terminal, so stdout stays free for the picked command.
func Run(model Model, output io.Writer) (session.Result, error) {
	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithOutput(output),
		tea.WithInputTTY(),
	)
	final, err := p.Run()
	if err != nil {
		return session.Result{}, fmt.Errorf("picker failed: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return session.Result{}, fmt.Errorf("picker returned unexpected model %T", final)
	}
	return m.Result(), nil
}
