/*
Package tui is the interactive picker screen. It translates key presses into
session events and draws the controller's state; all decisions are made by
the session controller.
*/
package tui

import (
	"errors"
	"unicode"

	"github.com/AntonioJCosta/histpick/internal/core/domain/paging"
	"github.com/AntonioJCosta/histpick/internal/core/ports"
	"github.com/AntonioJCosta/histpick/internal/core/services/session"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// Screen is the terminal the picker draws on.
type Screen interface {
	ports.Geometry
	Width() int
	SetSize(width, height int)
}

// Model represents the picker state
type Model struct {
	controller *session.Controller
	screen     Screen
	keys       keyMap
	styles     styles
	logger     zerolog.Logger

	// pendingDelete is the command waiting for y/n; empty when not confirming.
	pendingDelete string
}

// NewModel creates a picker over controller drawing on screen.
// It panics if controller or screen is nil.
func NewModel(controller *session.Controller, screen Screen, theme Theme, logger zerolog.Logger) Model {
	if controller == nil {
		panic("controller cannot be nil")
	}
	if screen == nil {
		panic("screen cannot be nil")
	}
	return Model{
		controller: controller,
		screen:     screen,
		keys:       defaultKeyMap(),
		styles:     newStyles(theme),
		logger:     logger,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.screen.SetSize(msg.Width, msg.Height)
		m.send(session.Resize{})
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

// Result is the outcome of the session once the program has quit.
func (m Model) Result() session.Result {
	return m.controller.Result()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.pendingDelete != "" {
		if msg.Type == tea.KeyRunes && (string(msg.Runes) == "y" || string(msg.Runes) == "Y") {
			m.send(session.Delete{})
		}
		m.pendingDelete = ""
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.send(session.Cancel{})
		return m, tea.Quit
	case key.Matches(msg, m.keys.Run):
		m.send(session.Select{Run: true})
		return m, tea.Quit
	case key.Matches(msg, m.keys.Insert):
		m.send(session.Select{Run: false})
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		m.send(session.MoveSelection{Direction: paging.Previous})
	case key.Matches(msg, m.keys.Down):
		m.send(session.MoveSelection{Direction: paging.Next})
	case key.Matches(msg, m.keys.PageUp):
		m.send(session.TurnPage{Direction: paging.Previous})
	case key.Matches(msg, m.keys.PageDown):
		m.send(session.TurnPage{Direction: paging.Next})
	case key.Matches(msg, m.keys.Backspace):
		m.send(session.Backspace{})
	case key.Matches(msg, m.keys.ToggleRegex):
		m.send(session.ToggleRegex{})
	case key.Matches(msg, m.keys.ToggleView):
		m.send(session.ToggleView{})
	case key.Matches(msg, m.keys.ToggleCase):
		m.send(session.ToggleCase{})
	case key.Matches(msg, m.keys.Favorite):
		m.send(session.ToggleFavorite{})
	case key.Matches(msg, m.keys.Delete):
		if cmd, ok := m.controller.Selected(); ok {
			m.pendingDelete = cmd
		}
	case msg.Type == tea.KeySpace:
		m.send(session.TypeChar{Char: ' '})
	case msg.Type == tea.KeyRunes && !msg.Alt:
		// A paste arrives as one message with many runes.
		for _, r := range msg.Runes {
			if !unicode.IsControl(r) {
				m.send(session.TypeChar{Char: r})
			}
		}
	}
	return m, nil
}

// send delivers ev to the controller. Rejected queries and failed writes are
// kept by the controller as its notice, so only misuse is logged here.
func (m Model) send(ev session.Event) {
	if err := m.controller.Handle(ev); errors.Is(err, session.ErrSessionEnded) {
		m.logger.Warn().Err(err).Msgf("%T after the session ended", ev)
	}
}
