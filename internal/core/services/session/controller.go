/*
Package session implements the interactive picker state machine: it owns the
view, query and match mode, and keeps the filtered list and the pager
consistent across every event.
*/
package session

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/AntonioJCosta/histpick/internal/core/domain/history"
	"github.com/AntonioJCosta/histpick/internal/core/domain/paging"
	"github.com/AntonioJCosta/histpick/internal/core/domain/search"
	"github.com/AntonioJCosta/histpick/internal/core/ports"
	"github.com/AntonioJCosta/histpick/internal/core/services/pager"
	"github.com/rs/zerolog"
)

// ErrSessionEnded is returned for events delivered after Select or Cancel.
var ErrSessionEnded = errors.New("session has ended")

// Status is the lifecycle state of a session.
type Status int

const (
	StatusActive Status = iota
	StatusSelected
	StatusCancelled
)

// State is the user-controlled part of a session.
type State struct {
	View          history.View
	Query         string
	RegexMode     bool
	CaseSensitive bool
}

// Result is what a finished session hands to the shell. Chosen is false when
// the session was cancelled or the list was empty at selection time.
type Result struct {
	Command string
	Run     bool
	Chosen  bool
}

/*
Controller owns one picker session. It receives every Event, asks the history
store for the active view, filters it with the current query and pages the
result. It never draws anything; the caller renders from its accessors.
*/
type Controller struct {
	store    ports.HistoryStore
	pager    *pager.Pager
	state    State
	filtered []search.Match
	notice   error
	status   Status
	result   Result
	logger   zerolog.Logger
}

// NewController starts an active session showing initial.View filtered by
// initial.Query. An invalid initial query yields an empty list and a notice.
// It panics if store or geometry is nil.
func NewController(store ports.HistoryStore, geometry ports.Geometry, initial State, logger zerolog.Logger) *Controller {
	if store == nil {
		panic("historyStore cannot be nil")
	}
	c := &Controller{
		store:    store,
		pager:    pager.New(geometry),
		state:    initial,
		filtered: []search.Match{},
		logger:   logger,
	}
	_ = c.refilter()
	return c
}

// Handle applies one event. Errors are also kept as the inline notice, except
// ErrSessionEnded which means the caller kept sending events after the end.
func (c *Controller) Handle(ev Event) error {
	if c.status != StatusActive {
		return ErrSessionEnded
	}
	c.logger.Debug().Str("event", fmt.Sprintf("%T", ev)).Msg("handling event")

	switch ev := ev.(type) {
	case TypeChar:
		c.state.Query += string(ev.Char)
		return c.refilterFromStart()
	case Backspace:
		if _, size := utf8.DecodeLastRuneInString(c.state.Query); size > 0 {
			c.state.Query = c.state.Query[:len(c.state.Query)-size]
		}
		return c.refilterFromStart()
	case ToggleView:
		return c.toggleView()
	case ToggleRegex:
		c.state.RegexMode = !c.state.RegexMode
		return c.refilterKeepingPage()
	case ToggleCase:
		c.state.CaseSensitive = !c.state.CaseSensitive
		return c.refilterKeepingPage()
	case MoveSelection:
		c.pager.MoveSelection(len(c.filtered), ev.Direction)
	case TurnPage:
		c.pager.Turn(len(c.filtered), ev.Direction)
	case ToggleFavorite:
		return c.toggleFavorite()
	case Delete:
		return c.delete()
	case Select:
		cmd, ok := c.Selected()
		c.result = Result{Command: cmd, Run: ev.Run, Chosen: ok}
		c.status = StatusSelected
		c.logger.Debug().Bool("chosen", ok).Bool("run", ev.Run).Msg("session selected")
	case Cancel:
		c.status = StatusCancelled
		c.logger.Debug().Msg("session cancelled")
	case Resize:
		c.pager.Clamp(len(c.filtered))
	default:
		return fmt.Errorf("unhandled event %T", ev)
	}
	return nil
}

// State returns the current view, query and match mode.
func (c *Controller) State() State {
	return c.state
}

func (c *Controller) Page() paging.Page {
	return c.pager.Page()
}

func (c *Controller) TotalPages() int {
	return c.pager.TotalPages(len(c.filtered))
}

// Filtered returns the whole filtered list. Callers must not modify it.
func (c *Controller) Filtered() []search.Match {
	return c.filtered
}

// CurrentPage returns the slice of the filtered list that is on screen.
func (c *Controller) CurrentPage() []search.Match {
	start, end := c.pager.Bounds(len(c.filtered))
	return c.filtered[start:end]
}

// Selected returns the command under the cursor; ok is false on an empty list.
func (c *Controller) Selected() (string, bool) {
	page := c.CurrentPage()
	selected := c.pager.Page().Selected
	if selected < 0 || selected >= len(page) {
		return "", false
	}
	return page[selected].Command, true
}

func (c *Controller) IsFavorite(cmd string) bool {
	return c.store.IsFavorite(cmd)
}

// Notice is the error to show inline, or nil.
func (c *Controller) Notice() error {
	return c.notice
}

func (c *Controller) Status() Status {
	return c.status
}

// Result is only meaningful once Status is no longer StatusActive.
func (c *Controller) Result() Result {
	return c.result
}
