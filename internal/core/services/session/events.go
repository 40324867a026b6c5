package session

import "github.com/AntonioJCosta/histpick/internal/core/domain/paging"

/*
Event is one user action delivered to the Controller. The set of events is
closed: only the types in this file implement it.
*/
type Event interface {
	isEvent()
}

// TypeChar appends a character to the query.
type TypeChar struct{ Char rune }

// Backspace removes the last character of the query.
type Backspace struct{}

// ToggleView cycles Ranked, Favorites, Raw.
type ToggleView struct{}

type ToggleRegex struct{}

type ToggleCase struct{}

// MoveSelection moves the cursor one entry, crossing page boundaries.
type MoveSelection struct{ Direction paging.Direction }

// TurnPage moves one whole page.
type TurnPage struct{ Direction paging.Direction }

// ToggleFavorite adds or removes the selected command from the favorites.
type ToggleFavorite struct{}

// Delete removes every occurrence of the selected command. The user has
// already confirmed it.
type Delete struct{}

// Select ends the session with the selected command. Run asks the shell to
// execute it rather than just insert it.
type Select struct{ Run bool }

// Cancel ends the session without a command.
type Cancel struct{}

// Resize tells the controller the terminal geometry changed.
type Resize struct{}

func (TypeChar) isEvent()       {}
func (Backspace) isEvent()      {}
func (ToggleView) isEvent()     {}
func (ToggleRegex) isEvent()    {}
func (ToggleCase) isEvent()     {}
func (MoveSelection) isEvent()  {}
func (TurnPage) isEvent()       {}
func (ToggleFavorite) isEvent() {}
func (Delete) isEvent()         {}
func (Select) isEvent()         {}
func (Cancel) isEvent()         {}
func (Resize) isEvent()         {}
