package ports

import "github.com/AntonioJCosta/histpick/internal/core/domain/history"

// HistoryStore is the in-memory view of the history used by a picker session.
type HistoryStore interface {
	// Get returns the command list for a view. Callers must not modify it.
	Get(view history.View) []string

	// DeleteAllOccurrences removes cmd from the log and from the favorites.
	DeleteAllOccurrences(cmd string) error

	// ToggleFavorite flips favorites membership of cmd and reports whether
	// cmd is a favorite afterwards.
	ToggleFavorite(cmd string) (bool, error)

	IsFavorite(cmd string) bool
}
