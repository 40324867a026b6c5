package history

import "github.com/AntonioJCosta/histpick/internal/core/ports"

// DefaultCandidates are the history files tried after $HISTFILE, in order.
var DefaultCandidates = []string{"~/.zsh_history", "~/.bash_history"}

// DefaultHistoryFileFinder finds the history file of the user's shell.
type DefaultHistoryFileFinder struct {
	Candidates []string
}

// Find implements the ports.HistoryFileFinder interface.
func (d *DefaultHistoryFileFinder) Find() (string, error) {
	return findUserHistoryFile(d.Candidates)
}

// NewDefaultHistoryFileFinder creates a finder over DefaultCandidates.
func NewDefaultHistoryFileFinder() ports.HistoryFileFinder {
	return &DefaultHistoryFileFinder{Candidates: DefaultCandidates}
}
