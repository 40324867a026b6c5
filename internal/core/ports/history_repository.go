package ports

/*
HistoryRepository defines the persistence contract for the command log and the
favorites list. This is a driven port, implemented by a repository adapter
that owns the newline-delimited files on disk.
*/
type HistoryRepository interface {
	// LoadLog returns the chronological command log, oldest first.
	LoadLog() ([]string, error)

	// LoadFavorites returns the persisted favorites in their stored order.
	LoadFavorites() ([]string, error)

	// SaveFavorites replaces the persisted favorites with the given sequence.
	SaveFavorites(favorites []string) error

	// DeleteFromLog removes every occurrence of command from the log file.
	DeleteFromLog(command string) error

	// GetSourceIdentifier describes where the log was read from, for display.
	GetSourceIdentifier() string
}
