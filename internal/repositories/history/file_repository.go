package history

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AntonioJCosta/histpick/internal/core/domain/settings"
	"github.com/AntonioJCosta/histpick/internal/core/ports"
	"github.com/rs/zerolog"
)

const favoritesFilename = "favorites"

/*
FileRepository keeps the command log in the shell's own history file and the
favorites in a plain file under $HOME/.histpick/, one command per line.
It implements the ports.HistoryRepository interface.
*/
type FileRepository struct {
	Shell            string
	HistoryFile      string // absolute path
	FavoritesFile    string // absolute path
	metafied         bool   // zsh encoding of non-ASCII bytes
	sourceIdentifier string
	logger           zerolog.Logger
}

// NewFileRepository resolves the history and favorites files and makes sure
// both exist. An empty historyFile is discovered with fileFinder; when nothing
// is found the default file for $SHELL is created. An empty favoritesFile
// means $HOME/.histpick/favorites.
func NewFileRepository(historyFile, favoritesFile string, fileFinder ports.HistoryFileFinder, logger zerolog.Logger) (ports.HistoryRepository, error) {
	if fileFinder == nil {
		panic("fileFinder cannot be nil")
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting home directory: %w", err)
	}
	shellName := strings.ToLower(filepath.Base(os.Getenv("SHELL")))

	if historyFile == "" {
		historyFile, err = fileFinder.Find()
		if err != nil {
			historyFile = defaultHistoryFileForShell(shellName, homeDir)
			logger.Warn().Err(err).Str("path", historyFile).Msg("no history file found, using shell default")
		}
	}
	historyFile = expandHome(historyFile, homeDir)
	if favoritesFile == "" {
		favoritesFile = filepath.Join(homeDir, settings.DataDirName, favoritesFilename)
	}
	favoritesFile = expandHome(favoritesFile, homeDir)

	for _, path := range []string{historyFile, favoritesFile} {
		if err := ensureFile(path); err != nil {
			return nil, err
		}
	}

	return &FileRepository{
		Shell:            shellName,
		HistoryFile:      historyFile,
		FavoritesFile:    favoritesFile,
		metafied:         isZshHistory(historyFile, shellName),
		sourceIdentifier: fmt.Sprintf("File: %s", toUserFriendlyPath(historyFile)),
		logger:           logger,
	}, nil
}

// LoadLog implements the ports.HistoryRepository interface.
func (r *FileRepository) LoadLog() ([]string, error) {
	lines, err := readLines(r.HistoryFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read history file %s: %w", toUserFriendlyPath(r.HistoryFile), err)
	}
	log := make([]string, 0, len(lines))
	for _, line := range lines {
		if cmd, ok := parseHistoryLine(line, r.metafied); ok {
			log = append(log, cmd)
		}
	}
	r.logger.Debug().Str("path", r.HistoryFile).Int("commands", len(log)).Msg("history loaded")
	return log, nil
}

// LoadFavorites implements the ports.HistoryRepository interface.
func (r *FileRepository) LoadFavorites() ([]string, error) {
	lines, err := readLines(r.FavoritesFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read favorites file %s: %w", toUserFriendlyPath(r.FavoritesFile), err)
	}
	favorites := make([]string, 0, len(lines))
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			favorites = append(favorites, line)
		}
	}
	return favorites, nil
}

// SaveFavorites implements the ports.HistoryRepository interface.
func (r *FileRepository) SaveFavorites(favorites []string) error {
	var b strings.Builder
	for _, cmd := range favorites {
		b.WriteString(cmd)
		b.WriteByte('\n')
	}
	if err := replaceFile(r.FavoritesFile, b.String()); err != nil {
		return fmt.Errorf("failed to write favorites file %s: %w", toUserFriendlyPath(r.FavoritesFile), err)
	}
	r.logger.Debug().Int("favorites", len(favorites)).Msg("favorites saved")
	return nil
}

// DeleteFromLog implements the ports.HistoryRepository interface.
// Every other line, timestamps included, is written back unchanged.
func (r *FileRepository) DeleteFromLog(command string) error {
	content, err := os.ReadFile(r.HistoryFile)
	if err != nil {
		return fmt.Errorf("failed to read history file %s: %w", toUserFriendlyPath(r.HistoryFile), err)
	}
	kept, removed := dropCommand(string(content), command, r.metafied)
	if removed == 0 {
		return nil
	}
	if err := replaceFile(r.HistoryFile, kept); err != nil {
		return fmt.Errorf("failed to rewrite history file %s: %w", toUserFriendlyPath(r.HistoryFile), err)
	}
	r.logger.Debug().Str("command", command).Int("lines", removed).Msg("removed from history file")
	return nil
}

func (r *FileRepository) GetSourceIdentifier() string {
	if r.sourceIdentifier != "" {
		return r.sourceIdentifier
	}
	return fmt.Sprintf("File: %s", toUserFriendlyPath(r.HistoryFile))
}
