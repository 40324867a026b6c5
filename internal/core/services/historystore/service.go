package historystore

import (
	"errors"
	"fmt"
	"slices"

	"github.com/AntonioJCosta/histpick/internal/core/domain/history"
	"github.com/AntonioJCosta/histpick/internal/core/ports"
	"github.com/AntonioJCosta/histpick/internal/core/services/ranking"
)

// ErrNotFound is returned when a command to delete is in neither the log nor the favorites.
var ErrNotFound = errors.New("command not found in history")

type service struct {
	repo      ports.HistoryRepository
	log       []string
	favorites []string
	ranked    []string // cached Rank(log); nil when stale
}

// NewService loads the log and favorites from the repository and returns an
// in-memory history store backed by it.
// It panics if the repository is nil.
func NewService(repo ports.HistoryRepository) (ports.HistoryStore, error) {
	if repo == nil {
		panic("historyRepository cannot be nil")
	}
	log, err := repo.LoadLog()
	if err != nil {
		return nil, fmt.Errorf("failed to load history log: %w", err)
	}
	favorites, err := repo.LoadFavorites()
	if err != nil {
		return nil, fmt.Errorf("failed to load favorites: %w", err)
	}
	return &service{
		repo:      repo,
		log:       log,
		favorites: removeDuplicates(favorites),
	}, nil
}

// Get implements ports.HistoryStore. Raw is the log as recorded, repeats included.
func (s *service) Get(view history.View) []string {
	switch view {
	case history.ViewRanked:
		if s.ranked == nil {
			s.ranked = ranking.Rank(s.log)
		}
		return s.ranked
	case history.ViewFavorites:
		return s.favorites
	case history.ViewRaw:
		return s.log
	default:
		return nil
	}
}

// DeleteAllOccurrences implements ports.HistoryStore.
// Both files are written before memory is touched. The favorites file goes
// first so it can be restored if the log rewrite fails.
func (s *service) DeleteAllOccurrences(cmd string) error {
	inLog := slices.Contains(s.log, cmd)
	inFavorites := slices.Contains(s.favorites, cmd)
	if !inLog && !inFavorites {
		return fmt.Errorf("delete %q: %w", cmd, ErrNotFound)
	}

	favorites := s.favorites
	if inFavorites {
		favorites = without(s.favorites, cmd)
		if err := s.repo.SaveFavorites(favorites); err != nil {
			return fmt.Errorf("failed to save favorites: %w", err)
		}
	}
	if inLog {
		if err := s.repo.DeleteFromLog(cmd); err != nil {
			err = fmt.Errorf("failed to delete %q from history file: %w", cmd, err)
			if inFavorites {
				if restoreErr := s.repo.SaveFavorites(s.favorites); restoreErr != nil {
					return errors.Join(err, fmt.Errorf("failed to restore favorites: %w", restoreErr))
				}
			}
			return err
		}
		s.log = without(s.log, cmd)
		s.ranked = nil
	}
	s.favorites = favorites
	return nil
}

// ToggleFavorite implements ports.HistoryStore.
func (s *service) ToggleFavorite(cmd string) (bool, error) {
	var favorites []string
	nowFavorite := !slices.Contains(s.favorites, cmd)
	if nowFavorite {
		favorites = append(slices.Clone(s.favorites), cmd)
	} else {
		favorites = without(s.favorites, cmd)
	}

	if err := s.repo.SaveFavorites(favorites); err != nil {
		return !nowFavorite, fmt.Errorf("failed to save favorites: %w", err)
	}
	s.favorites = favorites
	return nowFavorite, nil
}

// IsFavorite implements ports.HistoryStore.
func (s *service) IsFavorite(cmd string) bool {
	return slices.Contains(s.favorites, cmd)
}
