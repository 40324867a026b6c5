package session

import (
	"errors"
	"testing"

	"github.com/AntonioJCosta/histpick/internal/core/domain/history"
	"github.com/AntonioJCosta/histpick/internal/core/domain/paging"
	"github.com/AntonioJCosta/histpick/internal/core/domain/search"
	"github.com/AntonioJCosta/histpick/internal/core/services/filtering"
	"github.com/AntonioJCosta/histpick/internal/core/services/historystore"
	"github.com/AntonioJCosta/histpick/internal/core/services/pager"
	"github.com/AntonioJCosta/histpick/internal/core/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ranks to [ls, make, git push, git status].
var sampleLog = []string{"ls", "git status", "ls", "make", "git push", "ls", "make"}

// newController returns a controller whose pages hold three entries.
func newController(t *testing.T, log, favorites []string, initial State) (*Controller, *testutil.MockHistoryRepository, *testutil.MockGeometry) {
	t.Helper()
	repo := testutil.NewMockHistoryRepository(log, favorites)
	store, err := historystore.NewService(repo)
	require.NoError(t, err)
	geometry := &testutil.MockGeometry{Rows: 3 + pager.ReservedRows}
	return NewController(store, geometry, initial, zerolog.Nop()), repo, geometry
}

func commandsOf(matches []search.Match) []string {
	out := make([]string, 0, len(matches))
	for _, m := range matches {
		out = append(out, m.Command)
	}
	return out
}

func typeQuery(t *testing.T, c *Controller, query string) {
	t.Helper()
	for _, r := range query {
		require.NoError(t, c.Handle(TypeChar{Char: r}))
	}
}

func selected(t *testing.T, c *Controller) string {
	t.Helper()
	cmd, ok := c.Selected()
	require.True(t, ok, "expected a selection")
	return cmd
}

func TestNewControllerShowsRankedHistory(t *testing.T) {
	c, _, _ := newController(t, sampleLog, nil, State{})

	assert.Equal(t, []string{"ls", "make", "git push", "git status"}, commandsOf(c.Filtered()))
	assert.Equal(t, []string{"ls", "make", "git push"}, commandsOf(c.CurrentPage()))
	assert.Equal(t, paging.First, c.Page())
	assert.Equal(t, 2, c.TotalPages())
	assert.Equal(t, StatusActive, c.Status())
	assert.NoError(t, c.Notice())
	assert.Equal(t, "ls", selected(t, c))
}

func TestNewControllerWithInvalidInitialQuery(t *testing.T) {
	c, _, _ := newController(t, sampleLog, nil, State{Query: "(", RegexMode: true})

	assert.Empty(t, c.Filtered())
	assert.ErrorIs(t, c.Notice(), filtering.ErrInvalidPattern)
	_, ok := c.Selected()
	assert.False(t, ok)
}

func TestNewControllerPanicsOnNilStore(t *testing.T) {
	assert.PanicsWithValue(t, "historyStore cannot be nil", func() {
		NewController(nil, &testutil.MockGeometry{Rows: 10}, State{}, zerolog.Nop())
	})
}

func TestTypingFiltersAndResetsPage(t *testing.T) {
	c, _, _ := newController(t, sampleLog, nil, State{})
	require.NoError(t, c.Handle(TurnPage{Direction: paging.Next}))
	require.Equal(t, 2, c.Page().Number)

	typeQuery(t, c, "git")

	assert.Equal(t, "git", c.State().Query)
	assert.Equal(t, []string{"git push", "git status"}, commandsOf(c.Filtered()))
	assert.Equal(t, paging.First, c.Page())
}

func TestBackspaceReadmitsEntries(t *testing.T) {
	c, _, _ := newController(t, sampleLog, nil, State{})
	typeQuery(t, c, "gix")
	require.Empty(t, c.Filtered())

	require.NoError(t, c.Handle(Backspace{}))

	assert.Equal(t, "gi", c.State().Query)
	assert.Equal(t, []string{"git push", "git status"}, commandsOf(c.Filtered()))
}

func TestBackspaceRemovesWholeRune(t *testing.T) {
	c, _, _ := newController(t, []string{"echo é"}, nil, State{})
	typeQuery(t, c, "é")

	require.NoError(t, c.Handle(Backspace{}))
	assert.Equal(t, "", c.State().Query)

	require.NoError(t, c.Handle(Backspace{}), "backspace on an empty query is a no-op")
	assert.Equal(t, []string{"echo é"}, commandsOf(c.Filtered()))
}

func TestInvalidRegexKeepsPreviousList(t *testing.T) {
	c, _, _ := newController(t, sampleLog, nil, State{RegexMode: true})
	typeQuery(t, c, "g")
	require.NoError(t, c.Handle(MoveSelection{Direction: paging.Next}))
	before := commandsOf(c.Filtered())

	err := c.Handle(TypeChar{Char: '('})

	assert.ErrorIs(t, err, filtering.ErrInvalidPattern)
	assert.ErrorIs(t, c.Notice(), filtering.ErrInvalidPattern)
	assert.Equal(t, "g(", c.State().Query)
	assert.Equal(t, before, commandsOf(c.Filtered()))
	assert.Equal(t, paging.Page{Number: 1, Selected: 1}, c.Page())

	require.NoError(t, c.Handle(Backspace{}))
	assert.NoError(t, c.Notice(), "a successful search clears the notice")
	assert.Equal(t, before, commandsOf(c.Filtered()))
	assert.Equal(t, paging.First, c.Page())
}

func TestToggleRegex(t *testing.T) {
	t.Run("keeps page and resets selection", func(t *testing.T) {
		c, _, _ := newController(t, sampleLog, nil, State{})
		require.NoError(t, c.Handle(TurnPage{Direction: paging.Next}))

		require.NoError(t, c.Handle(ToggleRegex{}))

		assert.True(t, c.State().RegexMode)
		assert.Equal(t, paging.Page{Number: 2, Selected: 0}, c.Page())
	})

	t.Run("flag flips even when the query does not compile", func(t *testing.T) {
		c, _, _ := newController(t, []string{"echo (x)", "ls"}, nil, State{})
		typeQuery(t, c, "(")
		require.Equal(t, []string{"echo (x)"}, commandsOf(c.Filtered()))

		err := c.Handle(ToggleRegex{})

		assert.ErrorIs(t, err, filtering.ErrInvalidPattern)
		assert.True(t, c.State().RegexMode)
		assert.Equal(t, []string{"echo (x)"}, commandsOf(c.Filtered()))

		require.NoError(t, c.Handle(ToggleRegex{}))
		assert.False(t, c.State().RegexMode)
		assert.NoError(t, c.Notice())
	})
}

func TestToggleCase(t *testing.T) {
	c, _, _ := newController(t, []string{"Make", "make"}, nil, State{})
	typeQuery(t, c, "make")
	require.ElementsMatch(t, []string{"Make", "make"}, commandsOf(c.Filtered()))

	require.NoError(t, c.Handle(ToggleCase{}))

	assert.True(t, c.State().CaseSensitive)
	assert.Equal(t, []string{"make"}, commandsOf(c.Filtered()))
}

func TestToggleViewCycles(t *testing.T) {
	c, _, _ := newController(t, sampleLog, []string{"make"}, State{})
	require.NoError(t, c.Handle(MoveSelection{Direction: paging.Next}))

	require.NoError(t, c.Handle(ToggleView{}))
	assert.Equal(t, history.ViewFavorites, c.State().View)
	assert.Equal(t, []string{"make"}, commandsOf(c.Filtered()))
	assert.Equal(t, paging.First, c.Page())

	require.NoError(t, c.Handle(ToggleView{}))
	assert.Equal(t, history.ViewRaw, c.State().View)
	assert.Equal(t, sampleLog, commandsOf(c.Filtered()))

	require.NoError(t, c.Handle(ToggleView{}))
	assert.Equal(t, history.ViewRanked, c.State().View)
}

func TestToggleViewWithInvalidQueryShowsNothing(t *testing.T) {
	c, _, _ := newController(t, sampleLog, []string{"make"}, State{RegexMode: true})
	typeQuery(t, c, "m")
	require.Error(t, c.Handle(TypeChar{Char: '['}))
	require.NotEmpty(t, c.Filtered())

	err := c.Handle(ToggleView{})

	assert.ErrorIs(t, err, filtering.ErrInvalidPattern)
	assert.Equal(t, history.ViewFavorites, c.State().View)
	assert.Empty(t, c.Filtered())
}

func TestMoveSelectionAndTurnPage(t *testing.T) {
	c, _, _ := newController(t, sampleLog, nil, State{})

	for i := 0; i < 3; i++ {
		require.NoError(t, c.Handle(MoveSelection{Direction: paging.Next}))
	}
	assert.Equal(t, paging.Page{Number: 2, Selected: 0}, c.Page())
	assert.Equal(t, "git status", selected(t, c))

	require.NoError(t, c.Handle(MoveSelection{Direction: paging.Previous}))
	assert.Equal(t, "git push", selected(t, c))

	require.NoError(t, c.Handle(TurnPage{Direction: paging.Next}))
	assert.Equal(t, paging.Page{Number: 2, Selected: 0}, c.Page())

	require.NoError(t, c.Handle(TurnPage{Direction: paging.Next}))
	assert.Equal(t, 1, c.Page().Number, "turning past the last page wraps around")
}

func TestDeleteRemovesEveryOccurrence(t *testing.T) {
	c, repo, _ := newController(t, sampleLog, []string{"git push"}, State{})
	require.NoError(t, c.Handle(MoveSelection{Direction: paging.Next}))
	require.NoError(t, c.Handle(MoveSelection{Direction: paging.Next}))
	require.Equal(t, "git push", selected(t, c))

	require.NoError(t, c.Handle(Delete{}))

	assert.Equal(t, []string{"git push"}, repo.DeletedCommands)
	assert.Equal(t, []string{"ls", "make", "git status"}, commandsOf(c.Filtered()))
	assert.Equal(t, "make", selected(t, c), "removing the last entry of a page steps back")
	assert.False(t, c.IsFavorite("git push"))

	require.NoError(t, c.Handle(ToggleView{}))
	assert.Empty(t, c.Filtered())
	require.NoError(t, c.Handle(ToggleView{}))
	assert.NotContains(t, commandsOf(c.Filtered()), "git push")
}

func TestDeleteKeepsSelectionIndexInsidePage(t *testing.T) {
	c, _, _ := newController(t, sampleLog, nil, State{})

	require.NoError(t, c.Handle(Delete{}))

	assert.Equal(t, []string{"make", "git push", "git status"}, commandsOf(c.Filtered()))
	assert.Equal(t, paging.First, c.Page())
	assert.Equal(t, "make", selected(t, c))
}

func TestDeleteFailureSetsNotice(t *testing.T) {
	c, repo, _ := newController(t, sampleLog, nil, State{})
	diskFull := errors.New("disk full")
	repo.DeleteFromLogFunc = func(string) error { return diskFull }

	err := c.Handle(Delete{})

	assert.ErrorIs(t, err, diskFull)
	assert.ErrorIs(t, c.Notice(), diskFull)
	assert.Equal(t, []string{"ls", "make", "git push", "git status"}, commandsOf(c.Filtered()))
}

func TestDeleteFavoriteFailureKeepsListInStep(t *testing.T) {
	c, repo, _ := newController(t, []string{"ls", "cd", "ls"}, []string{"ls"}, State{})
	readOnly := errors.New("read-only")
	repo.SaveFavoritesFunc = func([]string) error { return readOnly }

	err := c.Handle(Delete{})

	assert.ErrorIs(t, err, readOnly)
	assert.ErrorIs(t, c.Notice(), readOnly)
	assert.Empty(t, repo.DeletedCommands)
	assert.Equal(t, []string{"ls", "cd"}, commandsOf(c.Filtered()))
	assert.True(t, c.IsFavorite("ls"))
	assert.Equal(t, "ls", selected(t, c))
}

func TestDeleteUnderRejectedQueryDropsEntry(t *testing.T) {
	c, repo, _ := newController(t, []string{"echo (x)", "ls"}, nil, State{})
	typeQuery(t, c, "(")
	require.Error(t, c.Handle(ToggleRegex{}))

	require.NoError(t, c.Handle(Delete{}))

	assert.Equal(t, []string{"echo (x)"}, repo.DeletedCommands)
	assert.Empty(t, c.Filtered())
	assert.ErrorIs(t, c.Notice(), filtering.ErrInvalidPattern)
}

func TestDeleteOnEmptyListIsNoop(t *testing.T) {
	c, repo, _ := newController(t, nil, nil, State{})

	require.NoError(t, c.Handle(Delete{}))
	assert.Empty(t, repo.DeletedCommands)
}

func TestToggleFavorite(t *testing.T) {
	t.Run("adding in ranked view keeps selection", func(t *testing.T) {
		c, repo, _ := newController(t, sampleLog, nil, State{})
		require.NoError(t, c.Handle(MoveSelection{Direction: paging.Next}))

		require.NoError(t, c.Handle(ToggleFavorite{}))

		assert.True(t, c.IsFavorite("make"))
		assert.Equal(t, [][]string{{"make"}}, repo.SavedFavorites)
		assert.Equal(t, "make", selected(t, c))
		assert.Len(t, c.Filtered(), 4)
	})

	t.Run("removing last entry in favorites view steps back", func(t *testing.T) {
		c, _, _ := newController(t, sampleLog, []string{"ls", "make", "git push"}, State{View: history.ViewFavorites})
		require.NoError(t, c.Handle(MoveSelection{Direction: paging.Next}))
		require.NoError(t, c.Handle(MoveSelection{Direction: paging.Next}))

		require.NoError(t, c.Handle(ToggleFavorite{}))

		assert.Equal(t, []string{"ls", "make"}, commandsOf(c.Filtered()))
		assert.Equal(t, "make", selected(t, c))
	})

	t.Run("removing first entry in favorites view keeps index", func(t *testing.T) {
		c, _, _ := newController(t, sampleLog, []string{"ls", "make", "git push"}, State{View: history.ViewFavorites})

		require.NoError(t, c.Handle(ToggleFavorite{}))

		assert.Equal(t, []string{"make", "git push"}, commandsOf(c.Filtered()))
		assert.Equal(t, "make", selected(t, c))
	})

	t.Run("save failure keeps favorites", func(t *testing.T) {
		c, repo, _ := newController(t, sampleLog, nil, State{})
		repo.SaveFavoritesFunc = func([]string) error { return errors.New("read-only") }

		assert.Error(t, c.Handle(ToggleFavorite{}))
		assert.False(t, c.IsFavorite("ls"))
		assert.Error(t, c.Notice())
	})
}

func TestResizeClampsPage(t *testing.T) {
	c, _, geometry := newController(t, sampleLog, nil, State{})
	require.NoError(t, c.Handle(TurnPage{Direction: paging.Next}))
	require.Equal(t, 2, c.Page().Number)

	geometry.Rows = 10 + pager.ReservedRows
	require.NoError(t, c.Handle(Resize{}))

	assert.Equal(t, 1, c.TotalPages())
	assert.Equal(t, 1, c.Page().Number)
	assert.Len(t, c.CurrentPage(), 4)
}

func TestSelectEndsSession(t *testing.T) {
	c, _, _ := newController(t, sampleLog, nil, State{})
	require.NoError(t, c.Handle(MoveSelection{Direction: paging.Next}))

	require.NoError(t, c.Handle(Select{Run: true}))

	assert.Equal(t, StatusSelected, c.Status())
	assert.Equal(t, Result{Command: "make", Run: true, Chosen: true}, c.Result())
	assert.ErrorIs(t, c.Handle(TypeChar{Char: 'x'}), ErrSessionEnded)
	assert.ErrorIs(t, c.Handle(Cancel{}), ErrSessionEnded)
	assert.Equal(t, "", c.State().Query)
}

func TestSelectOnEmptyListChoosesNothing(t *testing.T) {
	c, _, _ := newController(t, sampleLog, nil, State{})
	typeQuery(t, c, "zzz")

	require.NoError(t, c.Handle(Select{}))

	assert.Equal(t, StatusSelected, c.Status())
	assert.False(t, c.Result().Chosen)
}

func TestCancelEndsSession(t *testing.T) {
	c, _, _ := newController(t, sampleLog, nil, State{})

	require.NoError(t, c.Handle(Cancel{}))

	assert.Equal(t, StatusCancelled, c.Status())
	assert.False(t, c.Result().Chosen)
	assert.ErrorIs(t, c.Handle(Delete{}), ErrSessionEnded)
}
