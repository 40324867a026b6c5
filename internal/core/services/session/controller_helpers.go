package session

import (
	"github.com/AntonioJCosta/histpick/internal/core/domain/history"
	"github.com/AntonioJCosta/histpick/internal/core/domain/search"
	"github.com/AntonioJCosta/histpick/internal/core/services/filtering"
)

// refilter recomputes the filtered list from the full list of the current
// view. On failure the previous list is kept and the error becomes the notice.
func (c *Controller) refilter() error {
	matches, err := filtering.Filter(c.store.Get(c.state.View), c.state.Query, search.Options{
		Regex:         c.state.RegexMode,
		CaseSensitive: c.state.CaseSensitive,
	})
	if err != nil {
		c.notice = err
		c.logger.Debug().Err(err).Str("query", c.state.Query).Msg("query rejected")
		return err
	}
	c.filtered = matches
	c.notice = nil
	return nil
}

// refilterFromStart is used after query changes: a good result starts again
// at the top, a rejected query leaves page and selection where they were.
func (c *Controller) refilterFromStart() error {
	if err := c.refilter(); err != nil {
		return err
	}
	c.pager.Reset()
	return nil
}

// refilterKeepingPage is used after mode toggles: the page is kept when it
// still exists but the selection goes back to the top of it.
func (c *Controller) refilterKeepingPage() error {
	if err := c.refilter(); err != nil {
		return err
	}
	c.pager.ResetSelection()
	c.pager.Clamp(len(c.filtered))
	return nil
}

// toggleView never shows the previous view's entries under the new view's
// name; a query the new view cannot run leaves the list empty.
func (c *Controller) toggleView() error {
	c.state.View = c.state.View.Next()
	c.pager.Reset()
	if err := c.refilter(); err != nil {
		c.filtered = []search.Match{}
		return err
	}
	return nil
}

func (c *Controller) toggleFavorite() error {
	cmd, ok := c.Selected()
	if !ok {
		return nil
	}
	isFavorite, err := c.store.ToggleFavorite(cmd)
	if err != nil {
		c.notice = err
		c.logger.Error().Err(err).Str("command", cmd).Msg("toggle favorite failed")
		return err
	}
	removedFromView := c.state.View == history.ViewFavorites && !isFavorite
	if removedFromView {
		c.pager.RetainSelection(len(c.filtered))
	}
	c.refilterAfterRemoval(cmd, removedFromView)
	return nil
}

func (c *Controller) delete() error {
	cmd, ok := c.Selected()
	if !ok {
		return nil
	}
	if err := c.store.DeleteAllOccurrences(cmd); err != nil {
		c.logger.Error().Err(err).Str("command", cmd).Msg("delete failed")
		// The list must keep reflecting the store, whatever it holds now.
		_ = c.refilter()
		c.pager.Clamp(len(c.filtered))
		c.notice = err
		return err
	}
	c.logger.Info().Str("command", cmd).Msg("deleted from history")
	c.pager.RetainSelection(len(c.filtered))
	c.refilterAfterRemoval(cmd, true)
	return nil
}

// refilterAfterRemoval refreshes the list after a store mutation. If the
// current query cannot be run, the removed command is dropped from the
// retained list so it is not shown after it is gone.
func (c *Controller) refilterAfterRemoval(cmd string, removed bool) {
	if err := c.refilter(); err != nil && removed {
		kept := make([]search.Match, 0, len(c.filtered))
		for _, m := range c.filtered {
			if m.Command != cmd {
				kept = append(kept, m)
			}
		}
		c.filtered = kept
	}
	c.pager.Clamp(len(c.filtered))
}
