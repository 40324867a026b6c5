package tui

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/histpick/internal/core/domain/history"
	"github.com/AntonioJCosta/histpick/internal/core/domain/search"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

const (
	promptText = ">>> "
	helpLabel  = "Type to filter, UP/DOWN move, RET/TAB select, DEL remove, ESC quit"
	favMarker  = "* "
	noMarker   = "  "
)

// View implements tea.Model
func (m Model) View() string {
	width := m.screen.Width()

	var b strings.Builder
	b.WriteString(m.renderPrompt())
	b.WriteByte('\n')
	b.WriteString(m.renderLabel(width))
	b.WriteByte('\n')
	b.WriteString(m.styles.status.Render(truncate(m.statusLine(), width)))

	state := m.controller.State()
	page := m.controller.Page()
	for i, match := range m.controller.CurrentPage() {
		b.WriteByte('\n')
		b.WriteString(m.renderEntry(match, i == page.Selected, state.View, width))
	}
	return b.String()
}

func (m Model) renderPrompt() string {
	line := m.styles.prompt.Render(promptText) + m.controller.State().Query
	if notice := m.controller.Notice(); notice != nil {
		line += "  " + m.styles.notice.Render(notice.Error())
	}
	return line
}

func (m Model) renderLabel(width int) string {
	if m.pendingDelete != "" {
		text := fmt.Sprintf("Do you want to delete all occurrences of %s? y/n", m.pendingDelete)
		return m.styles.deletePrompt.Render(truncate(text, width))
	}
	return m.styles.label.Render(truncate(helpLabel, width))
}

func (m Model) statusLine() string {
	state := m.controller.State()
	regex := "off"
	if state.RegexMode {
		regex = "on"
	}
	caseMode := "insensitive"
	if state.CaseSensitive {
		caseMode = "sensitive"
	}
	pageNumber, total := m.controller.Page().Number, m.controller.TotalPages()
	if total == 0 {
		pageNumber = 0
	}
	return fmt.Sprintf("- view:%s (C-/) - regex:%s (C-e) - case:%s (C-t) - page %d/%d",
		state.View, regex, caseMode, pageNumber, total)
}

// renderEntry draws one command: a favorite marker outside the favorites
// view, then the command cut to the screen width with matched runes highlighted.
func (m Model) renderEntry(match search.Match, selected bool, view history.View, width int) string {
	base, highlight := m.styles.normal, m.styles.match
	if selected {
		base, highlight = m.styles.selected, m.styles.selectedMatch
	}

	marker := noMarker
	if view != history.ViewFavorites && m.controller.IsFavorite(match.Command) {
		marker = favMarker
		if !selected {
			base = m.styles.favorite
		}
	}

	var b strings.Builder
	b.WriteString(base.Render(marker))
	for _, seg := range segments(match, width-runewidth.StringWidth(marker)) {
		if seg.matched {
			b.WriteString(highlight.Render(seg.text))
		} else {
			b.WriteString(base.Render(seg.text))
		}
	}
	return b.String()
}

type segment struct {
	text    string
	matched bool
}

// segments splits the command into runs of matched and unmatched runes,
// stopping before the text would exceed width columns.
func segments(match search.Match, width int) []segment {
	var out []segment
	var cur strings.Builder
	curMatched := false
	used := 0

	flush := func() {
		if cur.Len() > 0 {
			out = append(out, segment{text: cur.String(), matched: curMatched})
			cur.Reset()
		}
	}

	i := 0
	for _, r := range match.Command {
		w := runewidth.RuneWidth(r)
		if used+w > width {
			break
		}
		used += w
		matched := match.Highlighted(i)
		if matched != curMatched {
			flush()
			curMatched = matched
		}
		cur.WriteRune(r)
		i++
	}
	flush()
	return out
}

func truncate(s string, width int) string {
	if width <= 0 || lipgloss.Width(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "")
}
