package tui

import "github.com/charmbracelet/lipgloss"

// Theme is the colour palette of the picker.
type Theme struct {
	Prompt    lipgloss.Color
	Muted     lipgloss.Color
	Danger    lipgloss.Color
	Match     lipgloss.Color
	Favorite  lipgloss.Color
	Selection lipgloss.Color
	Text      lipgloss.Color

	// Renderer decides the colour profile; nil means lipgloss.DefaultRenderer().
	Renderer *lipgloss.Renderer
}

func DefaultTheme() Theme {
	return Theme{
		Prompt:    lipgloss.Color("#7C3AED"), // Purple
		Muted:     lipgloss.Color("#6B7280"), // Gray
		Danger:    lipgloss.Color("#EF4444"), // Red
		Match:     lipgloss.Color("#F59E0B"), // Amber
		Favorite:  lipgloss.Color("#10B981"), // Green
		Selection: lipgloss.Color("#374151"),
		Text:      lipgloss.Color("#F9FAFB"),
	}
}

type styles struct {
	prompt        lipgloss.Style
	label         lipgloss.Style
	status        lipgloss.Style
	notice        lipgloss.Style
	deletePrompt  lipgloss.Style
	normal        lipgloss.Style
	match         lipgloss.Style
	favorite      lipgloss.Style
	selected      lipgloss.Style
	selectedMatch lipgloss.Style
}

func newStyles(t Theme) styles {
	r := t.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return styles{
		prompt:       r.NewStyle().Foreground(t.Prompt).Bold(true),
		label:        r.NewStyle().Foreground(t.Muted),
		status:       r.NewStyle().Foreground(t.Muted),
		notice:       r.NewStyle().Foreground(t.Danger),
		deletePrompt: r.NewStyle().Foreground(t.Danger).Bold(true),
		normal:       r.NewStyle().Foreground(t.Text),
		match:        r.NewStyle().Foreground(t.Match).Bold(true),
		favorite:     r.NewStyle().Foreground(t.Favorite),
		selected: r.NewStyle().
			Background(t.Selection).
			Foreground(t.Text).
			Bold(true),
		selectedMatch: r.NewStyle().
			Background(t.Selection).
			Foreground(t.Match).
			Bold(true),
	}
}
