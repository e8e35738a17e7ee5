package ui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor = lipgloss.Color("#A78BFA")
	buttonColor  = lipgloss.Color("#60A5FA")
	mutedColor   = lipgloss.Color("#9CA3AF")
	borderColor  = lipgloss.Color("#6B7280")
)

// Styles holds the lipgloss styles the screen renders with.
type Styles struct {
	Title         lipgloss.Style
	Field         lipgloss.Style
	Button        lipgloss.Style
	CompactButton lipgloss.Style // header too short for frames
	Row           lipgloss.Style
	Footer        lipgloss.Style
	Placeholder   lipgloss.Style
}

// DefaultStyles returns the screen's default look: a centered bold title,
// rounded field and button frames and bold, left-aligned rows.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Align(lipgloss.Center),
		Field: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(borderColor),
		Button: lipgloss.NewStyle().
			Foreground(buttonColor).
			Bold(true).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(buttonColor).
			Padding(0, 1),
		CompactButton: lipgloss.NewStyle().
			Foreground(buttonColor).
			Bold(true),
		Row: lipgloss.NewStyle().
			Bold(true).
			PaddingLeft(inset).
			Align(lipgloss.Left),
		Footer: lipgloss.NewStyle().
			Foreground(mutedColor),
		Placeholder: lipgloss.NewStyle().
			Foreground(mutedColor),
	}
}
