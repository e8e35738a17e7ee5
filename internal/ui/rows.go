package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// RowKind tags a RowModel.
type RowKind int

const (
	// RowHeader is the text field and add button above the list.
	RowHeader RowKind = iota
	// RowItem is one task.
	RowItem
)

func (k RowKind) String() string {
	switch k {
	case RowHeader:
		return "header"
	case RowItem:
		return "item"
	default:
		return "unknown"
	}
}

// RowModel is everything needed to draw one row.
type RowModel struct {
	Kind RowKind
	// Text is the task name for items, or the rendered text field for
	// the header.
	Text string
	// Action is the header button label. Unused for items.
	Action string
	// Lines is the row height in terminal lines.
	Lines int
}

// renderRow draws m at the given screen width.
func renderRow(m RowModel, width int, st Styles) string {
	switch m.Kind {
	case RowHeader:
		return renderHeaderRow(m, width, st)
	case RowItem:
		return renderItemRow(m, width, st)
	default:
		return ""
	}
}

func renderItemRow(m RowModel, width int, st Styles) string {
	// A row is a single label line; stray newlines would break the fixed height.
	label := strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(m.Text)
	if avail := width - inset; avail > 0 {
		label = ansi.Truncate(label, avail, "…")
	}
	return st.Row.
		Width(width).
		Height(m.Lines).
		MaxHeight(m.Lines).
		Render(label)
}

func renderHeaderRow(m RowModel, width int, st Styles) string {
	g := computeHeaderGeometry(width, m.Lines, m.Action)

	var block string
	if g.bordered {
		field := st.Field.Width(g.fieldWidth - 2).Render(m.Text)
		button := st.Button.Render(m.Action)
		block = lipgloss.JoinHorizontal(lipgloss.Center, field, " ", button)
	} else {
		field := lipgloss.NewStyle().Width(g.fieldWidth).MaxWidth(g.fieldWidth).Render(m.Text)
		button := st.CompactButton.Render("[" + m.Action + "]")
		block = field + " " + button
	}

	return lipgloss.NewStyle().
		PaddingLeft(g.fieldX).
		Height(m.Lines).
		MaxHeight(m.Lines).
		Render(block)
}
