package ui

import "math"

// Sizes are in layout units. Layout maps them to terminal lines.
const (
	RowHeightUnits    = 50.0
	HeaderHeightUnits = 100.0

	// DefaultLineUnits gives 2-line rows and a 4-line header.
	DefaultLineUnits = 25.0
)

// Screen text.
const (
	Title       = "To-Do List"
	Placeholder = "Enter Task Name"
	AddLabel    = "Add Task"
)

const (
	titleLines  = 1
	footerLines = 1
	// inset is the left margin of the header and rows, in columns.
	inset = 1
	// minFieldWidth is the smallest text field we lay out, border excluded.
	minFieldWidth = 8
)

// Layout converts layout units into terminal lines.
type Layout struct {
	LineUnits float64
}

// Lines returns how many terminal lines units occupy, never less than one.
func (l Layout) Lines(units float64) int {
	per := l.LineUnits
	if per <= 0 {
		per = DefaultLineUnits
	}
	n := int(math.Round(units / per))
	if n < 1 {
		return 1
	}
	return n
}

// RowLines is the height of one task row.
func (l Layout) RowLines() int {
	return l.Lines(RowHeightUnits)
}

// HeaderLines is the height of the header region.
func (l Layout) HeaderLines() int {
	return l.Lines(HeaderHeightUnits)
}

// listLines is what is left for the task list on a screen of height lines.
func (l Layout) listLines(height int) int {
	n := height - titleLines - footerLines - l.HeaderLines()
	if n < 1 {
		return 1
	}
	return n
}

// headerGeometry places the text field and button inside the header.
// X positions are columns from the left edge of the screen.
type headerGeometry struct {
	bordered    bool
	fieldX      int
	fieldWidth  int // outer width, border included
	buttonX     int
	buttonWidth int // outer width, border included
	blockHeight int // lines taken by the field/button block
}

func computeHeaderGeometry(width, lines int, action string) headerGeometry {
	g := headerGeometry{bordered: lines >= 3, fieldX: inset}
	border := 0
	if g.bordered {
		border = 2
		g.blockHeight = 3
	} else {
		g.blockHeight = 1
	}

	// " Add Task " inside the button frame, or "[Add Task]" without one.
	g.buttonWidth = len([]rune(action)) + 2
	if g.bordered {
		g.buttonWidth += border
	}

	g.fieldWidth = width - inset - 1 - g.buttonWidth - inset
	if g.fieldWidth < minFieldWidth+border {
		g.fieldWidth = minFieldWidth + border
	}
	g.buttonX = g.fieldX + g.fieldWidth + 1
	return g
}

// inputWidth is the width handed to the text input, leaving room for
// the field border and the cursor.
func (g headerGeometry) inputWidth() int {
	w := g.fieldWidth - 1
	if g.bordered {
		w -= 2
	}
	if w < 1 {
		return 1
	}
	return w
}

// hitsButton reports whether column x on header-relative line y falls on
// the button.
func (g headerGeometry) hitsButton(x, y int) bool {
	return y >= 0 && y < g.blockHeight && x >= g.buttonX && x < g.buttonX+g.buttonWidth
}
