package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// HeaderController owns the text field above the list and runs the add
// action. It talks to the rest of the screen only through the handlers
// given to NewHeaderController.
type HeaderController struct {
	input   textinput.Model
	add     func(text string)
	onAdded func()
}

// NewHeaderController creates a focused, empty text field. add receives the
// field's text when the add action runs; onAdded, if set, runs after the
// field has been cleared. add must not be nil.
func NewHeaderController(add func(text string), onAdded func()) *HeaderController {
	if add == nil {
		panic("ui: NewHeaderController called with a nil add handler")
	}

	ti := textinput.New()
	ti.Placeholder = Placeholder
	ti.Prompt = ""
	ti.PlaceholderStyle = DefaultStyles().Placeholder
	ti.Width = len(Placeholder) + 1
	ti.Focus()

	return &HeaderController{
		input:   ti,
		add:     add,
		onAdded: onAdded,
	}
}

// OnAddTapped hands the current text to the add handler exactly as typed,
// empty or not, then clears the field and signals onAdded.
func (h *HeaderController) OnAddTapped() {
	text := h.input.Value()
	h.add(text)
	h.input.Reset()
	if h.onAdded != nil {
		h.onAdded()
	}
}

// Text returns the current field contents.
func (h *HeaderController) Text() string {
	return h.input.Value()
}

// SetText replaces the field contents.
func (h *HeaderController) SetText(s string) {
	h.input.SetValue(s)
}

// Update feeds a message (typing, cursor blink) to the text field.
func (h *HeaderController) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.input, cmd = h.input.Update(msg)
	return cmd
}

// View renders the text field, showing the placeholder when empty.
func (h *HeaderController) View() string {
	return h.input.View()
}

// SetWidth sets the visible width of the field.
func (h *HeaderController) SetWidth(w int) {
	h.input.Width = w
}

// Focus gives the field key input and starts the cursor.
func (h *HeaderController) Focus() tea.Cmd {
	return h.input.Focus()
}

// Focused reports whether the field takes key input.
func (h *HeaderController) Focused() bool {
	return h.input.Focused()
}
