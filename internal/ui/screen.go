package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/nibzard/tasklist-go/internal/logging"
	"github.com/nibzard/tasklist-go/internal/tasks"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
)

// ScreenOption configures a Screen.
type ScreenOption func(*Screen)

// WithLogger sets the logger for screen events.
func WithLogger(logger *log.Logger) ScreenOption {
	return func(s *Screen) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithSize sets the initial terminal size. A WindowSizeMsg replaces it.
func WithSize(width, height int) ScreenOption {
	return func(s *Screen) {
		if width > 0 {
			s.width = width
		}
		if height > 0 {
			s.height = height
		}
	}
}

// WithLineUnits sets how many layout units make one terminal line.
func WithLineUnits(units float64) ScreenOption {
	return func(s *Screen) {
		if units > 0 {
			s.layout.LineUnits = units
		}
	}
}

// WithSeeds sets the tasks the list starts with.
func WithSeeds(seeds []string) ScreenOption {
	return func(s *Screen) {
		s.seeds = seeds
	}
}

// Screen is the to-do list screen: a title, the header with the text field
// and add button, and the scrollable task list.
type Screen struct {
	store    *tasks.Store
	list     *ListPresenter
	header   *HeaderController
	viewport viewport.Model

	seeds  []string
	rows   []string
	width  int
	height int

	layout Layout
	styles Styles
	keys   keyMap
	logger *log.Logger
}

// NewScreen builds the screen and renders the initial rows.
func NewScreen(opts ...ScreenOption) *Screen {
	s := &Screen{
		seeds:  tasks.DefaultSeeds(),
		width:  defaultWidth,
		height: defaultHeight,
		layout: Layout{LineUnits: DefaultLineUnits},
		styles: DefaultStyles(),
		keys:   defaultKeyMap(),
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(s)
	}

	s.store = tasks.New(s.seeds...)
	s.list = NewListPresenter(s.store)
	s.header = NewHeaderController(s.addTask, s.Render)
	s.viewport = viewport.New(s.width, s.layout.listLines(s.height))
	s.viewport.KeyMap = s.keys.viewportKeyMap()

	s.resize(s.width, s.height)

	s.logger.Info("screen ready",
		"rows", s.list.RowCount(),
		"row_lines", s.layout.RowLines(),
		"header_lines", s.layout.HeaderLines(),
	)
	return s
}

func (s *Screen) addTask(text string) {
	s.store.Append(text)
	s.logger.Debug("task added",
		"index", s.store.Count()-1,
		"count", s.store.Count(),
		"length", len(text),
	)
}

// Render redraws every row from the presenter. Rows are never patched in
// place; each call rebuilds the whole list.
func (s *Screen) Render() {
	count := s.list.RowCount()
	lines := s.layout.RowLines()
	rows := make([]string, 0, count)
	for i := 0; i < count; i++ {
		text, err := s.list.RowContent(i)
		if err != nil {
			panic(fmt.Sprintf("ui: render row %d of %d: %v", i, count, err))
		}
		rows = append(rows, renderRow(RowModel{Kind: RowItem, Text: text, Lines: lines}, s.width, s.styles))
	}
	s.rows = rows
	s.viewport.SetContent(strings.Join(rows, "\n"))
}

// Rows returns the rows drawn by the last Render.
func (s *Screen) Rows() []string {
	out := make([]string, len(s.rows))
	copy(out, s.rows)
	return out
}

// Header returns the header controller.
func (s *Screen) Header() *HeaderController {
	return s.header
}

// Presenter returns the list presenter.
func (s *Screen) Presenter() *ListPresenter {
	return s.list
}

// Tasks returns a copy of the current task names.
func (s *Screen) Tasks() []string {
	return s.store.Items()
}

func (s *Screen) resize(width, height int) {
	s.width = width
	s.height = height
	s.viewport.Width = width
	s.viewport.Height = s.layout.listLines(height)
	s.header.SetWidth(s.headerGeometry().inputWidth())
	s.Render()
}

func (s *Screen) headerGeometry() headerGeometry {
	return computeHeaderGeometry(s.width, s.layout.HeaderLines(), AddLabel)
}

// tapAdd runs the add action and scrolls to the new row.
func (s *Screen) tapAdd() {
	s.header.OnAddTapped()
	s.viewport.GotoBottom()
}

// Init starts the cursor blinking.
func (s *Screen) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles a message.
func (s *Screen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.resize(msg.Width, msg.Height)
		s.logger.Debug("resize", "width", msg.Width, "height", msg.Height)
		return s, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, s.keys.Quit):
			return s, tea.Quit
		case key.Matches(msg, s.keys.Add):
			s.tapAdd()
			return s, nil
		case s.keys.isScroll(msg):
			var cmd tea.Cmd
			s.viewport, cmd = s.viewport.Update(msg)
			return s, cmd
		}
		return s, s.header.Update(msg)

	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
			s.headerGeometry().hitsButton(msg.X, msg.Y-titleLines) {
			s.tapAdd()
			return s, nil
		}
		var cmd tea.Cmd
		s.viewport, cmd = s.viewport.Update(msg)
		return s, cmd
	}

	return s, s.header.Update(msg)
}

// View renders the screen.
func (s *Screen) View() string {
	title := s.styles.Title.Width(s.width).Render(Title)
	header := renderRow(RowModel{
		Kind:   RowHeader,
		Text:   s.header.View(),
		Action: AddLabel,
		Lines:  s.layout.HeaderLines(),
	}, s.width, s.styles)
	footer := s.styles.Footer.Render(s.keys.helpLine())

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		header,
		s.viewport.View(),
		footer,
	)
}
