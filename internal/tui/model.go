// Package tui provides the terminal calendar navigator for browsing reports.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pulso-tools/pulso/internal/calendar"
	"github.com/pulso-tools/pulso/internal/config"
	"github.com/pulso-tools/pulso/internal/report"
	"github.com/pulso-tools/pulso/internal/tui/theme"
)

// Position is the cursor position in the month grid.
type Position struct {
	Row int // week row index
	Col int // 0=Monday, 6=Sunday
}

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo   report.Repository
	loader *report.Loader
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Navigation core
	nav   *calendar.Navigator
	clock func() time.Time

	// Cursor state
	cursor      Position // month grid cursor
	pickerIndex int      // cursor in the week/month/year pickers

	// Preview pane
	preview      viewport.Model
	previewTitle string
	hasPreview   bool

	// Terminal dimensions
	width  int
	height int

	// Messages
	loading   bool
	statusMsg string
	statusErr bool
}

// ModelOption configures optional model behavior.
type ModelOption func(*Model)

// WithClock substitutes the time source, for deterministic tests.
func WithClock(clock func() time.Time) ModelOption {
	return func(m *Model) {
		m.clock = clock
		m.nav = calendar.NewNavigator(nil, "", "", clock)
	}
}

// New creates a new TUI model.
func New(repo report.Repository, loader *report.Loader, cfg *config.Config, opts ...ModelOption) *Model {
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		t, _ = theme.Load("mocha")
	}

	m := &Model{
		repo:    repo,
		loader:  loader,
		config:  cfg,
		theme:   t,
		styles:  NewStyles(t),
		clock:   time.Now,
		nav:     calendar.NewNavigator(nil, "", "", nil),
		preview: viewport.New(defaultPreviewWidth, defaultPreviewHeight),
		loading: true,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.focusCursorOnViewDate()
	return m
}

// Init starts loading the availability index.
func (m Model) Init() tea.Cmd {
	return loadIndex(m.repo)
}

// focusCursorOnViewDate places the grid cursor on the view date's cell.
func (m *Model) focusCursorOnViewDate() {
	target := calendar.FormatDate(m.nav.ViewDate())
	for r, row := range m.nav.MonthGrid() {
		for c, cell := range row.Days {
			if cell.Date == target {
				m.cursor = Position{Row: r, Col: c}
				return
			}
		}
	}
	m.cursor = Position{}
}

// clampCursor keeps the cursor inside the current grid after paging.
func (m *Model) clampCursor() {
	rows := len(m.nav.MonthGrid())
	if rows == 0 {
		m.cursor = Position{}
		return
	}
	if m.cursor.Row >= rows {
		m.cursor.Row = rows - 1
	}
	if m.cursor.Row < 0 {
		m.cursor.Row = 0
	}
	if m.cursor.Col > 6 {
		m.cursor.Col = 6
	}
	if m.cursor.Col < 0 {
		m.cursor.Col = 0
	}
}

// cursorCell returns the day cell under the cursor.
func (m *Model) cursorCell() calendar.DayCell {
	grid := m.nav.MonthGrid()
	if len(grid) == 0 {
		return calendar.DayCell{}
	}
	m.clampCursor()
	return grid[m.cursor.Row].Days[m.cursor.Col]
}

// Run starts the TUI.
func Run(repo report.Repository, loader *report.Loader, cfg *config.Config) error {
	p := tea.NewProgram(New(repo, loader, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
