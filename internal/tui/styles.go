package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/pulso-tools/pulso/internal/tui/theme"
)

// Styles holds the precomputed lipgloss styles for the navigator.
type Styles struct {
	Title       lipgloss.Style // month/year header
	ModeLabel   lipgloss.Style // picker mode tag in the header
	WeekdayRow  lipgloss.Style // Mo..Su column header
	WeekLabel   lipgloss.Style // ISO week number column
	WeekAvail   lipgloss.Style // week label with a weekly report
	Day         lipgloss.Style // plain in-month day
	DayMuted    lipgloss.Style // day outside the displayed month
	DayAvail    lipgloss.Style // day with a daily report
	DayToday    lipgloss.Style // today marker
	DaySelected lipgloss.Style // current selection highlight
	Cursor      lipgloss.Style // cell under the cursor
	PickerItem  lipgloss.Style
	PickerAvail lipgloss.Style
	Status      lipgloss.Style
	StatusError lipgloss.Style
	Help        lipgloss.Style
	Preview     lipgloss.Style // border around the report preview
	PreviewHead lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	return &Styles{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(theme.Color(t.Accent)),
		ModeLabel:   lipgloss.NewStyle().Foreground(theme.Color(t.FgMuted)),
		WeekdayRow:  lipgloss.NewStyle().Foreground(theme.Color(t.FgMuted)),
		WeekLabel:   lipgloss.NewStyle().Foreground(theme.Color(t.FgMuted)),
		WeekAvail:   lipgloss.NewStyle().Foreground(theme.Color(t.Accent)).Bold(true),
		Day:         lipgloss.NewStyle().Foreground(theme.Color(t.Fg)),
		DayMuted:    lipgloss.NewStyle().Foreground(theme.Color(t.FgMuted)),
		DayAvail:    lipgloss.NewStyle().Foreground(theme.Color(t.Available)).Bold(true),
		DayToday:    lipgloss.NewStyle().Foreground(theme.Color(t.Today)).Bold(true),
		DaySelected: lipgloss.NewStyle().Foreground(theme.Color(t.Bg)).Background(theme.Color(t.Selected)),
		Cursor:      lipgloss.NewStyle().Reverse(true),
		PickerItem:  lipgloss.NewStyle().Foreground(theme.Color(t.Fg)),
		PickerAvail: lipgloss.NewStyle().Foreground(theme.Color(t.Available)).Bold(true),
		Status:      lipgloss.NewStyle().Foreground(theme.Color(t.FgMuted)),
		StatusError: lipgloss.NewStyle().Foreground(theme.Color(t.Warning)),
		Help:        lipgloss.NewStyle().Foreground(theme.Color(t.FgMuted)),
		Preview:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(theme.Color(t.Accent)).Padding(0, 1),
		PreviewHead: lipgloss.NewStyle().Bold(true).Foreground(theme.Color(t.Accent)),
	}
}
