package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/pulso-tools/pulso/internal/calendar"
	"github.com/pulso-tools/pulso/internal/report"
)

const (
	defaultPreviewWidth  = 76
	defaultPreviewHeight = 10

	// gridHeight is how many lines the calendar block occupies: header,
	// weekday row, up to six grid rows, status line.
	gridHeight = 9
)

// View renders the navigator.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n")

	switch m.nav.Mode() {
	case calendar.ModeWeekPicker:
		b.WriteString(m.renderWeekPicker())
	case calendar.ModeMonthPicker:
		b.WriteString(m.renderMonthPicker())
	case calendar.ModeYearPicker:
		b.WriteString(m.renderYearPicker())
	default:
		b.WriteString(m.renderMonthGrid())
	}

	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	b.WriteString("\n")

	if m.hasPreview {
		b.WriteString(m.renderPreview())
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render(m.helpLine()))
	return b.String()
}

func (m Model) renderHeader() string {
	vd := m.nav.ViewDate()
	title := fmt.Sprintf("%s %d", vd.Month(), vd.Year())
	if m.nav.Mode() == calendar.ModeYearPicker {
		years := m.nav.Years()
		title = fmt.Sprintf("%d - %d", years[0], years[len(years)-1])
	}
	mode := m.styles.ModeLabel.Render("[" + m.nav.Mode().String() + "]")
	return m.styles.Title.Render(title) + " " + mode
}

func (m Model) renderMonthGrid() string {
	var b strings.Builder
	b.WriteString(m.styles.WeekdayRow.Render("   Wk  Mo Tu We Th Fr Sa Su"))
	b.WriteString("\n")

	today := calendar.FormatDate(m.clock())
	for r, row := range m.nav.MonthGrid() {
		label := fmt.Sprintf("  W%02d ", row.Week)
		if row.Available {
			b.WriteString(m.styles.WeekAvail.Render(label))
		} else {
			b.WriteString(m.styles.WeekLabel.Render(label))
		}

		for c, cell := range row.Days {
			text := fmt.Sprintf(" %2d", cell.Day)
			style := m.dayStyle(cell, today)
			if r == m.cursor.Row && c == m.cursor.Col {
				style = m.styles.Cursor
			}
			b.WriteString(style.Render(text))
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) dayStyle(cell calendar.DayCell, today string) lipgloss.Style {
	switch {
	case cell.Selected:
		return m.styles.DaySelected
	case cell.Date == today:
		return m.styles.DayToday
	case !cell.InMonth:
		return m.styles.DayMuted
	case cell.Available:
		return m.styles.DayAvail
	default:
		return m.styles.Day
	}
}

// pickerWindow is how many week rows the week picker shows at once.
const pickerWindow = 8

func (m Model) renderWeekPicker() string {
	weeks := m.nav.Weeks()

	start := m.pickerIndex - pickerWindow/2
	if start > len(weeks)-pickerWindow {
		start = len(weeks) - pickerWindow
	}
	if start < 0 {
		start = 0
	}
	end := start + pickerWindow
	if end > len(weeks) {
		end = len(weeks)
	}

	var b strings.Builder
	for i := start; i < end; i++ {
		entry := weeks[i]
		monday := calendar.MondayOfISOWeek(m.nav.ViewDate().Year(), entry.Number)
		line := fmt.Sprintf("  %s  %s", entry.Label, monday.Format("Jan 02"))

		style := m.styles.PickerItem
		if entry.Available {
			style = m.styles.PickerAvail
		}
		if i == m.pickerIndex {
			style = m.styles.Cursor
		}
		b.WriteString(style.Render(line))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m Model) renderMonthPicker() string {
	return m.renderPickerGrid(monthLabels(), 4)
}

func (m Model) renderYearPicker() string {
	years := m.nav.Years()
	labels := make([]string, len(years))
	for i, y := range years {
		labels[i] = fmt.Sprintf("%d", y)
	}
	return m.renderPickerGrid(labels, 4)
}

// renderPickerGrid lays out labels in rows of perRow cells.
func (m Model) renderPickerGrid(labels []string, perRow int) string {
	var b strings.Builder
	for i, label := range labels {
		style := m.styles.PickerItem
		if i == m.pickerIndex {
			style = m.styles.Cursor
		}
		b.WriteString("  ")
		b.WriteString(style.Render(fmt.Sprintf("%-6s", label)))
		if (i+1)%perRow == 0 {
			b.WriteString("\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func monthLabels() []string {
	months := calendar.MonthList()
	labels := make([]string, len(months))
	for i, mo := range months {
		labels[i] = mo.String()[:3]
	}
	return labels
}

func (m Model) renderStatus() string {
	if m.loading {
		return m.styles.Status.Render("  loading index...")
	}
	if m.statusMsg == "" {
		return ""
	}
	if m.statusErr {
		return m.styles.StatusError.Render("  " + m.statusMsg)
	}
	return m.styles.Status.Render("  " + m.statusMsg)
}

func (m Model) renderPreview() string {
	head := m.styles.PreviewHead.Render(m.previewTitle)
	return m.styles.Preview.Render(head + "\n" + m.preview.View())
}

func (m Model) helpLine() string {
	switch m.nav.Mode() {
	case calendar.ModeMonth:
		return "  arrows move · [/] month · w/m/y pickers · t today · enter open · c copy · r reload · q quit"
	case calendar.ModeWeekPicker:
		return "  j/k move · h/l year · enter open week · esc back"
	case calendar.ModeMonthPicker:
		return "  j/k move · h/l year · enter pick month · esc back"
	default:
		return "  j/k move · h/l page · enter pick year · esc back"
	}
}

// renderReport flattens a report into preview text.
func renderReport(r *report.Report, width int) string {
	if width <= 0 {
		width = defaultPreviewWidth
	}

	var b strings.Builder
	if r.Overview != "" {
		b.WriteString(wrapText(r.Overview, width))
		b.WriteString("\n\n")
	}
	for source, items := range r.Sources {
		if len(items) == 0 {
			continue
		}
		b.WriteString(strings.ToUpper(source))
		b.WriteString("\n")
		for _, item := range items {
			b.WriteString("  - ")
			b.WriteString(item.Title)
			if item.Author != "" {
				b.WriteString(" (" + item.Author + ")")
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// wrapText is a simple word wrapper for the overview paragraph.
func wrapText(s string, width int) string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	lineLen := 0
	for _, word := range words {
		if lineLen > 0 && lineLen+1+len(word) > width {
			b.WriteString("\n")
			lineLen = 0
		} else if lineLen > 0 {
			b.WriteString(" ")
			lineLen++
		}
		b.WriteString(word)
		lineLen += len(word)
	}
	return b.String()
}
