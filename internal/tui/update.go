package tui

import (
	"fmt"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/pulso-tools/pulso/internal/calendar"
)

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.preview.Width = max(msg.Width-4, 20)
		m.preview.Height = max(msg.Height-gridHeight-6, 3)
		return m, nil

	case indexLoadedMsg:
		avail := calendar.NewAvailability(msg.Index.Dates, msg.Index.Weeks)
		m.nav.SetAvailability(avail)
		m.loading = false
		if avail.DateCount() == 0 && avail.WeekCount() == 0 {
			m.setStatus("index is empty, run: pulso sync", false)
		} else {
			m.setStatus(fmt.Sprintf("%d daily, %d weekly reports indexed", avail.DateCount(), avail.WeekCount()), false)
		}
		return m, nil

	case reportLoadedMsg:
		m.previewTitle = msg.Report.Title()
		m.preview.SetContent(renderReport(msg.Report, m.preview.Width))
		m.preview.GotoTop()
		m.hasPreview = true
		return m, nil

	case errMsg:
		m.setStatus(msg.Err.Error(), true)
		return m, nil
	}

	var cmd tea.Cmd
	m.preview, cmd = m.preview.Update(msg)
	return m, cmd
}

func (m *Model) setStatus(s string, isErr bool) {
	m.statusMsg = s
	m.statusErr = isErr
}

// handleKeyMsg dispatches keys by picker mode.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	}

	switch m.nav.Mode() {
	case calendar.ModeWeekPicker, calendar.ModeMonthPicker, calendar.ModeYearPicker:
		return m.handlePickerKeys(msg)
	default:
		return m.handleMonthKeys(msg)
	}
}

// handleMonthKeys handles keys in the month grid.
func (m Model) handleMonthKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "h", "left":
		m.cursor.Col--
		if m.cursor.Col < 0 {
			m.cursor.Col = 6
			m.cursor.Row--
		}
		m.clampCursor()

	case "l", "right":
		m.cursor.Col++
		if m.cursor.Col > 6 {
			m.cursor.Col = 0
			m.cursor.Row++
		}
		m.clampCursor()

	case "k", "up":
		m.cursor.Row--
		m.clampCursor()

	case "j", "down":
		m.cursor.Row++
		m.clampCursor()

	case "[", "pgup":
		m.nav.Prev()
		m.clampCursor()

	case "]", "pgdown":
		m.nav.Next()
		m.clampCursor()

	case "t":
		m.nav.JumpToToday()
		m.focusCursorOnViewDate()

	case "y":
		m.nav.ToggleYearPicker()
		m.pickerIndex = m.yearPickerIndex()

	case "m":
		m.nav.ToggleMonthPicker()
		m.pickerIndex = int(m.nav.ViewDate().Month()) - 1

	case "w":
		m.nav.ToggleWeekPicker()
		m.pickerIndex = calendar.ISOWeekOf(m.nav.ViewDate()) - 1
		m.clampPickerIndex()

	case "enter":
		cell := m.cursorCell()
		sel, ok := m.nav.SelectDay(cell.Date)
		if !ok {
			m.setStatus("no report for "+cell.Date, false)
			return m, nil
		}
		m.setStatus("opened "+sel.Value, false)
		return m, loadDaily(m.loader, sel.Value)

	case "c":
		return m.copySelection()

	case "r":
		m.loading = true
		return m, loadIndex(m.repo)

	case "esc":
		m.hasPreview = false
	}

	return m, nil
}

// handlePickerKeys handles keys in the week, month, and year pickers.
func (m Model) handlePickerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "k", "up":
		m.pickerIndex--
		m.clampPickerIndex()

	case "j", "down":
		m.pickerIndex++
		m.clampPickerIndex()

	case "h", "left", "[", "pgup":
		m.nav.Prev()
		m.clampPickerIndex()

	case "l", "right", "]", "pgdown":
		m.nav.Next()
		m.clampPickerIndex()

	case "t":
		m.nav.JumpToToday()
		m.focusCursorOnViewDate()

	case "y":
		if m.nav.Mode() == calendar.ModeYearPicker {
			m.nav.ToggleYearPicker()
		}

	case "m":
		if m.nav.Mode() == calendar.ModeMonthPicker {
			m.nav.ToggleMonthPicker()
		}

	case "esc":
		// All pickers collapse back to the month grid.
		switch m.nav.Mode() {
		case calendar.ModeYearPicker:
			m.nav.ToggleYearPicker()
		case calendar.ModeMonthPicker:
			m.nav.ToggleMonthPicker()
		case calendar.ModeWeekPicker:
			m.nav.ToggleWeekPicker()
		}
		m.focusCursorOnViewDate()

	case "enter":
		return m.confirmPicker()
	}

	return m, nil
}

// confirmPicker applies the picker selection under the cursor.
func (m Model) confirmPicker() (tea.Model, tea.Cmd) {
	switch m.nav.Mode() {
	case calendar.ModeYearPicker:
		years := m.nav.Years()
		if m.pickerIndex >= 0 && m.pickerIndex < len(years) {
			m.nav.SelectYear(years[m.pickerIndex])
			m.pickerIndex = int(m.nav.ViewDate().Month()) - 1
		}

	case calendar.ModeMonthPicker:
		months := calendar.MonthList()
		if m.pickerIndex >= 0 && m.pickerIndex < len(months) {
			m.nav.SelectMonth(months[m.pickerIndex])
			m.focusCursorOnViewDate()
		}

	case calendar.ModeWeekPicker:
		weeks := m.nav.Weeks()
		if m.pickerIndex >= 0 && m.pickerIndex < len(weeks) {
			entry := weeks[m.pickerIndex]
			sel, ok := m.nav.SelectWeek(entry.Number)
			m.focusCursorOnViewDate()
			if ok {
				m.setStatus("opened "+sel.Value, false)
				return m, loadWeekly(m.loader, sel.Value)
			}
			m.setStatus("no report for "+entry.Label, false)
		}
	}

	return m, nil
}

// copySelection puts the current selection identifier on the clipboard.
func (m Model) copySelection() (tea.Model, tea.Cmd) {
	value := m.nav.SelectedDate()
	if value == "" {
		value = m.nav.SelectedWeek()
	}
	if value == "" {
		m.setStatus("nothing selected to copy", false)
		return m, nil
	}
	if err := clipboard.WriteAll(value); err != nil {
		m.setStatus("clipboard: "+err.Error(), true)
		return m, nil
	}
	m.setStatus("copied "+value, false)
	return m, nil
}

// yearPickerIndex returns the view year's position in the current page.
func (m *Model) yearPickerIndex() int {
	idx := m.nav.ViewDate().Year() - m.nav.YearPageStart()
	if idx < 0 || idx >= len(m.nav.Years()) {
		return 0
	}
	return idx
}

// clampPickerIndex keeps the picker cursor inside the current list.
func (m *Model) clampPickerIndex() {
	var n int
	switch m.nav.Mode() {
	case calendar.ModeWeekPicker:
		n = len(m.nav.Weeks())
	case calendar.ModeMonthPicker:
		n = len(calendar.MonthList())
	case calendar.ModeYearPicker:
		n = len(m.nav.Years())
	default:
		return
	}
	if m.pickerIndex >= n {
		m.pickerIndex = n - 1
	}
	if m.pickerIndex < 0 {
		m.pickerIndex = 0
	}
}
