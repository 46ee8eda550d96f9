package calendar

import "time"

// Mode is the navigator's current picker display state.
type Mode int

const (
	ModeMonth       Mode = iota // month day grid
	ModeWeekPicker              // weeks of the view year
	ModeMonthPicker             // twelve months
	ModeYearPicker              // paged year list
)

// String returns the mode name for status lines and logs.
func (m Mode) String() string {
	switch m {
	case ModeMonth:
		return "month"
	case ModeWeekPicker:
		return "weeks"
	case ModeMonthPicker:
		return "months"
	case ModeYearPicker:
		return "years"
	default:
		return "unknown"
	}
}

// SelectionKind discriminates what a Selection refers to.
type SelectionKind int

const (
	SelectDate SelectionKind = iota
	SelectWeek
)

// Selection is the event emitted when the user picks an available report.
// The navigator never acts on it; the shell routes it to the report viewer.
type Selection struct {
	Kind  SelectionKind
	Value string // YYYY-MM-DD or YYYY-Www
}

// Navigator owns the view state of the calendar: which period is displayed,
// which picker is open, and where the year pager sits. Every transition is
// synchronous and total; selecting something that is not in the availability
// set is a no-op rather than an error.
type Navigator struct {
	clock func() time.Time
	avail *Availability

	viewDate      time.Time // local midnight, drives the displayed period
	mode          Mode
	yearPageStart int

	selectedDate string // current selection highlight, may be empty
	selectedWeek string
}

// NewNavigator seeds the view from the caller's current selection: the
// selected date if present, else the Monday of the selected week, else today.
// clock may be nil, in which time.Now is used.
func NewNavigator(avail *Availability, selectedDate, selectedWeek string, clock func() time.Time) *Navigator {
	if clock == nil {
		clock = time.Now
	}
	n := &Navigator{
		clock:        clock,
		avail:        avail,
		mode:         ModeMonth,
		selectedDate: selectedDate,
		selectedWeek: selectedWeek,
	}

	now := truncateToDay(clock())
	switch {
	case selectedDate != "":
		if t, err := time.ParseInLocation(DateLayout, selectedDate, time.Local); err == nil {
			n.viewDate = t
		} else {
			n.viewDate = now
		}
	case selectedWeek != "":
		year, week := ParseWeekString(selectedWeek, now)
		n.viewDate = MondayOfISOWeek(year, week)
	default:
		n.viewDate = now
	}
	n.yearPageStart = n.viewDate.Year() - 4
	return n
}

// SetAvailability swaps in a freshly rebuilt index after the caller's report
// lists change.
func (n *Navigator) SetAvailability(avail *Availability) {
	n.avail = avail
}

// Mode returns the current picker mode.
func (n *Navigator) Mode() Mode { return n.mode }

// ViewDate returns the date driving the displayed period.
func (n *Navigator) ViewDate() time.Time { return n.viewDate }

// YearPageStart returns the first year of the current year picker page.
func (n *Navigator) YearPageStart() int { return n.yearPageStart }

// SelectedDate returns the current date selection highlight, if any.
func (n *Navigator) SelectedDate() string { return n.selectedDate }

// SelectedWeek returns the current week selection highlight, if any.
func (n *Navigator) SelectedWeek() string { return n.selectedWeek }

// ToggleYearPicker switches between the month grid and the year picker.
func (n *Navigator) ToggleYearPicker() {
	if n.mode == ModeYearPicker {
		n.mode = ModeMonth
		return
	}
	n.mode = ModeYearPicker
}

// ToggleMonthPicker switches between the month grid and the month picker.
func (n *Navigator) ToggleMonthPicker() {
	if n.mode == ModeMonthPicker {
		n.mode = ModeMonth
		return
	}
	n.mode = ModeMonthPicker
}

// ToggleWeekPicker switches between the month grid and the week picker.
func (n *Navigator) ToggleWeekPicker() {
	if n.mode == ModeWeekPicker {
		n.mode = ModeMonth
		return
	}
	n.mode = ModeWeekPicker
}

// Prev pages backward: one year page in the year picker, one month in the
// grid, one year in the week and month pickers.
func (n *Navigator) Prev() { n.page(-1) }

// Next pages forward, mirroring Prev.
func (n *Navigator) Next() { n.page(1) }

func (n *Navigator) page(dir int) {
	switch n.mode {
	case ModeYearPicker:
		n.yearPageStart += dir * yearPageSize
	case ModeMonth:
		// Day forced to 1 first so Jan 31 cannot roll over into March.
		first := time.Date(n.viewDate.Year(), n.viewDate.Month(), 1, 0, 0, 0, 0, n.viewDate.Location())
		n.viewDate = first.AddDate(0, dir, 0)
	default: // week and month pickers page by year
		n.setYear(n.viewDate.Year() + dir)
	}
}

// JumpToToday resets the view to the current date and the month grid.
func (n *Navigator) JumpToToday() {
	n.viewDate = truncateToDay(n.clock())
	n.mode = ModeMonth
	n.yearPageStart = n.viewDate.Year() - 4
}

// SelectYear picks a year in the year picker and moves on to the month
// picker, enforcing the year -> month -> day workflow.
func (n *Navigator) SelectYear(year int) {
	if n.mode != ModeYearPicker {
		return
	}
	n.setYear(year)
	n.mode = ModeMonthPicker
}

// SelectMonth picks a month in the month picker and returns to the grid.
// The day resets to 1 so a short target month cannot overflow.
func (n *Navigator) SelectMonth(month time.Month) {
	if n.mode != ModeMonthPicker {
		return
	}
	n.viewDate = time.Date(n.viewDate.Year(), month, 1, 0, 0, 0, 0, n.viewDate.Location())
	n.mode = ModeMonth
}

// SelectWeek picks a week of the view year. The grid jumps to the month
// containing that week's Monday, and a selection event is emitted when a
// weekly report exists for it.
func (n *Navigator) SelectWeek(week int) (Selection, bool) {
	if n.mode != ModeWeekPicker {
		return Selection{}, false
	}
	monday := MondayOfISOWeek(n.viewDate.Year(), week)
	n.viewDate = time.Date(monday.Year(), monday.Month(), 1, 0, 0, 0, 0, monday.Location())
	n.mode = ModeMonth

	label := FormatWeek(ISOYearOf(monday), ISOWeekOf(monday))
	if !n.avail.HasWeek(label) {
		return Selection{}, false
	}
	n.selectedWeek = label
	n.selectedDate = ""
	return Selection{Kind: SelectWeek, Value: label}, true
}

// SelectDay emits a selection event for an available daily report. The view
// state is untouched either way; dismissal is the shell's concern.
func (n *Navigator) SelectDay(date string) (Selection, bool) {
	if !n.avail.HasDate(date) {
		return Selection{}, false
	}
	n.selectedDate = date
	n.selectedWeek = ""
	return Selection{Kind: SelectDate, Value: date}, true
}

// MonthGrid builds the grid for the displayed month with current selection
// highlights.
func (n *Navigator) MonthGrid() []WeekRow {
	return BuildMonthGrid(n.viewDate, n.avail, n.selectedDate, n.selectedWeek)
}

// Weeks lists the view year's weeks for the week picker.
func (n *Navigator) Weeks() []WeekEntry {
	return WeekList(n.viewDate.Year(), n.avail)
}

// Years lists the current year picker page.
func (n *Navigator) Years() []int {
	return YearPage(n.yearPageStart)
}

// setYear moves viewDate to the given year, clamping the day so February
// and short months cannot normalize into the following month.
func (n *Navigator) setYear(year int) {
	day := n.viewDate.Day()
	if maxDay := daysInMonth(year, n.viewDate.Month()); day > maxDay {
		day = maxDay
	}
	n.viewDate = time.Date(year, n.viewDate.Month(), day, 0, 0, 0, 0, n.viewDate.Location())
}
