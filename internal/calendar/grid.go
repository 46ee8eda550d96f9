package calendar

import "time"

// DayCell is a single day in the month grid. Cells are built fresh on every
// grid build and never mutated afterwards.
type DayCell struct {
	Day       int    // day of month, 1..31
	Date      string // YYYY-MM-DD
	InMonth   bool   // true if the day belongs to the displayed month
	Available bool   // a daily report exists for this date
	Selected  bool   // matches the caller's current date selection
}

// WeekRow is one Monday-start row of the month grid, tagged with its ISO
// week identity. Days[0] is always Monday, Days[6] always Sunday.
type WeekRow struct {
	ISOYear   int
	Week      int
	WeekLabel string // YYYY-Www
	Available bool   // a weekly report exists for this week
	Selected  bool   // matches the caller's current week selection
	Days      [7]DayCell
}

// maxGridRows bounds the grid walk. A month spans at most 6 Monday-start
// weeks; the cap only matters if the day arithmetic ever regresses.
const maxGridRows = 10

// BuildMonthGrid returns the ordered week rows covering viewDate's month,
// from the Monday on or before the 1st to the Sunday on or after the last
// day. Every row holds exactly 7 cells and the grid always fully covers the
// displayed month. selectedDate and selectedWeek may be empty.
func BuildMonthGrid(viewDate time.Time, avail *Availability, selectedDate, selectedWeek string) []WeekRow {
	viewDate = truncateToDay(viewDate)
	firstOfMonth := time.Date(viewDate.Year(), viewDate.Month(), 1, 0, 0, 0, 0, viewDate.Location())
	lastOfMonth := firstOfMonth.AddDate(0, 1, -1)

	gridStart := firstOfMonth.AddDate(0, 0, -(isoWeekday(firstOfMonth) - 1))
	gridEnd := lastOfMonth
	if wd := isoWeekday(lastOfMonth); wd < 7 {
		gridEnd = lastOfMonth.AddDate(0, 0, 7-wd)
	}

	var rows []WeekRow
	for monday := gridStart; !monday.After(gridEnd) && len(rows) < maxGridRows; monday = monday.AddDate(0, 0, 7) {
		row := WeekRow{
			ISOYear: ISOYearOf(monday),
			Week:    ISOWeekOf(monday),
		}
		row.WeekLabel = FormatWeek(row.ISOYear, row.Week)
		row.Available = avail.HasWeek(row.WeekLabel)
		row.Selected = selectedWeek != "" && selectedWeek == row.WeekLabel

		for i := 0; i < 7; i++ {
			day := monday.AddDate(0, 0, i)
			ds := FormatDate(day)
			row.Days[i] = DayCell{
				Day:       day.Day(),
				Date:      ds,
				InMonth:   day.Month() == viewDate.Month(),
				Available: avail.HasDate(ds),
				Selected:  selectedDate != "" && selectedDate == ds,
			}
		}
		rows = append(rows, row)
	}
	return rows
}
