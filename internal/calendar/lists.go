package calendar

import "time"

// yearPageSize is the number of years shown per picker page.
const yearPageSize = 12

// WeekEntry is one row of the week picker list.
type WeekEntry struct {
	Number    int    // 1..WeeksInYear(year)
	Label     string // YYYY-Www
	Available bool
}

// WeekList enumerates every ISO week of the given year in order, annotated
// with report availability.
func WeekList(year int, avail *Availability) []WeekEntry {
	n := WeeksInYear(year)
	entries := make([]WeekEntry, 0, n)
	for w := 1; w <= n; w++ {
		label := FormatWeek(year, w)
		entries = append(entries, WeekEntry{
			Number:    w,
			Label:     label,
			Available: avail.HasWeek(label),
		})
	}
	return entries
}

// MonthList returns the twelve months in calendar order for the month picker.
func MonthList() []time.Month {
	months := make([]time.Month, 0, 12)
	for m := time.January; m <= time.December; m++ {
		months = append(months, m)
	}
	return months
}

// YearPage returns the twelve consecutive years starting at start, one page
// of the year picker.
func YearPage(start int) []int {
	years := make([]int, yearPageSize)
	for i := range years {
		years[i] = start + i
	}
	return years
}
