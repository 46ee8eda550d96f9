package calendar

// Availability answers membership queries over the report identifiers the
// surrounding application currently knows about. It is rebuilt from the
// caller's lists whenever they change and never mutated by this package.
type Availability struct {
	dates map[string]struct{}
	weeks map[string]struct{}
}

// NewAvailability builds an index from date (YYYY-MM-DD) and week (YYYY-Www)
// identifier lists.
func NewAvailability(dates, weeks []string) *Availability {
	a := &Availability{
		dates: make(map[string]struct{}, len(dates)),
		weeks: make(map[string]struct{}, len(weeks)),
	}
	for _, d := range dates {
		a.dates[d] = struct{}{}
	}
	for _, w := range weeks {
		a.weeks[w] = struct{}{}
	}
	return a
}

// HasDate reports whether a daily report exists for the given date string.
func (a *Availability) HasDate(s string) bool {
	if a == nil {
		return false
	}
	_, ok := a.dates[s]
	return ok
}

// HasWeek reports whether a weekly report exists for the given week string.
func (a *Availability) HasWeek(s string) bool {
	if a == nil {
		return false
	}
	_, ok := a.weeks[s]
	return ok
}

// DateCount returns the number of indexed daily reports.
func (a *Availability) DateCount() int {
	if a == nil {
		return 0
	}
	return len(a.dates)
}

// WeekCount returns the number of indexed weekly reports.
func (a *Availability) WeekCount() int {
	if a == nil {
		return 0
	}
	return len(a.weeks)
}
