// Package calendar implements the date and ISO 8601 week arithmetic behind
// the report navigator: week numbering, month grids, and picker lists.
package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

// DateLayout is the canonical encoding for report dates.
const DateLayout = "2006-01-02"

var weekPattern = regexp.MustCompile(`^(\d{4})-W(\d{2})$`)

// isoWeekday returns the day of week with Monday=1 through Sunday=7.
func isoWeekday(t time.Time) int {
	wd := int(t.Weekday())
	if wd == 0 {
		wd = 7 // Sunday
	}
	return wd
}

// thursdayOf shifts t to the Thursday of its own Monday-Sunday week.
// The shifted date's calendar year is the ISO week-numbering year.
func thursdayOf(t time.Time) time.Time {
	return t.AddDate(0, 0, 4-isoWeekday(t))
}

// ISOWeekOf returns the ISO 8601 week number (1..53) of t.
func ISOWeekOf(t time.Time) int {
	thursday := thursdayOf(t)
	return (thursday.YearDay() + 6) / 7
}

// ISOYearOf returns the ISO week-numbering year of t, which can differ from
// t's calendar year near Dec/Jan boundaries (Dec 29-31 may belong to week 1
// of the next year, Jan 1-3 to the last week of the previous one).
func ISOYearOf(t time.Time) int {
	return thursdayOf(t).Year()
}

// WeeksInYear returns 52 or 53: a year has 53 ISO weeks iff its December 31
// falls on a Thursday, or on a Wednesday in a leap year.
func WeeksInYear(year int) int {
	dec31 := time.Date(year, time.December, 31, 0, 0, 0, 0, time.Local)
	switch isoWeekday(dec31) {
	case 4:
		return 53
	case 3:
		if isLeapYear(year) {
			return 53
		}
	}
	return 52
}

func isLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// MondayOfISOWeek returns the Monday of the given ISO week at local midnight.
// The week must be within [1, WeeksInYear(year)]; callers are expected to
// only offer in-range weeks (via WeeksInYear), out-of-range input lands in
// the adjacent year's numbering without any guard here.
func MondayOfISOWeek(year, week int) time.Time {
	seed := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	seed = seed.AddDate(0, 0, (week-1)*7)
	wd := isoWeekday(seed)
	if wd <= 4 {
		return seed.AddDate(0, 0, -(wd - 1))
	}
	return seed.AddDate(0, 0, 8-wd)
}

// FormatDate encodes t as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FormatWeek encodes an ISO week identifier as YYYY-Www.
func FormatWeek(year, week int) string {
	return fmt.Sprintf("%04d-W%02d", year, week)
}

// IsWeekString reports whether s is a well-formed YYYY-Www identifier.
func IsWeekString(s string) bool {
	return weekPattern.MatchString(s)
}

// ParseWeekString decodes a YYYY-Www identifier. Malformed input falls back
// to the ISO week containing now; report links carry hand-edited week
// strings, so leniency beats surfacing an error here.
func ParseWeekString(s string, now time.Time) (year, week int) {
	m := weekPattern.FindStringSubmatch(s)
	if m == nil {
		return ISOYearOf(now), ISOWeekOf(now)
	}
	// The pattern guarantees four and two digits, so Atoi cannot fail.
	year, _ = strconv.Atoi(m[1])
	week, _ = strconv.Atoi(m[2])
	return year, week
}

// truncateToDay returns t at local midnight.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// daysInMonth returns the number of days in the given month.
func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.Local).Day()
}
