package dateutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// StartOfDay returns the start of the day (00:00:00) for the given date
func StartOfDay(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
}

// IsWeekday returns true if the date is Monday-Friday
func IsWeekday(date time.Time) bool {
	weekday := date.Weekday()
	return weekday >= time.Monday && weekday <= time.Friday
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// IsSameDay returns true if two dates are on the same day
func IsSameDay(date1, date2 time.Time) bool {
	return date1.Year() == date2.Year() &&
		date1.Month() == date2.Month() &&
		date1.Day() == date2.Day()
}

// Today returns today's date (start of day)
func Today() time.Time {
	return StartOfDay(time.Now())
}

// dateFormats lists the accepted textual date layouts. Year-first layouts
// come before day-first ones so "2025.01.02" is not read as day 2025.
var dateFormats = []string{
	"2006-01-02",
	"2006.01.02",
	"2006 01 02",
	"02.01.2006",
	"02 01 2006",
}

// ParseDate parses user-supplied date text. Besides the layouts in
// dateFormats it accepts "today"/"dzisiaj" and signed calendar-day offsets
// from today such as "+5" or "-3".
func ParseDate(dateStr string) (time.Time, error) {
	dateStr = strings.TrimSpace(dateStr)

	switch strings.ToLower(dateStr) {
	case "today", "dzisiaj", "dziś":
		return Today(), nil
	}

	if len(dateStr) > 1 && (dateStr[0] == '+' || dateStr[0] == '-') {
		if offset, err := strconv.Atoi(dateStr); err == nil {
			return StartOfDay(time.Now().AddDate(0, 0, offset)), nil
		}
	}

	for _, format := range dateFormats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", dateStr)
}

// weekdayNamesPL maps weekdays to their Polish names.
var weekdayNamesPL = map[time.Weekday]string{
	time.Monday:    "poniedziałek",
	time.Tuesday:   "wtorek",
	time.Wednesday: "środa",
	time.Thursday:  "czwartek",
	time.Friday:    "piątek",
	time.Saturday:  "sobota",
	time.Sunday:    "niedziela",
}

// WeekdayNamePL returns the Polish name of the date's weekday.
func WeekdayNamePL(date time.Time) string {
	return weekdayNamesPL[date.Weekday()]
}
