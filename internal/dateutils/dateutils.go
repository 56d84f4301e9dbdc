// Package dateutils provides calendar-day helpers and lenient parsing of dates
// typed on the command line.
package dateutils

import (
	"fmt"
	"strings"
	"time"
)

// Date layouts accepted from user input. Stored dates always use DateLayoutISO.
const (
	DateLayoutISO       = "2006-01-02"
	DateLayoutEuropean  = "02.01.2006"
	DateLayoutUS        = "01/02/2006"
	DateLayoutSlashISO  = "2006/01/02"
	DateLayoutWithMonth = "2-Jan-2006"
	DateLayoutLong      = "January 2, 2006"
)

// InputFormats are tried in order by ParseDate.
var InputFormats = []string{
	DateLayoutISO,
	DateLayoutEuropean,
	DateLayoutUS,
	"02/01/2006",
	DateLayoutSlashISO,
	DateLayoutWithMonth,
	"2 January 2006",
	DateLayoutLong,
	"Jan 2, 2006",
}

// ParseDate parses dateStr with the first matching layout of InputFormats and
// returns the result at UTC midnight together with the layout used.
func ParseDate(dateStr string) (time.Time, string, error) {
	cleaned := CleanDateString(dateStr)
	if cleaned == "" {
		return time.Time{}, "", fmt.Errorf("unable to parse date: empty input")
	}
	for _, layout := range InputFormats {
		if t, err := time.Parse(layout, cleaned); err == nil {
			return StartOfDay(t), layout, nil
		}
	}
	return time.Time{}, "", fmt.Errorf("unable to parse date: %s", dateStr)
}

// CleanDateString trims whitespace and collapses inner runs of spaces.
func CleanDateString(dateStr string) string {
	return strings.Join(strings.Fields(dateStr), " ")
}

// StartOfDay returns the calendar day of t, taken in t's own location, as UTC midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysInMonth returns the number of days of the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// StartOfMonth returns the first day of t's month at UTC midnight.
func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// EndOfMonth returns the last day of t's month at UTC midnight.
func EndOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), DaysInMonth(t.Year(), t.Month()), 0, 0, 0, 0, time.UTC)
}

// AddMonthsClamped moves t by months calendar months. Unlike time.AddDate the
// day is clamped to the end of the target month, so March 31 minus one month
// is February 28 (or 29), not March 3.
func AddMonthsClamped(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	total := int(m) - 1 + months
	year := y + total/12
	monthIdx := total % 12
	if monthIdx < 0 {
		monthIdx += 12
		year--
	}
	month := time.Month(monthIdx + 1)
	if last := DaysInMonth(year, month); d > last {
		d = last
	}
	return time.Date(year, month, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// CompareDates compares the calendar days of two instants: -1, 0 or 1.
func CompareDates(a, b time.Time) int {
	a, b = StartOfDay(a), StartOfDay(b)
	switch {
	case a.Before(b):
		return -1
	case a.After(b):
		return 1
	default:
		return 0
	}
}

// ToISODate formats t as YYYY-MM-DD.
func ToISODate(t time.Time) string {
	return t.Format(DateLayoutISO)
}
