package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"fjacquet/fintrack/internal/dateutils"

	"gopkg.in/yaml.v3"
)

// Date is a calendar date without time of day. The zero value means "unset".
// Dates are stored at UTC midnight so that comparisons never depend on the
// local offset of the machine that recorded them.
type Date struct {
	t time.Time
}

// NewDate builds a Date from its components. Out of range values normalize
// the way time.Date does.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar day of t, read in t's own location.
func DateOf(t time.Time) Date {
	return Date{t: dateutils.StartOfDay(t)}
}

// Today returns the calendar day of now.
func Today(now time.Time) Date {
	return DateOf(now)
}

// ParseDate accepts any layout known to dateutils.ParseDate.
func ParseDate(s string) (Date, error) {
	t, _, err := dateutils.ParseDate(s)
	if err != nil {
		return Date{}, err
	}
	return Date{t: t}, nil
}

// MustParseDate is ParseDate that panics on error. Intended for tests and
// package-level fixtures.
func MustParseDate(s string) Date {
	d, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Time returns the date as UTC midnight.
func (d Date) Time() time.Time { return d.t }

// IsZero reports whether the date is unset.
func (d Date) IsZero() bool { return d.t.IsZero() }

// AddDays moves the date by n days.
func (d Date) AddDays(n int) Date { return Date{t: d.t.AddDate(0, 0, n)} }

// AddMonths moves the date by n calendar months, clamping the day to the
// length of the target month.
func (d Date) AddMonths(n int) Date { return Date{t: dateutils.AddMonthsClamped(d.t, n)} }

func (d Date) Before(o Date) bool { return d.t.Before(o.t) }
func (d Date) After(o Date) bool  { return d.t.After(o.t) }
func (d Date) Equal(o Date) bool  { return d.t.Equal(o.t) }

// Compare returns -1, 0 or 1.
func (d Date) Compare(o Date) int { return d.t.Compare(o.t) }

// String formats the date as YYYY-MM-DD, or "" when unset.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(dateutils.DateLayoutISO)
}

// MarshalJSON encodes the date as an ISO string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON accepts "YYYY-MM-DD", full RFC 3339 timestamps (only the
// calendar part is kept), "" and null.
func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	return d.parseStored(s)
}

// MarshalYAML encodes the date as an ISO string.
func (d Date) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// UnmarshalYAML mirrors UnmarshalJSON.
func (d *Date) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return fmt.Errorf("date must be a string: %w", err)
	}
	return d.parseStored(s)
}

func (d *Date) parseStored(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		*d = Date{}
		return nil
	}
	if t, err := time.Parse(dateutils.DateLayoutISO, s); err == nil {
		*d = Date{t: t}
		return nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	*d = DateOf(t)
	return nil
}
