// Package aggregation derives totals, category breakdowns and time series
// from a transaction collection. Every function is pure: the clock is passed
// in and inputs are never modified.
package aggregation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fjacquet/fintrack/internal/models"
)

// Timeframe selects a trailing window of the collection.
type Timeframe string

const (
	Today Timeframe = "today"
	Week  Timeframe = "week"
	Month Timeframe = "month"
	All   Timeframe = "all"
)

// Timeframes lists the selectable windows from narrowest to widest.
var Timeframes = []Timeframe{Today, Week, Month, All}

// ErrInvalidTimeframe is returned by ParseTimeframe.
var ErrInvalidTimeframe = errors.New("invalid timeframe")

// ParseTimeframe parses a timeframe name case-insensitively.
func ParseTimeframe(s string) (Timeframe, error) {
	tf := Timeframe(strings.ToLower(strings.TrimSpace(s)))
	if tf.IsValid() {
		return tf, nil
	}
	return "", fmt.Errorf("%w: %q (expected today, week, month or all)", ErrInvalidTimeframe, s)
}

func (tf Timeframe) IsValid() bool {
	switch tf {
	case Today, Week, Month, All:
		return true
	}
	return false
}

// Label is the human readable name of the window.
func (tf Timeframe) Label() string {
	switch tf {
	case Today:
		return "Today"
	case Week:
		return "Last 7 Days"
	case Month:
		return "Last Month"
	default:
		return "All Time"
	}
}

func (tf Timeframe) String() string { return string(tf) }

// WindowStart returns the first calendar day included in the window ending at
// now. It returns false for All and for unknown timeframes, which do not
// restrict the collection.
//
// Windows are anchored on the calendar day of now: Today reaches back one day,
// Week seven days and Month one calendar month.
func (tf Timeframe) WindowStart(now time.Time) (models.Date, bool) {
	today := models.Today(now)
	switch tf {
	case Today:
		return today.AddDays(-1), true
	case Week:
		return today.AddDays(-7), true
	case Month:
		return today.AddMonths(-1), true
	}
	return models.Date{}, false
}

// FilterByTimeframe keeps the transactions dated on or after the window start,
// in their original order. For All the input slice itself is returned.
func FilterByTimeframe(txs []models.Transaction, tf Timeframe, now time.Time) []models.Transaction {
	start, bounded := tf.WindowStart(now)
	if !bounded {
		return txs
	}
	out := make([]models.Transaction, 0, len(txs))
	for _, tx := range txs {
		if !tx.Date.Before(start) {
			out = append(out, tx)
		}
	}
	return out
}
