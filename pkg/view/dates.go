package view

import (
	"fmt"
	"time"

	"github.com/sinceapp/since/pkg/types"
)

// daysPerYear is the fixed year length used by Ago. Intentionally not
// leap-aware; "1 year 3 days ago" tolerates the drift.
const daysPerYear = 365

// DiffDays returns the whole-day difference from - to between two
// calendar dates. Each date is normalized to a UTC midnight for the
// same Y/M/D before subtracting, so a daylight-saving transition
// between the two dates cannot produce an off-by-one.
func DiffDays(from, to string) (int, error) {
	a, err := utcDay(from)
	if err != nil {
		return 0, err
	}
	b, err := utcDay(to)
	if err != nil {
		return 0, err
	}
	return int(a - b), nil
}

// DaysSince returns how many days ago date was, relative to now's
// calendar date.
func DaysSince(date string, now time.Time) (int, error) {
	return DiffDays(now.Format(types.DateLayout), date)
}

// utcDay converts a calendar date to a count of days since the Unix
// epoch, anchored at UTC midnight.
func utcDay(date string) (int64, error) {
	t, err := time.Parse(types.DateLayout, date)
	if err != nil {
		return 0, fmt.Errorf("parse date %q: %w", date, err)
	}
	utc := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	return utc.Unix() / (24 * 60 * 60), nil
}

// Ago formats a day count for display: "Today", "Yesterday",
// "N days ago", and beyond a year "Y year(s) D day(s) ago".
func Ago(days int) string {
	switch {
	case days <= 0:
		return "Today"
	case days == 1:
		return "Yesterday"
	case days < daysPerYear:
		return fmt.Sprintf("%d days ago", days)
	}

	years := days / daysPerYear
	rem := days % daysPerYear

	yearWord := "years"
	if years == 1 {
		yearWord = "year"
	}
	dayWord := "days"
	if rem == 1 {
		dayWord = "day"
	}
	if rem == 0 {
		return fmt.Sprintf("%d %s ago", years, yearWord)
	}
	return fmt.Sprintf("%d %s %d %s ago", years, yearWord, rem, dayWord)
}
