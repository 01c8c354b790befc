package types

import "time"

// DateLayout is the calendar-date format used for item creation dates and
// log entry dates. The zero-padded form sorts correctly as a plain string.
const DateLayout = "2006-01-02"

// Today returns the current calendar date in the local time zone.
func Today() string {
	return time.Now().Format(DateLayout)
}

// ValidDate reports whether s is a well-formed YYYY-MM-DD calendar date.
func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil
}
