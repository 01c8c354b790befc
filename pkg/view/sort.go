package view

import (
	"fmt"
	"sort"
)

// SortMode selects the list ordering.
type SortMode string

const (
	SortRecentlyDone SortMode = "recently-done"
	SortOldestFirst  SortMode = "oldest-first"
	SortAlphabetical SortMode = "alphabetical"
	SortNeverDone    SortMode = "never-done"
)

// SortModes lists the recognized modes for CLI help and validation.
var SortModes = []SortMode{
	SortRecentlyDone,
	SortOldestFirst,
	SortAlphabetical,
	SortNeverDone,
}

// ParseSortMode validates a mode string.
func ParseSortMode(s string) (SortMode, error) {
	for _, m := range SortModes {
		if s == string(m) {
			return m, nil
		}
	}
	return "", fmt.Errorf("unknown sort mode %q (valid: recently-done, oldest-first, alphabetical, never-done)", s)
}

// Sort orders entries in place. "Never done" is an extreme value: it
// loses to any logged item in every mode except never-done, where the
// grouping inverts.
func Sort(entries []Entry, mode SortMode) {
	var less func(a, b Entry) bool

	switch mode {
	case SortOldestFirst:
		less = func(a, b Entry) bool {
			if (a.Last == nil) != (b.Last == nil) {
				return a.Last != nil // logged items first
			}
			if a.Last == nil {
				return a.lowerTitle() < b.lowerTitle()
			}
			if a.Last.Date != b.Last.Date {
				return a.Last.Date < b.Last.Date
			}
			return a.lowerTitle() < b.lowerTitle()
		}

	case SortAlphabetical:
		less = func(a, b Entry) bool {
			if at, bt := a.lowerTitle(), b.lowerTitle(); at != bt {
				return at < bt
			}
			// Identical titles: logged before never-logged, then
			// newer last-log first.
			if (a.Last == nil) != (b.Last == nil) {
				return a.Last != nil
			}
			if a.Last == nil {
				return false
			}
			return a.Last.Date > b.Last.Date
		}

	case SortNeverDone:
		less = func(a, b Entry) bool {
			if (a.Last == nil) != (b.Last == nil) {
				return a.Last == nil // never-done items first
			}
			if a.Last == nil {
				return a.lowerTitle() < b.lowerTitle()
			}
			if a.Last.Date != b.Last.Date {
				return a.Last.Date > b.Last.Date
			}
			return a.lowerTitle() < b.lowerTitle()
		}

	default: // SortRecentlyDone
		less = func(a, b Entry) bool {
			if (a.Last == nil) != (b.Last == nil) {
				return a.Last != nil
			}
			if a.Last == nil {
				return a.lowerTitle() < b.lowerTitle()
			}
			if a.Last.Date != b.Last.Date {
				return a.Last.Date > b.Last.Date
			}
			return a.lowerTitle() < b.lowerTitle()
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return less(entries[i], entries[j])
	})
}
