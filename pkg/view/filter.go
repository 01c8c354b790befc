package view

import "strings"

// Filter narrows entries by free-text search and then by category.
// The search is a case-insensitive substring match against the item
// title, its resolved category name, and every log note. An empty
// categoryID applies no category filter.
func Filter(entries []Entry, query, categoryID string) []Entry {
	out := entries

	query = strings.ToLower(strings.TrimSpace(query))
	if query != "" {
		matched := make([]Entry, 0, len(out))
		for _, e := range out {
			if matchesQuery(e, query) {
				matched = append(matched, e)
			}
		}
		out = matched
	}

	if categoryID != "" {
		matched := make([]Entry, 0, len(out))
		for _, e := range out {
			if e.Item.CategoryID == categoryID {
				matched = append(matched, e)
			}
		}
		out = matched
	}

	return out
}

func matchesQuery(e Entry, query string) bool {
	if strings.Contains(e.lowerTitle(), query) {
		return true
	}
	if strings.Contains(strings.ToLower(e.CategoryName()), query) {
		return true
	}
	for _, note := range e.Notes {
		if strings.Contains(strings.ToLower(note), query) {
			return true
		}
	}
	return false
}
