// Package view computes the derived read model over store snapshots:
// sort/filter/search composition of items joined with their most recent
// log, interval statistics, and display formatting. Everything here is
// a pure function; the store is never touched.
package view

import (
	"strings"

	"github.com/sinceapp/since/pkg/types"
)

// Uncategorized is the display name for items whose category is empty
// or no longer resolves.
const Uncategorized = "Uncategorized"

// Entry is one item joined with its resolved category, most recent log,
// and log notes (the notes feed the search filter).
type Entry struct {
	Item     types.Item
	Category *types.Category
	Last     *types.LogEntry
	Notes    []string
}

// CategoryName resolves the entry's category for display. A dangling or
// empty category id resolves to Uncategorized.
func (e Entry) CategoryName() string {
	if e.Category == nil || e.Category.Name == "" {
		return Uncategorized
	}
	return e.Category.Name
}

// LastDate returns the most recent log date, or "" when the item has
// never been done.
func (e Entry) LastDate() string {
	if e.Last == nil {
		return ""
	}
	return e.Last.Date
}

// Join builds entries from store snapshots, resolving each item's
// category and attaching its last log and note texts.
func Join(items []types.Item, categories []types.Category, lastByItem map[string]*types.LogEntry, notesByItem map[string][]string) []Entry {
	byID := make(map[string]*types.Category, len(categories))
	for i := range categories {
		byID[categories[i].CategoryID] = &categories[i]
	}

	entries := make([]Entry, 0, len(items))
	for _, it := range items {
		entries = append(entries, Entry{
			Item:     it,
			Category: byID[it.CategoryID],
			Last:     lastByItem[it.ItemID],
			Notes:    notesByItem[it.ItemID],
		})
	}
	return entries
}

// lowerTitle is the case-folded title used for alphabetical ordering.
func (e Entry) lowerTitle() string {
	return strings.ToLower(e.Item.Title)
}
