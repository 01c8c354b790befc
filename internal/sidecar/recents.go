package sidecar

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"time"
)

// maxRecentCategories caps the recent-usage list. Older entries fall
// off the end.
const maxRecentCategories = 10

// recentUse is one usage record in the recent-categories slot.
type recentUse struct {
	CategoryID string `json:"id"`
	UsedAt     int64  `json:"ts"` // unix milliseconds
}

// TrackCategoryUse records that a category was just used: any existing
// entry for the id is removed, a fresh record is prepended, and the
// list is truncated to the cap. Persistence failures are logged and
// swallowed — losing this list costs nothing but picker ordering.
func (s *Sidecar) TrackCategoryUse(id string) {
	if id == "" {
		return
	}

	recents := s.loadRecents()

	kept := recents[:0]
	for _, r := range recents {
		if r.CategoryID != id {
			kept = append(kept, r)
		}
	}
	recents = append([]recentUse{{CategoryID: id, UsedAt: time.Now().UnixMilli()}}, kept...)
	if len(recents) > maxRecentCategories {
		recents = recents[:maxRecentCategories]
	}

	if err := s.writeJSON(keyRecents, recents); err != nil {
		fmt.Fprintf(os.Stderr, "sidecar: track category use: %v\n", err)
	}
}

// RecentCategoryIDs returns category ids by most recent use first.
func (s *Sidecar) RecentCategoryIDs() []string {
	recents := s.loadRecents()
	sort.SliceStable(recents, func(i, j int) bool {
		return recents[i].UsedAt > recents[j].UsedAt
	})

	ids := make([]string, 0, len(recents))
	for _, r := range recents {
		ids = append(ids, r.CategoryID)
	}
	return ids
}

// loadRecents reads the slot, treating a missing or corrupt slot as
// empty.
func (s *Sidecar) loadRecents() []recentUse {
	var recents []recentUse
	if err := s.readJSON(keyRecents, &recents); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, "sidecar: load recent categories: %v\n", err)
		}
		return nil
	}
	return recents
}
