package view

import (
	"math"
	"sort"

	"github.com/sinceapp/since/pkg/types"
)

// Stats summarizes the gaps between an item's consecutive completions.
// Zero values for AverageDays and ShortestDays mean "no data" (fewer
// than two logs); renderers show them as a dash.
type Stats struct {
	Total        int `json:"total"`
	AverageDays  int `json:"averageDays"`
	ShortestDays int `json:"shortestDays"`
}

// ComputeStats derives statistics from an item's logs. The input order
// does not matter; entries are sorted by date descending first. With
// two or more logs, the gap in days between each adjacent pair feeds a
// round-half-up average and a minimum.
func ComputeStats(logs []types.LogEntry) Stats {
	stats := Stats{Total: len(logs)}
	if len(logs) < 2 {
		return stats
	}

	sorted := make([]types.LogEntry, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})

	sum := 0
	shortest := math.MaxInt
	count := 0
	for i := 0; i < len(sorted)-1; i++ {
		gap, err := DiffDays(sorted[i].Date, sorted[i+1].Date)
		if err != nil {
			continue // malformed date; skip the pair
		}
		sum += gap
		count++
		if gap < shortest {
			shortest = gap
		}
	}
	if count == 0 {
		return stats
	}

	stats.AverageDays = int(math.Round(float64(sum) / float64(count)))
	stats.ShortestDays = shortest
	return stats
}
