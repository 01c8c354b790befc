// Integration tests for the full tracker lifecycle: open, seed, create
// categories and items, log completions, derive the list view, update
// preferences with the sidecar mirror, and reset.
package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sinceapp/since/internal/sidecar"
	"github.com/sinceapp/since/internal/sqlite"
	"github.com/sinceapp/since/pkg/types"
	"github.com/sinceapp/since/pkg/view"
)

// newStoreWithSidecar wires a store and sidecar in one data directory,
// the way the CLI composes them.
func newStoreWithSidecar(t *testing.T, dataDir string) (*sqlite.Store, *sidecar.Sidecar) {
	t.Helper()
	side := sidecar.New(dataDir + "/sidecar")
	store := sqlite.New(dataDir)
	store.SetThemeMirror(side)
	require.NoError(t, store.Open())
	t.Cleanup(func() { store.Close() })
	return store, side
}

func TestLifecycle_TrackAndList(t *testing.T) {
	store, _ := newStoreWithSidecar(t, t.TempDir())
	require.NoError(t, store.SeedDefaults())

	categories, err := store.Categories()
	require.NoError(t, err)
	require.Len(t, categories, len(types.DefaultCategories))

	var health types.Category
	for _, c := range categories {
		if c.Name == "Health" {
			health = c
		}
	}
	require.NotEmpty(t, health.CategoryID)

	dentist, err := store.CreateItem("Dentist visit", health.CategoryID)
	require.NoError(t, err)
	plants, err := store.CreateItem("Water the plants", "")
	require.NoError(t, err)

	_, err = store.AddLog(dentist.ItemID, "2024-01-02", "")
	require.NoError(t, err)
	_, err = store.AddLog(plants.ItemID, "2024-01-05", "front room only")
	require.NoError(t, err)

	items, err := store.Items()
	require.NoError(t, err)
	require.Len(t, items, 2)

	lastByItem := make(map[string]*types.LogEntry)
	notesByItem := make(map[string][]string)
	for _, it := range items {
		last, err := store.LastLog(it.ItemID)
		require.NoError(t, err)
		lastByItem[it.ItemID] = last
		logs, err := store.LogsByItem(it.ItemID)
		require.NoError(t, err)
		for _, l := range logs {
			if l.Note != "" {
				notesByItem[it.ItemID] = append(notesByItem[it.ItemID], l.Note)
			}
		}
	}

	entries := view.Join(items, categories, lastByItem, notesByItem)
	view.Sort(entries, view.SortRecentlyDone)

	require.Len(t, entries, 2)
	assert.Equal(t, "Water the plants", entries[0].Item.Title)
	assert.Equal(t, view.Uncategorized, entries[0].CategoryName())
	assert.Equal(t, "Dentist visit", entries[1].Item.Title)
	assert.Equal(t, "Health", entries[1].CategoryName())

	found := view.Filter(entries, "front room", "")
	require.Len(t, found, 1)
	assert.Equal(t, "Water the plants", found[0].Item.Title)
}

func TestLifecycle_StatisticsAfterRepeatedLogs(t *testing.T) {
	store, _ := newStoreWithSidecar(t, t.TempDir())

	item, err := store.CreateItem("Change air filter", "")
	require.NoError(t, err)

	for _, date := range []string{"2024-01-01", "2024-01-05", "2024-01-10"} {
		_, err = store.AddLog(item.ItemID, date, "")
		require.NoError(t, err)
	}

	logs, err := store.LogsByItem(item.ItemID)
	require.NoError(t, err)

	stats := view.ComputeStats(logs)
	assert.Equal(t, view.Stats{Total: 3, AverageDays: 5, ShortestDays: 4}, stats)
}

func TestLifecycle_UndoLastCompletion(t *testing.T) {
	store, _ := newStoreWithSidecar(t, t.TempDir())

	item, err := store.CreateItem("Backup laptop", "")
	require.NoError(t, err)
	_, err = store.AddLog(item.ItemID, "2024-02-10", "")
	require.NoError(t, err)
	_, err = store.AddLog(item.ItemID, "2024-03-05", "")
	require.NoError(t, err)

	last, err := store.LastLog(item.ItemID)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, "2024-03-05", last.Date)

	require.NoError(t, store.DeleteLog(last.LogID))

	last, err = store.LastLog(item.ItemID)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, "2024-02-10", last.Date)
}

func TestLifecycle_ThemeMirroredToSidecar(t *testing.T) {
	store, side := newStoreWithSidecar(t, t.TempDir())

	theme := types.ThemeDark
	_, err := store.SetPreferences(types.PreferencesPatch{Theme: &theme})
	require.NoError(t, err)

	assert.Equal(t, types.ThemeDark, side.Theme())

	prefs, err := store.Preferences()
	require.NoError(t, err)
	assert.Equal(t, types.ThemeDark, prefs.Theme)
}

func TestLifecycle_PersistAcrossReopen(t *testing.T) {
	dataDir := t.TempDir()

	store1 := sqlite.New(dataDir)
	require.NoError(t, store1.Open())
	item, err := store1.CreateItem("Descale kettle", "")
	require.NoError(t, err)
	_, err = store1.AddLog(item.ItemID, "2024-04-01", "")
	require.NoError(t, err)
	require.NoError(t, store1.Close())

	store2 := sqlite.New(dataDir)
	require.NoError(t, store2.Open())
	defer store2.Close()

	got, err := store2.Item(item.ItemID)
	require.NoError(t, err)
	assert.Equal(t, "Descale kettle", got.Title)

	last, err := store2.LastLog(item.ItemID)
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, "2024-04-01", last.Date)
}

func TestLifecycle_ResetWipesEverything(t *testing.T) {
	dataDir := t.TempDir()
	store, _ := newStoreWithSidecar(t, dataDir)
	require.NoError(t, store.SeedDefaults())

	item, err := store.CreateItem("Rotate passwords", "")
	require.NoError(t, err)
	_, err = store.AddLog(item.ItemID, "2024-05-01", "")
	require.NoError(t, err)

	require.NoError(t, store.Reset())

	// A fresh store over the same directory starts empty.
	fresh := sqlite.New(dataDir)
	require.NoError(t, fresh.Open())
	defer fresh.Close()

	items, err := fresh.Items()
	require.NoError(t, err)
	assert.Empty(t, items)

	categories, err := fresh.Categories()
	require.NoError(t, err)
	assert.Empty(t, categories)
}
