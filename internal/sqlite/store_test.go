// Unit tests for store lifecycle: lazy open, retry after failure,
// reset, and migration re-entrancy.
package sqlite

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sinceapp/since/pkg/types"
)

// newTestStore opens a store in a fresh temp dir and closes it when the
// test finishes.
func newTestStore(t *testing.T) *Store {
	t.Helper()
	s := New(t.TempDir())
	require.NoError(t, s.Open())
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpen(t *testing.T) {
	t.Run("open is idempotent", func(t *testing.T) {
		s := newTestStore(t)
		require.NoError(t, s.Open())
		require.NoError(t, s.Open())
	})

	t.Run("concurrent callers share one open", func(t *testing.T) {
		s := New(t.TempDir())
		t.Cleanup(func() { s.Close() })

		var wg sync.WaitGroup
		errs := make([]error, 8)
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				errs[i] = s.Open()
			}(i)
		}
		wg.Wait()

		for _, err := range errs {
			assert.NoError(t, err)
		}
	})

	t.Run("failed open is retried on next call", func(t *testing.T) {
		base := t.TempDir()
		blocked := filepath.Join(base, "data")
		// A regular file where the data dir should be makes MkdirAll fail.
		require.NoError(t, os.WriteFile(blocked, []byte("x"), 0o644))

		s := New(blocked)
		require.Error(t, s.Open())

		// Unblock and retry: the failed open must not be memoized.
		require.NoError(t, os.Remove(blocked))
		require.NoError(t, s.Open())
		t.Cleanup(func() { s.Close() })
	})

	t.Run("entity access opens lazily", func(t *testing.T) {
		s := New(t.TempDir())
		t.Cleanup(func() { s.Close() })

		cats, err := s.Categories()
		require.NoError(t, err)
		assert.Empty(t, cats)
	})
}

func TestClose(t *testing.T) {
	t.Run("close is idempotent", func(t *testing.T) {
		s := New(t.TempDir())
		require.NoError(t, s.Open())
		require.NoError(t, s.Close())
		require.NoError(t, s.Close())
	})
}

func TestReset(t *testing.T) {
	t.Run("reset wipes all data and allows reopen", func(t *testing.T) {
		s := newTestStore(t)

		_, err := s.CreateCategory("Garage", "amber")
		require.NoError(t, err)
		_, err = s.CreateItem("Sweep floor", "")
		require.NoError(t, err)

		require.NoError(t, s.Reset())

		// The next access opens a fresh, empty database.
		cats, err := s.Categories()
		require.NoError(t, err)
		assert.Empty(t, cats)

		items, err := s.Items()
		require.NoError(t, err)
		assert.Empty(t, items)
	})

	t.Run("reset on a never-opened store succeeds", func(t *testing.T) {
		s := New(t.TempDir())
		require.NoError(t, s.Reset())
	})
}

func TestMigrate(t *testing.T) {
	t.Run("reopening a current-version store preserves colors", func(t *testing.T) {
		dir := t.TempDir()

		s := New(dir)
		require.NoError(t, s.Open())
		cat, err := s.CreateCategory("Reading", "violet")
		require.NoError(t, err)
		require.NoError(t, s.Close())

		// Second open runs migrate again; the version already matches,
		// so nothing may rewrite existing data.
		s2 := New(dir)
		require.NoError(t, s2.Open())
		t.Cleanup(func() { s2.Close() })

		cats, err := s2.Categories()
		require.NoError(t, err)
		require.Len(t, cats, 1)
		assert.Equal(t, cat.CategoryID, cats[0].CategoryID)
		assert.Equal(t, "violet", cats[0].Color)
	})

	t.Run("color backfill assigns palette colors once", func(t *testing.T) {
		s := newTestStore(t)
		db, err := s.handle()
		require.NoError(t, err)

		// Rows without a color, as a pre-color-era database would hold.
		defaultName := types.DefaultCategories[0].Name
		_, err = db.Exec(
			`INSERT INTO categories (category_id, name, sort_order, color, created_at)
			 VALUES ('c1', ?, 0, '', 'x'), ('c2', 'Custom thing', 1, '', 'x'), ('c3', 'Kept', 2, 'rose', 'x')`,
			defaultName,
		)
		require.NoError(t, err)

		tx, err := db.Begin()
		require.NoError(t, err)
		require.NoError(t, backfillCategoryColors(tx))
		require.NoError(t, tx.Commit())

		cats, err := s.Categories()
		require.NoError(t, err)
		byID := map[string]string{}
		for _, c := range cats {
			byID[c.CategoryID] = c.Color
		}
		assert.Equal(t, types.DefaultCategories[0].Color, byID["c1"], "default name gets its palette color")
		assert.Equal(t, types.FallbackColor, byID["c2"], "unknown name gets the fallback")
		assert.Equal(t, "rose", byID["c3"], "existing color untouched")
	})
}
