// Unit tests for the item collection, including the cascading delete
// into logs.
package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sinceapp/since/pkg/types"
)

func TestCreateItem(t *testing.T) {
	t.Run("creates item with generated id and today's date", func(t *testing.T) {
		s := newTestStore(t)

		item, err := s.CreateItem("Change sheets", "")
		require.NoError(t, err)
		assert.NotEmpty(t, item.ItemID)
		assert.Equal(t, types.Today(), item.CreatedAt)
		assert.Empty(t, item.CategoryID)
	})

	t.Run("empty title is rejected", func(t *testing.T) {
		s := newTestStore(t)
		_, err := s.CreateItem("", "")
		assert.ErrorIs(t, err, types.ErrInvalidName)
	})
}

func TestItem(t *testing.T) {
	t.Run("returns ErrNotFound for missing id", func(t *testing.T) {
		s := newTestStore(t)
		_, err := s.Item("missing")
		assert.ErrorIs(t, err, types.ErrNotFound)
	})
}

func TestUpdateItem(t *testing.T) {
	t.Run("patches title and category independently", func(t *testing.T) {
		s := newTestStore(t)

		cat, err := s.CreateCategory("Home", "")
		require.NoError(t, err)
		item, err := s.CreateItem("Vacum", "")
		require.NoError(t, err)

		title := "Vacuum"
		require.NoError(t, s.UpdateItem(item.ItemID, types.ItemPatch{Title: &title}))

		got, err := s.Item(item.ItemID)
		require.NoError(t, err)
		assert.Equal(t, "Vacuum", got.Title)
		assert.Empty(t, got.CategoryID, "category untouched by title patch")

		require.NoError(t, s.UpdateItem(item.ItemID, types.ItemPatch{CategoryID: &cat.CategoryID}))
		got, err = s.Item(item.ItemID)
		require.NoError(t, err)
		assert.Equal(t, cat.CategoryID, got.CategoryID)
		assert.Equal(t, "Vacuum", got.Title, "title untouched by category patch")
	})

	t.Run("missing id is a silent no-op", func(t *testing.T) {
		s := newTestStore(t)
		title := "Ghost"
		assert.NoError(t, s.UpdateItem("no-such-id", types.ItemPatch{Title: &title}))
	})
}

func TestDeleteItem(t *testing.T) {
	t.Run("deletes the item and every dependent log atomically", func(t *testing.T) {
		s := newTestStore(t)

		item, err := s.CreateItem("Descale kettle", "")
		require.NoError(t, err)
		other, err := s.CreateItem("Clean oven", "")
		require.NoError(t, err)

		for _, date := range []string{"2026-01-05", "2026-03-12", "2026-06-30"} {
			_, err := s.AddLog(item.ItemID, date, "")
			require.NoError(t, err)
		}
		kept, err := s.AddLog(other.ItemID, "2026-02-01", "")
		require.NoError(t, err)

		require.NoError(t, s.DeleteItem(item.ItemID))

		logs, err := s.LogsByItem(item.ItemID)
		require.NoError(t, err)
		assert.Empty(t, logs, "cascade removed every dependent log")

		_, err = s.Item(item.ItemID)
		assert.ErrorIs(t, err, types.ErrNotFound)

		otherLogs, err := s.LogsByItem(other.ItemID)
		require.NoError(t, err)
		require.Len(t, otherLogs, 1)
		assert.Equal(t, kept.LogID, otherLogs[0].LogID, "other items' logs untouched")
	})

	t.Run("deleting a missing item is not an error", func(t *testing.T) {
		s := newTestStore(t)
		assert.NoError(t, s.DeleteItem("no-such-id"))
	})
}
