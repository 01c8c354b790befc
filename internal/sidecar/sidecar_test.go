package sidecar

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSidecar(t *testing.T) *Sidecar {
	t.Helper()
	return New(t.TempDir())
}

func TestTheme(t *testing.T) {
	s := newTestSidecar(t)

	assert.Equal(t, "", s.Theme(), "missing slot reads as empty")

	require.NoError(t, s.SetTheme("dark"))
	assert.Equal(t, "dark", s.Theme())

	require.NoError(t, s.SetTheme("light"))
	assert.Equal(t, "light", s.Theme())
}

func TestThemeSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	require.NoError(t, New(dir).SetTheme("dark"))
	assert.Equal(t, "dark", New(dir).Theme())
}

func TestTrackCategoryUse(t *testing.T) {
	t.Run("most recent first", func(t *testing.T) {
		s := newTestSidecar(t)
		s.TrackCategoryUse("a")
		s.TrackCategoryUse("b")
		s.TrackCategoryUse("c")

		assert.Equal(t, []string{"c", "b", "a"}, s.RecentCategoryIDs())
	})

	t.Run("reuse moves to front without duplicating", func(t *testing.T) {
		s := newTestSidecar(t)
		s.TrackCategoryUse("a")
		s.TrackCategoryUse("b")
		s.TrackCategoryUse("a")

		assert.Equal(t, []string{"a", "b"}, s.RecentCategoryIDs())
	})

	t.Run("capped at ten", func(t *testing.T) {
		s := newTestSidecar(t)
		for i := 0; i < 15; i++ {
			s.TrackCategoryUse(fmt.Sprintf("cat-%02d", i))
		}

		ids := s.RecentCategoryIDs()
		require.Len(t, ids, maxRecentCategories)
		assert.Equal(t, "cat-14", ids[0])
		assert.Equal(t, "cat-05", ids[len(ids)-1])
	})

	t.Run("empty id ignored", func(t *testing.T) {
		s := newTestSidecar(t)
		s.TrackCategoryUse("")

		assert.Empty(t, s.RecentCategoryIDs())
	})
}

func TestDraft(t *testing.T) {
	s := newTestSidecar(t)

	d, err := s.LoadDraft()
	require.NoError(t, err)
	assert.Nil(t, d, "no draft saved yet")

	require.NoError(t, s.SaveDraft(Draft{Title: "Water plants", CategoryID: "cat-home"}))

	d, err = s.LoadDraft()
	require.NoError(t, err)
	require.NotNil(t, d)
	assert.Equal(t, "Water plants", d.Title)
	assert.Equal(t, "cat-home", d.CategoryID)

	require.NoError(t, s.ClearDraft())

	d, err = s.LoadDraft()
	require.NoError(t, err)
	assert.Nil(t, d)

	// Clearing again is fine.
	require.NoError(t, s.ClearDraft())
}
