// Unit tests for first-run seeding.
package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sinceapp/since/pkg/types"
)

func TestSeedDefaults(t *testing.T) {
	t.Run("seeds default categories and preferences on empty store", func(t *testing.T) {
		s := newTestStore(t)

		require.NoError(t, s.SeedDefaults())

		cats, err := s.Categories()
		require.NoError(t, err)
		require.Len(t, cats, len(types.DefaultCategories))
		for i, c := range cats {
			assert.Equal(t, types.DefaultCategories[i].Name, c.Name)
			assert.Equal(t, types.DefaultCategories[i].Color, c.Color)
			assert.Equal(t, i, c.SortOrder)
		}

		prefs, err := s.Preferences()
		require.NoError(t, err)
		assert.Equal(t, types.DefaultPreferences(), prefs)
	})

	t.Run("seeding twice does not duplicate", func(t *testing.T) {
		s := newTestStore(t)

		require.NoError(t, s.SeedDefaults())
		require.NoError(t, s.SeedDefaults())

		cats, err := s.Categories()
		require.NoError(t, err)
		assert.Len(t, cats, len(types.DefaultCategories))
	})

	t.Run("does not reseed a store with user categories", func(t *testing.T) {
		s := newTestStore(t)

		_, err := s.CreateCategory("Mine", "rose")
		require.NoError(t, err)

		require.NoError(t, s.SeedDefaults())

		cats, err := s.Categories()
		require.NoError(t, err)
		require.Len(t, cats, 1)
		assert.Equal(t, "Mine", cats[0].Name)
	})

	t.Run("preserves user preferences over defaults", func(t *testing.T) {
		s := newTestStore(t)

		dark := types.ThemeDark
		_, err := s.SetPreferences(types.PreferencesPatch{Theme: &dark})
		require.NoError(t, err)

		require.NoError(t, s.SeedDefaults())

		prefs, err := s.Preferences()
		require.NoError(t, err)
		assert.Equal(t, types.ThemeDark, prefs.Theme)
	})
}
