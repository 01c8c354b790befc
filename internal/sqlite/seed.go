// First-run seeding of default categories and preferences.
package sqlite

import (
	"fmt"
	"time"

	"github.com/sinceapp/since/pkg/types"
)

// SeedDefaults inserts the default categories when the category
// collection is empty and the default preferences when no settings row
// exists. Safe to call on every start: a seeded database is a no-op.
func (s *Store) SeedDefaults() error {
	db, err := s.handle()
	if err != nil {
		return err
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM categories`).Scan(&count); err != nil {
		return fmt.Errorf("count categories: %w", err)
	}

	if count == 0 {
		now := time.Now().Format(time.RFC3339)

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin seed: %w", err)
		}
		defer tx.Rollback()

		for i, dc := range types.DefaultCategories {
			if _, err := tx.Exec(
				`INSERT INTO categories (category_id, name, sort_order, color, created_at)
				 VALUES (?, ?, ?, ?, ?)`,
				newID(), dc.Name, i, dc.Color, now,
			); err != nil {
				return fmt.Errorf("seed category %s: %w", dc.Name, err)
			}
		}

		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit seed: %w", err)
		}
	}

	defaults := types.DefaultPreferences()
	if _, err := db.Exec(
		`INSERT OR IGNORE INTO prefs (key, theme, density) VALUES (?, ?, ?)`,
		prefsKey, defaults.Theme, defaults.Density,
	); err != nil {
		return fmt.Errorf("seed preferences: %w", err)
	}

	return nil
}
