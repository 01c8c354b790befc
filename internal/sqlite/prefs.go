// Preferences: a single-row settings record plus the fast-path theme
// mirror used before the database is open.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/sinceapp/since/pkg/types"
)

// prefsKey is the fixed key of the singleton preferences row.
const prefsKey = "settings"

// Preferences returns the stored settings, or the defaults if nothing
// has been persisted yet.
func (s *Store) Preferences() (types.Preferences, error) {
	db, err := s.handle()
	if err != nil {
		return types.Preferences{}, err
	}

	var p types.Preferences
	err = db.QueryRow(
		`SELECT theme, density FROM prefs WHERE key = ?`, prefsKey,
	).Scan(&p.Theme, &p.Density)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.DefaultPreferences(), nil
		}
		return types.Preferences{}, fmt.Errorf("get preferences: %w", err)
	}
	return p, nil
}

// SetPreferences merge-patches the settings row against the current
// values (or the defaults if absent) and persists the result. A theme
// change is mirrored to the fast cache before the database write, so
// the synchronous read path sees the new theme even when the persist
// path is slow. A mirror failure degrades to a log line.
func (s *Store) SetPreferences(patch types.PreferencesPatch) (types.Preferences, error) {
	current, err := s.Preferences()
	if err != nil {
		return types.Preferences{}, err
	}

	merged := current
	if patch.Theme != nil {
		merged.Theme = *patch.Theme
	}
	if patch.Density != nil {
		merged.Density = *patch.Density
	}

	if patch.Theme != nil {
		s.mu.Lock()
		mirror := s.mirror
		s.mu.Unlock()
		if mirror != nil {
			if err := mirror.SetTheme(merged.Theme); err != nil {
				fmt.Fprintf(os.Stderr, "since: theme mirror: %v\n", err)
			}
		}
	}

	db, err := s.handle()
	if err != nil {
		return types.Preferences{}, err
	}
	if _, err := db.Exec(
		`INSERT INTO prefs (key, theme, density) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET theme = excluded.theme, density = excluded.density`,
		prefsKey, merged.Theme, merged.Density,
	); err != nil {
		return types.Preferences{}, fmt.Errorf("set preferences: %w", err)
	}
	return merged, nil
}
