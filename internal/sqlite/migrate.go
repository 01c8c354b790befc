// Versioned schema migrations. Each step records its version in
// schema_version so a database upgrades from any prior version (including
// a fresh, version-0 file) to the current version in one pass.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"

	"github.com/sinceapp/since/pkg/types"
)

// migration is a single schema step: DDL, a data-migration function, or
// both. Data steps must be idempotent via an explicit precondition, not
// by relying on "already exists" errors.
type migration struct {
	version int
	sql     string
	fn      func(tx *sql.Tx) error
}

// migrations is the ordered step list. Versions are sequential from 1.
var migrations = []migration{
	{
		version: 1,
		sql: `CREATE TABLE IF NOT EXISTS categories (
    category_id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    sort_order INTEGER NOT NULL,
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_categories_sort ON categories(sort_order);`,
	},
	{
		version: 2,
		sql: `CREATE TABLE IF NOT EXISTS items (
    item_id TEXT PRIMARY KEY,
    title TEXT NOT NULL,
    category_id TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_items_category ON items(category_id);`,
	},
	{
		version: 3,
		sql: `CREATE TABLE IF NOT EXISTS logs (
    log_id TEXT PRIMARY KEY,
    item_id TEXT NOT NULL,
    date TEXT NOT NULL,
    note TEXT NOT NULL DEFAULT '',
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_logs_item ON logs(item_id);
CREATE INDEX IF NOT EXISTS idx_logs_date ON logs(date);`,
	},
	{
		version: 4,
		sql: `CREATE TABLE IF NOT EXISTS prefs (
    key TEXT PRIMARY KEY,
    theme TEXT NOT NULL,
    density TEXT NOT NULL
);`,
	},
	{
		version: 5,
		sql: `CREATE INDEX IF NOT EXISTS idx_logs_created ON logs(created_at);
ALTER TABLE categories ADD COLUMN color TEXT NOT NULL DEFAULT '';`,
	},
	{
		version: 6,
		fn:      backfillCategoryColors,
	},
}

// migrate brings db up to the latest migration version.
func migrate(db *sql.DB) error {
	if _, err := db.Exec(
		`CREATE TABLE IF NOT EXISTS schema_version (version INTEGER NOT NULL)`,
	); err != nil {
		return fmt.Errorf("create schema_version: %w", err)
	}

	var current int
	if err := db.QueryRow(
		`SELECT COALESCE(MAX(version), 0) FROM schema_version`,
	).Scan(&current); err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}

	for _, m := range migrations {
		if m.version <= current {
			continue
		}

		tx, err := db.Begin()
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", m.version, err)
		}

		if m.sql != "" {
			if _, err := tx.Exec(m.sql); err != nil {
				tx.Rollback()
				return fmt.Errorf("migration %d: %w", m.version, err)
			}
		}
		if m.fn != nil {
			if err := m.fn(tx); err != nil {
				tx.Rollback()
				return fmt.Errorf("migration %d: %w", m.version, err)
			}
		}

		if _, err := tx.Exec(
			`INSERT INTO schema_version (version) VALUES (?)`, m.version,
		); err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration %d: %w", m.version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", m.version, err)
		}
	}

	return nil
}

// backfillCategoryColors assigns a palette color to every category that
// has none, keyed by the category name's position in the default list.
// The WHERE color = '' guard makes the step run once per affected row;
// categories that already carry a color are left untouched.
func backfillCategoryColors(tx *sql.Tx) error {
	rows, err := tx.Query(`SELECT category_id, name FROM categories WHERE color = ''`)
	if err != nil {
		return fmt.Errorf("query uncolored categories: %w", err)
	}
	defer rows.Close()

	type uncolored struct {
		id   string
		name string
	}
	var pending []uncolored
	for rows.Next() {
		var u uncolored
		if err := rows.Scan(&u.id, &u.name); err != nil {
			return fmt.Errorf("scan uncolored category: %w", err)
		}
		pending = append(pending, u)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate uncolored categories: %w", err)
	}

	for _, u := range pending {
		color := types.PaletteColorFor(u.name)
		if _, err := tx.Exec(
			`UPDATE categories SET color = ? WHERE category_id = ? AND color = ''`,
			color, u.id,
		); err != nil {
			return fmt.Errorf("backfill color for %s: %w", u.id, err)
		}
	}
	return nil
}

// repairSchema recreates any missing table or index. Every statement is
// IF NOT EXISTS, so "already exists" never surfaces; other failures are
// logged and skipped so a broken index cannot take the app down.
func repairSchema(db *sql.DB) {
	for _, ddl := range repairDDL {
		if _, err := db.Exec(ddl); err != nil {
			fmt.Fprintf(os.Stderr, "since: schema repair: %v\n", err)
		}
	}
}
