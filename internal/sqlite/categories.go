// Category collection: CRUD, manual sort order, and reassigning
// cascade on delete.
package sqlite

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/sinceapp/since/pkg/types"
)

// Categories returns all categories ordered by sort order ascending.
// If the ordered query fails (a database that went through a broken
// migration), it falls back to fetching everything and sorting in
// memory.
func (s *Store) Categories() ([]types.Category, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	cats, err := scanCategories(db,
		`SELECT category_id, name, sort_order, color, created_at
		 FROM categories ORDER BY sort_order ASC, name ASC`)
	if err == nil {
		return cats, nil
	}

	cats, ferr := scanCategories(db,
		`SELECT category_id, name, sort_order, color, created_at FROM categories`)
	if ferr != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	sort.SliceStable(cats, func(i, j int) bool {
		if cats[i].SortOrder != cats[j].SortOrder {
			return cats[i].SortOrder < cats[j].SortOrder
		}
		return cats[i].Name < cats[j].Name
	})
	return cats, nil
}

// CreateCategory inserts a category at the end of the manual order:
// sort order is max existing + 1, or 0 for the first category.
func (s *Store) CreateCategory(name, color string) (types.Category, error) {
	if strings.TrimSpace(name) == "" {
		return types.Category{}, types.ErrInvalidName
	}

	db, err := s.handle()
	if err != nil {
		return types.Category{}, err
	}

	var next int
	if err := db.QueryRow(
		`SELECT COALESCE(MAX(sort_order) + 1, 0) FROM categories`,
	).Scan(&next); err != nil {
		return types.Category{}, fmt.Errorf("next sort order: %w", err)
	}

	cat := types.Category{
		CategoryID: newID(),
		Name:       name,
		SortOrder:  next,
		Color:      color,
		CreatedAt:  time.Now().Format(time.RFC3339),
	}
	if _, err := db.Exec(
		`INSERT INTO categories (category_id, name, sort_order, color, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		cat.CategoryID, cat.Name, cat.SortOrder, cat.Color, cat.CreatedAt,
	); err != nil {
		return types.Category{}, fmt.Errorf("insert category: %w", err)
	}
	return cat, nil
}

// UpdateCategory merge-patches the category. A missing id is a silent
// no-op, not an error.
func (s *Store) UpdateCategory(id string, patch types.CategoryPatch) error {
	if id == "" {
		return types.ErrInvalidID
	}

	db, err := s.handle()
	if err != nil {
		return err
	}

	var sets []string
	var args []any
	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Color != nil {
		sets = append(sets, "color = ?")
		args = append(args, *patch.Color)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)

	if _, err := db.Exec(
		"UPDATE categories SET "+strings.Join(sets, ", ")+" WHERE category_id = ?",
		args...,
	); err != nil {
		return fmt.Errorf("update category: %w", err)
	}
	return nil
}

// ReorderCategories rewrites sort order so each listed id gets its
// positional index. Ids not present in the table are skipped silently.
func (s *Store) ReorderCategories(ids []string) error {
	db, err := s.handle()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin reorder: %w", err)
	}
	defer tx.Rollback()

	for i, id := range ids {
		if _, err := tx.Exec(
			`UPDATE categories SET sort_order = ? WHERE category_id = ?`, i, id,
		); err != nil {
			return fmt.Errorf("reorder category %s: %w", id, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit reorder: %w", err)
	}
	return nil
}

// DeleteCategory removes a category. When replacementID is non-empty,
// every item pointing at the deleted category is reassigned to the
// replacement inside the same transaction, so a crash cannot leave
// items dangling on one side of the operation. With an empty
// replacementID the caller is expected to have reassigned beforehand.
func (s *Store) DeleteCategory(id, replacementID string) error {
	if id == "" {
		return types.ErrInvalidID
	}

	db, err := s.handle()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin category delete: %w", err)
	}
	defer tx.Rollback()

	if replacementID != "" {
		if _, err := tx.Exec(
			`UPDATE items SET category_id = ? WHERE category_id = ?`,
			replacementID, id,
		); err != nil {
			return fmt.Errorf("reassign items: %w", err)
		}
	}

	if _, err := tx.Exec(
		`DELETE FROM categories WHERE category_id = ?`, id,
	); err != nil {
		return fmt.Errorf("delete category: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit category delete: %w", err)
	}
	return nil
}

// scanCategories runs a category query and hydrates the rows.
func scanCategories(q querier, query string, args ...any) ([]types.Category, error) {
	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cats := []types.Category{}
	for rows.Next() {
		var c types.Category
		if err := rows.Scan(&c.CategoryID, &c.Name, &c.SortOrder, &c.Color, &c.CreatedAt); err != nil {
			return nil, err
		}
		cats = append(cats, c)
	}
	return cats, rows.Err()
}
