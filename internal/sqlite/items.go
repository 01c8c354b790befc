// Item collection: CRUD with a cascading delete into the logs
// collection.
package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/sinceapp/since/pkg/types"
)

// Items returns every item. No order is applied; display ordering is
// the derived-view layer's responsibility.
func (s *Store) Items() ([]types.Item, error) {
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT item_id, title, category_id, created_at FROM items`)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	items := []types.Item{}
	for rows.Next() {
		var it types.Item
		if err := rows.Scan(&it.ItemID, &it.Title, &it.CategoryID, &it.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

// Item retrieves a single item by id. Returns ErrNotFound if absent.
func (s *Store) Item(id string) (*types.Item, error) {
	if id == "" {
		return nil, types.ErrInvalidID
	}

	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	var it types.Item
	err = db.QueryRow(
		`SELECT item_id, title, category_id, created_at FROM items WHERE item_id = ?`,
		id,
	).Scan(&it.ItemID, &it.Title, &it.CategoryID, &it.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, types.ErrNotFound
		}
		return nil, fmt.Errorf("get item %s: %w", id, err)
	}
	return &it, nil
}

// CreateItem inserts an item with a generated id and today's calendar
// date. An empty categoryID means "no category".
func (s *Store) CreateItem(title, categoryID string) (types.Item, error) {
	if strings.TrimSpace(title) == "" {
		return types.Item{}, types.ErrInvalidName
	}

	db, err := s.handle()
	if err != nil {
		return types.Item{}, err
	}

	it := types.Item{
		ItemID:     newID(),
		Title:      title,
		CategoryID: categoryID,
		CreatedAt:  types.Today(),
	}
	if _, err := db.Exec(
		`INSERT INTO items (item_id, title, category_id, created_at) VALUES (?, ?, ?, ?)`,
		it.ItemID, it.Title, it.CategoryID, it.CreatedAt,
	); err != nil {
		return types.Item{}, fmt.Errorf("insert item: %w", err)
	}
	return it, nil
}

// UpdateItem merge-patches the item. A missing id is a silent no-op.
func (s *Store) UpdateItem(id string, patch types.ItemPatch) error {
	if id == "" {
		return types.ErrInvalidID
	}

	db, err := s.handle()
	if err != nil {
		return err
	}

	var sets []string
	var args []any
	if patch.Title != nil {
		sets = append(sets, "title = ?")
		args = append(args, *patch.Title)
	}
	if patch.CategoryID != nil {
		sets = append(sets, "category_id = ?")
		args = append(args, *patch.CategoryID)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)

	if _, err := db.Exec(
		"UPDATE items SET "+strings.Join(sets, ", ")+" WHERE item_id = ?",
		args...,
	); err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	return nil
}

// DeleteItem removes an item and every log entry referencing it in a
// single transaction: both commit together or neither does.
func (s *Store) DeleteItem(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}

	db, err := s.handle()
	if err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin item delete: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM logs WHERE item_id = ?`, id); err != nil {
		return fmt.Errorf("delete item logs: %w", err)
	}
	if _, err := tx.Exec(`DELETE FROM items WHERE item_id = ?`, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit item delete: %w", err)
	}
	return nil
}
