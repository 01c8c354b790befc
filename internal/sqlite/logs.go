// Log collection: completion events per item, queried newest-first.
package sqlite

import (
	"fmt"
	"strings"
	"time"

	"github.com/sinceapp/since/pkg/types"
)

// LogsByItem returns every log entry for the item, newest date first.
// Entries on the same date break the tie by insertion order (created_at
// descending).
func (s *Store) LogsByItem(itemID string) ([]types.LogEntry, error) {
	if itemID == "" {
		return nil, types.ErrInvalidID
	}

	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(
		`SELECT log_id, item_id, date, note, created_at FROM logs
		 WHERE item_id = ? ORDER BY date DESC, created_at DESC`,
		itemID,
	)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	defer rows.Close()

	logs := []types.LogEntry{}
	for rows.Next() {
		var l types.LogEntry
		if err := rows.Scan(&l.LogID, &l.ItemID, &l.Date, &l.Note, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan log: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// AddLog records a completion for the item on the given date. Duplicate
// same-date entries are allowed.
func (s *Store) AddLog(itemID, date, note string) (types.LogEntry, error) {
	if itemID == "" {
		return types.LogEntry{}, types.ErrInvalidID
	}
	if !types.ValidDate(date) {
		return types.LogEntry{}, types.ErrInvalidDate
	}

	db, err := s.handle()
	if err != nil {
		return types.LogEntry{}, err
	}

	l := types.LogEntry{
		LogID:     newID(),
		ItemID:    itemID,
		Date:      date,
		Note:      note,
		CreatedAt: time.Now().Format(time.RFC3339Nano),
	}
	if _, err := db.Exec(
		`INSERT INTO logs (log_id, item_id, date, note, created_at) VALUES (?, ?, ?, ?, ?)`,
		l.LogID, l.ItemID, l.Date, l.Note, l.CreatedAt,
	); err != nil {
		return types.LogEntry{}, fmt.Errorf("insert log: %w", err)
	}
	return l, nil
}

// UpdateLog merge-patches a log entry. A missing id is a silent no-op.
func (s *Store) UpdateLog(id string, patch types.LogPatch) error {
	if id == "" {
		return types.ErrInvalidID
	}
	if patch.Date != nil && !types.ValidDate(*patch.Date) {
		return types.ErrInvalidDate
	}

	db, err := s.handle()
	if err != nil {
		return err
	}

	var sets []string
	var args []any
	if patch.Date != nil {
		sets = append(sets, "date = ?")
		args = append(args, *patch.Date)
	}
	if patch.Note != nil {
		sets = append(sets, "note = ?")
		args = append(args, *patch.Note)
	}
	if len(sets) == 0 {
		return nil
	}
	args = append(args, id)

	if _, err := db.Exec(
		"UPDATE logs SET "+strings.Join(sets, ", ")+" WHERE log_id = ?",
		args...,
	); err != nil {
		return fmt.Errorf("update log: %w", err)
	}
	return nil
}

// DeleteLog removes a single log entry. Deleting an id that does not
// exist is not an error.
func (s *Store) DeleteLog(id string) error {
	if id == "" {
		return types.ErrInvalidID
	}

	db, err := s.handle()
	if err != nil {
		return err
	}

	if _, err := db.Exec(`DELETE FROM logs WHERE log_id = ?`, id); err != nil {
		return fmt.Errorf("delete log: %w", err)
	}
	return nil
}

// LastLog returns the entry with the maximum date for the item, or nil
// when the item has never been logged.
func (s *Store) LastLog(itemID string) (*types.LogEntry, error) {
	logs, err := s.LogsByItem(itemID)
	if err != nil {
		return nil, err
	}
	if len(logs) == 0 {
		return nil, nil
	}
	return &logs[0], nil
}
