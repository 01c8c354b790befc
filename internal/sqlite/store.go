// Package sqlite implements the transactional store for since: four
// related collections (categories, items, logs, prefs) in a single
// SQLite database with versioned schema migrations.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// dbFileName is the SQLite database file inside the data directory.
const dbFileName = "since.db"

// ThemeMirror receives theme changes so they can be read synchronously
// before the database is open. The mirror is advisory; the prefs row in
// the database stays authoritative.
type ThemeMirror interface {
	SetTheme(theme string) error
}

// Store owns the SQLite handle for all entity collections. It is
// constructed by the composition root and opened lazily on first access;
// concurrent callers share a single open attempt. A failed open leaves
// the store closed so the next call retries.
type Store struct {
	mu      sync.Mutex
	dataDir string
	db      *sql.DB
	mirror  ThemeMirror
}

// New creates a Store rooted at dataDir. The database is not opened
// until Open or the first entity operation.
func New(dataDir string) *Store {
	return &Store{dataDir: dataDir}
}

// SetThemeMirror wires the fast-path theme cache. Pass nil to disable
// mirroring.
func (s *Store) SetThemeMirror(m ThemeMirror) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mirror = m
}

// Open opens the database and applies pending migrations. Idempotent:
// an already-open store returns nil immediately.
func (s *Store) Open() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.openLocked()
}

// openLocked performs the actual open. Caller must hold s.mu.
func (s *Store) openLocked() error {
	if s.db != nil {
		return nil
	}

	if err := os.MkdirAll(s.dataDir, 0o755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", s.dbPath())
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}

	if err := migrate(db); err != nil {
		db.Close()
		return fmt.Errorf("migrate: %w", err)
	}

	// Guard against a prior partial migration: recreate anything missing.
	// Failures here are logged, never fatal.
	repairSchema(db)

	s.db = db
	return nil
}

// handle returns the open database, opening it first if needed.
func (s *Store) handle() (*sql.DB, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.openLocked(); err != nil {
		return nil, err
	}
	return s.db, nil
}

// Close releases the database handle. Idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Reset deletes the database file entirely. The store is closed first
// and left closed; the next access opens a fresh database and reruns
// all migrations.
func (s *Store) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		if err := s.db.Close(); err != nil {
			s.db = nil
			return fmt.Errorf("close before reset: %w", err)
		}
		s.db = nil
	}

	for _, suffix := range []string{"", "-wal", "-shm"} {
		path := s.dbPath() + suffix
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("remove %s: %w", filepath.Base(path), err)
		}
	}
	return nil
}

func (s *Store) dbPath() string {
	return filepath.Join(s.dataDir, dbFileName)
}

// querier is the subset of *sql.DB and *sql.Tx the scan helpers need.
type querier interface {
	Query(query string, args ...any) (*sql.Rows, error)
}

// newID generates a UUID v7 entity ID, falling back to v4 if v7
// generation fails.
func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
