// Package sidecar holds the auxiliary key-value slots that live outside
// the transactional store: the fast-path theme cache, the recent-category
// usage list, and the new-item draft. Everything here is advisory — a
// lost slot degrades the UI, never the data.
package sidecar

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/peterbourgon/diskv/v3"
)

// Slot keys.
const (
	keyTheme   = "theme"
	keyRecents = "recent-categories"
	keyDraft   = "item-draft"
)

// Sidecar is a flat diskv-backed key-value store.
type Sidecar struct {
	d *diskv.Diskv
}

// New creates a Sidecar rooted at basePath. The directory is created
// lazily on first write.
func New(basePath string) *Sidecar {
	return &Sidecar{d: diskv.New(diskv.Options{
		BasePath:     basePath,
		CacheSizeMax: 64 * 1024,
	})}
}

// Theme returns the mirrored theme value, or "" when none has been
// written. The empty result tells the caller to fall back to the
// default theme.
func (s *Sidecar) Theme() string {
	val, err := s.d.Read(keyTheme)
	if err != nil {
		return ""
	}
	return string(val)
}

// SetTheme writes the theme mirror slot.
func (s *Sidecar) SetTheme(theme string) error {
	if err := s.d.Write(keyTheme, []byte(theme)); err != nil {
		return fmt.Errorf("sidecar: write theme: %w", err)
	}
	return nil
}

// readJSON unmarshals a slot into v. A missing slot returns
// os.ErrNotExist.
func (s *Sidecar) readJSON(key string, v any) error {
	val, err := s.d.Read(key)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return os.ErrNotExist
		}
		return err
	}
	return json.Unmarshal(val, v)
}

// writeJSON marshals v into a slot.
func (s *Sidecar) writeJSON(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.d.Write(key, data)
}
