package sidecar

import (
	"errors"
	"fmt"
	"os"
)

// Draft is the auto-saved state of the new-item form. Debouncing the
// writes is the caller's concern; the slot is a plain read/write/clear.
type Draft struct {
	Title      string `json:"title"`
	CategoryID string `json:"categoryId"`
}

// SaveDraft persists the draft slot.
func (s *Sidecar) SaveDraft(d Draft) error {
	if err := s.writeJSON(keyDraft, d); err != nil {
		return fmt.Errorf("sidecar: save draft: %w", err)
	}
	return nil
}

// LoadDraft returns the saved draft, or nil when none exists.
func (s *Sidecar) LoadDraft() (*Draft, error) {
	var d Draft
	if err := s.readJSON(keyDraft, &d); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("sidecar: load draft: %w", err)
	}
	return &d, nil
}

// ClearDraft removes the draft slot. Clearing an absent draft is not an
// error.
func (s *Sidecar) ClearDraft() error {
	if !s.d.Has(keyDraft) {
		return nil
	}
	if err := s.d.Erase(keyDraft); err != nil {
		return fmt.Errorf("sidecar: clear draft: %w", err)
	}
	return nil
}
