// Copyright (c) 2025 spnutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package moods

import (
	"context"
	"errors"

	"github.com/spnutz/your-mood/models"
)

// EditState is the per-day submission state visible to a client.
type EditState int

const (
	StateUnlogged EditState = iota
	StateLogged
	StateEditing
)

func (s EditState) String() string {
	switch s {
	case StateUnlogged:
		return "unlogged"
	case StateLogged:
		return "logged"
	case StateEditing:
		return "editing"
	default:
		return "unknown"
	}
}

var (
	ErrNoEntry        = errors.New("no mood logged for this day")
	ErrNotEditing     = errors.New("no edit in progress")
	ErrEditInProgress = errors.New("edit already in progress")
)

// EditSession tracks one day's submission state: Unlogged -> Logged ->
// Editing -> Logged. Begin snapshots the entry's level and note so Cancel
// can restore them exactly; Commit persists the working values. There is
// no transition that deletes a logged entry.
type EditSession struct {
	state EditState
	entry models.MoodEntry

	// snapshot taken on Begin, restored on Cancel
	savedLevel models.MoodLevel
	savedNote  string
}

// NewEditSession starts in Unlogged, or Logged when entry is non-nil.
func NewEditSession(entry *models.MoodEntry) *EditSession {
	if entry == nil {
		return &EditSession{state: StateUnlogged}
	}
	return &EditSession{state: StateLogged, entry: *entry}
}

func (s *EditSession) State() EditState {
	return s.state
}

// Entry returns the session's current entry; ok is false in Unlogged.
func (s *EditSession) Entry() (models.MoodEntry, bool) {
	if s.state == StateUnlogged {
		return models.MoodEntry{}, false
	}
	return s.entry, true
}

// Log records a freshly created entry and moves Unlogged -> Logged.
func (s *EditSession) Log(e models.MoodEntry) error {
	if s.state != StateUnlogged {
		return ErrEditInProgress
	}
	s.entry = e
	s.state = StateLogged
	return nil
}

// Begin moves Logged -> Editing, snapshotting the pre-edit values.
func (s *EditSession) Begin() error {
	switch s.state {
	case StateUnlogged:
		return ErrNoEntry
	case StateEditing:
		return ErrEditInProgress
	}
	s.savedLevel = s.entry.MoodLevel
	s.savedNote = s.entry.Note
	s.state = StateEditing
	return nil
}

// Set changes the working level and note while Editing.
func (s *EditSession) Set(level models.MoodLevel, note string) error {
	if s.state != StateEditing {
		return ErrNotEditing
	}
	if !level.Valid() {
		return ErrInvalidLevel
	}
	s.entry.MoodLevel = level
	s.entry.Note = note
	return nil
}

// Cancel abandons the edit, restoring the exact pre-edit level and note.
// No write is performed.
func (s *EditSession) Cancel() error {
	if s.state != StateEditing {
		return ErrNotEditing
	}
	s.entry.MoodLevel = s.savedLevel
	s.entry.Note = s.savedNote
	s.state = StateLogged
	return nil
}

// Commit persists the working values through the service and moves back
// to Logged. On a failed write the session stays in Editing so the caller
// can retry or cancel.
func (s *EditSession) Commit(ctx context.Context, svc *Service) error {
	if s.state != StateEditing {
		return ErrNotEditing
	}
	if err := svc.UpdateByID(ctx, s.entry.ID, s.entry.MoodLevel, s.entry.Note); err != nil {
		return err
	}
	s.state = StateLogged
	return nil
}
