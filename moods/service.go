// Copyright (c) 2025 spnutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package moods

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/spnutz/your-mood/dates"
	"github.com/spnutz/your-mood/models"
	"github.com/spnutz/your-mood/store"
)

// ErrInvalidLevel rejects mood levels outside the 1-5 scale.
var ErrInvalidLevel = errors.New("mood level must be between 1 and 5")

// Service implements the mood record operations over an injected store.
type Service struct {
	store store.MoodStore
	now   func() time.Time
}

func NewService(st store.MoodStore) *Service {
	return &Service{store: st, now: time.Now}
}

// NewEntryID returns a fresh mood entry id. ULIDs sort by creation time.
func NewEntryID() string {
	return ulid.Make().String()
}

// TodayKey returns the date key for the current day.
func (s *Service) TodayKey() string {
	return dates.Key(dates.Noon(s.now()))
}

// CreateForToday logs the user's mood for the current day. If an entry
// already exists the call fails with store.ErrDuplicateEntry and nothing
// is written. The existence check and the insert are two store calls, so
// two racing sessions can both pass the check; the store's unique
// (user_id, entry_date) key decides the loser in that case.
func (s *Service) CreateForToday(ctx context.Context, userID string, level models.MoodLevel, note string) (models.MoodEntry, error) {
	if !level.Valid() {
		return models.MoodEntry{}, ErrInvalidLevel
	}

	today := s.TodayKey()
	_, err := s.FetchByDate(ctx, userID, today)
	switch {
	case err == nil:
		return models.MoodEntry{}, store.ErrDuplicateEntry
	case !errors.Is(err, store.ErrNotFound):
		return models.MoodEntry{}, err
	}

	e := models.MoodEntry{
		ID:        NewEntryID(),
		UserID:    userID,
		MoodLevel: level,
		Note:      note,
		Date:      today,
		CreatedAt: s.now(),
	}
	if err := s.store.InsertMood(ctx, e); err != nil {
		return models.MoodEntry{}, err
	}
	return e, nil
}

// UpdateByID rewrites an entry's level and note in place. The uniqueness
// invariant is not re-checked: the update modifies the one permitted
// record for its day rather than creating another.
func (s *Service) UpdateByID(ctx context.Context, id string, level models.MoodLevel, note string) error {
	if !level.Valid() {
		return ErrInvalidLevel
	}
	return s.store.UpdateMood(ctx, id, level, note)
}

// FetchByID returns a single entry by identity.
func (s *Service) FetchByID(ctx context.Context, id string) (models.MoodEntry, error) {
	return s.store.MoodByID(ctx, id)
}

// FetchByDate returns the one entry for (userID, date), or
// store.ErrNotFound. More than one matching record violates the
// one-entry-per-day invariant and fails with store.ErrIntegrityViolation
// rather than silently returning the first match.
func (s *Service) FetchByDate(ctx context.Context, userID, date string) (models.MoodEntry, error) {
	matches, err := s.store.MoodsByDate(ctx, userID, date)
	if err != nil {
		return models.MoodEntry{}, err
	}
	switch len(matches) {
	case 0:
		return models.MoodEntry{}, store.ErrNotFound
	case 1:
		return matches[0], nil
	default:
		return models.MoodEntry{}, fmt.Errorf("%w: %d entries for %s", store.ErrIntegrityViolation, len(matches), date)
	}
}

// FetchByRange returns all entries with date in [start, end] inclusive.
// Order is not guaranteed.
func (s *Service) FetchByRange(ctx context.Context, userID, start, end string) ([]models.MoodEntry, error) {
	return s.store.MoodsByRange(ctx, userID, start, end)
}
