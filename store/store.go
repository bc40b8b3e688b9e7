// Copyright (c) 2025 spnutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"errors"

	"github.com/spnutz/your-mood/models"
)

var (
	// ErrNotFound means no record matched the lookup.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEntry means a mood entry already exists for the
	// user and date. Not retryable; the correct action is to edit.
	ErrDuplicateEntry = errors.New("mood already logged for this date")

	// ErrIntegrityViolation means the store holds more than one entry
	// for a user and date. Surfaced distinctly from not-found and never
	// resolved by picking an arbitrary record.
	ErrIntegrityViolation = errors.New("multiple mood entries for one date")

	// ErrEmailTaken means the email is already registered.
	ErrEmailTaken = errors.New("email already registered")
)

// MoodStore persists mood entries. Date arguments are "YYYY-MM-DD" keys;
// range queries are inclusive on both ends and return entries in no
// guaranteed order.
type MoodStore interface {
	InsertMood(ctx context.Context, e models.MoodEntry) error
	UpdateMood(ctx context.Context, id string, level models.MoodLevel, note string) error
	MoodByID(ctx context.Context, id string) (models.MoodEntry, error)
	MoodsByDate(ctx context.Context, userID, date string) ([]models.MoodEntry, error)
	MoodsByRange(ctx context.Context, userID, start, end string) ([]models.MoodEntry, error)
}

// UserStore persists user accounts.
type UserStore interface {
	InsertUser(ctx context.Context, u models.User) error
	UserByEmail(ctx context.Context, email string) (models.User, error)
	UserByID(ctx context.Context, id string) (models.User, error)
}

// Store is the full persistence surface handed to the router.
type Store interface {
	MoodStore
	UserStore
}
