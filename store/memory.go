// Copyright (c) 2025 spnutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"sync"

	"github.com/spnutz/your-mood/models"
)

// Memory is an in-memory Store for tests. It deliberately mirrors a
// constraint-less document collection: InsertMood does not enforce the
// one-entry-per-day invariant, so tests can seed the duplicate states
// the service layer must detect.
type Memory struct {
	mu    sync.RWMutex
	moods map[string]models.MoodEntry
	users map[string]models.User
}

func NewMemory() *Memory {
	return &Memory{
		moods: make(map[string]models.MoodEntry),
		users: make(map[string]models.User),
	}
}

func (m *Memory) InsertMood(_ context.Context, e models.MoodEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.moods[e.ID] = e
	return nil
}

func (m *Memory) UpdateMood(_ context.Context, id string, level models.MoodLevel, note string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.moods[id]
	if !ok {
		return ErrNotFound
	}
	e.MoodLevel = level
	e.Note = note
	m.moods[id] = e
	return nil
}

func (m *Memory) MoodByID(_ context.Context, id string) (models.MoodEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	e, ok := m.moods[id]
	if !ok {
		return models.MoodEntry{}, ErrNotFound
	}
	return e, nil
}

func (m *Memory) MoodsByDate(_ context.Context, userID, date string) ([]models.MoodEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.MoodEntry{}
	for _, e := range m.moods {
		if e.UserID == userID && e.Date == date {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *Memory) MoodsByRange(_ context.Context, userID, start, end string) ([]models.MoodEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := []models.MoodEntry{}
	for _, e := range m.moods {
		if e.UserID == userID && e.Date >= start && e.Date <= end {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *Memory) InsertUser(_ context.Context, u models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, existing := range m.users {
		if existing.Email == u.Email {
			return ErrEmailTaken
		}
	}
	m.users[u.ID] = u
	return nil
}

func (m *Memory) UserByEmail(_ context.Context, email string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (m *Memory) UserByID(_ context.Context, id string) (models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	u, ok := m.users[id]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return u, nil
}

// MoodCount reports how many entries exist for a user and date. Test
// helper for asserting the uniqueness invariant after writes.
func (m *Memory) MoodCount(userID, date string) int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	n := 0
	for _, e := range m.moods {
		if e.UserID == userID && e.Date == date {
			n++
		}
	}
	return n
}
