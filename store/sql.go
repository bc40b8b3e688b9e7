// Copyright (c) 2025 spnutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/lib/pq"

	"github.com/spnutz/your-mood/models"
)

// Database type constants, matching cliparse.Config.DatabaseType.
const (
	TypePostgres = "postgres"
	TypeSQLite   = "sqlite"
)

// SQL is a Store backed by database/sql, supporting PostgreSQL (lib/pq)
// and SQLite (modernc.org/sqlite).
type SQL struct {
	db     *sql.DB
	dbType string
}

// NewSQL wraps a database connection. dbType selects placeholder syntax
// and must be TypePostgres or TypeSQLite.
func NewSQL(db *sql.DB, dbType string) *SQL {
	return &SQL{db: db, dbType: dbType}
}

// bind rewrites $N placeholders to ? for the SQLite driver. Queries list
// their arguments in ascending placeholder order, with no reuse.
func (s *SQL) bind(query string) string {
	if s.dbType != TypeSQLite {
		return query
	}
	var b strings.Builder
	b.Grow(len(query))
	for i := 0; i < len(query); i++ {
		if query[i] == '$' && i+1 < len(query) && query[i+1] >= '0' && query[i+1] <= '9' {
			b.WriteByte('?')
			for i+1 < len(query) && query[i+1] >= '0' && query[i+1] <= '9' {
				i++
			}
			continue
		}
		b.WriteByte(query[i])
	}
	return b.String()
}

// isUniqueViolation detects a unique-constraint failure from either driver.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func (s *SQL) InsertMood(ctx context.Context, e models.MoodEntry) error {
	_, err := s.db.ExecContext(ctx, s.bind(`
		INSERT INTO mood_entry (id, user_id, mood_level, note, entry_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`), e.ID, e.UserID, int(e.MoodLevel), e.Note, e.Date, e.CreatedAt)

	if isUniqueViolation(err) {
		return ErrDuplicateEntry
	}
	if err != nil {
		return fmt.Errorf("failed to insert mood entry: %w", err)
	}
	return nil
}

func (s *SQL) UpdateMood(ctx context.Context, id string, level models.MoodLevel, note string) error {
	res, err := s.db.ExecContext(ctx, s.bind(`
		UPDATE mood_entry
		SET mood_level = $1, note = $2
		WHERE id = $3
	`), int(level), note, id)
	if err != nil {
		return fmt.Errorf("failed to update mood entry: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQL) MoodByID(ctx context.Context, id string) (models.MoodEntry, error) {
	var e models.MoodEntry
	var level int
	err := s.db.QueryRowContext(ctx, s.bind(`
		SELECT id, user_id, mood_level, note, entry_date, created_at
		FROM mood_entry
		WHERE id = $1
	`), id).Scan(&e.ID, &e.UserID, &level, &e.Note, &e.Date, &e.CreatedAt)

	if err == sql.ErrNoRows {
		return models.MoodEntry{}, ErrNotFound
	}
	if err != nil {
		return models.MoodEntry{}, fmt.Errorf("failed to query mood entry: %w", err)
	}
	e.MoodLevel = models.MoodLevel(level)
	return e, nil
}

func (s *SQL) MoodsByDate(ctx context.Context, userID, date string) ([]models.MoodEntry, error) {
	return s.queryMoods(ctx, `
		SELECT id, user_id, mood_level, note, entry_date, created_at
		FROM mood_entry
		WHERE user_id = $1 AND entry_date = $2
	`, userID, date)
}

func (s *SQL) MoodsByRange(ctx context.Context, userID, start, end string) ([]models.MoodEntry, error) {
	// Date keys sort lexicographically, so TEXT comparison is a range scan.
	return s.queryMoods(ctx, `
		SELECT id, user_id, mood_level, note, entry_date, created_at
		FROM mood_entry
		WHERE user_id = $1 AND entry_date >= $2 AND entry_date <= $3
	`, userID, start, end)
}

func (s *SQL) queryMoods(ctx context.Context, query string, args ...any) ([]models.MoodEntry, error) {
	rows, err := s.db.QueryContext(ctx, s.bind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query mood entries: %w", err)
	}
	defer rows.Close()

	moods := []models.MoodEntry{}
	for rows.Next() {
		var e models.MoodEntry
		var level int
		if err := rows.Scan(&e.ID, &e.UserID, &level, &e.Note, &e.Date, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan mood entry: %w", err)
		}
		e.MoodLevel = models.MoodLevel(level)
		moods = append(moods, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read mood entries: %w", err)
	}
	return moods, nil
}

func (s *SQL) InsertUser(ctx context.Context, u models.User) error {
	_, err := s.db.ExecContext(ctx, s.bind(`
		INSERT INTO app_user (id, email, password_hash, display_name, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`), u.ID, u.Email, u.PasswordHash, u.DisplayName, u.CreatedAt)

	if isUniqueViolation(err) {
		return ErrEmailTaken
	}
	if err != nil {
		return fmt.Errorf("failed to insert user: %w", err)
	}
	return nil
}

func (s *SQL) UserByEmail(ctx context.Context, email string) (models.User, error) {
	return s.queryUser(ctx, `
		SELECT id, email, password_hash, display_name, created_at
		FROM app_user
		WHERE email = $1
	`, email)
}

func (s *SQL) UserByID(ctx context.Context, id string) (models.User, error) {
	return s.queryUser(ctx, `
		SELECT id, email, password_hash, display_name, created_at
		FROM app_user
		WHERE id = $1
	`, id)
}

func (s *SQL) queryUser(ctx context.Context, query string, arg any) (models.User, error) {
	var u models.User
	err := s.db.QueryRowContext(ctx, s.bind(query), arg).Scan(
		&u.ID, &u.Email, &u.PasswordHash, &u.DisplayName, &u.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return models.User{}, ErrNotFound
	}
	if err != nil {
		return models.User{}, fmt.Errorf("failed to query user: %w", err)
	}
	return u, nil
}
