// Copyright (c) 2025 spnutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS. The DDL sticks to
// the dialect subset PostgreSQL and SQLite share, so one schema serves
// both drivers.
func CreateSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

const schema = `
-- Users
CREATE TABLE IF NOT EXISTS app_user (
    id TEXT PRIMARY KEY,
    email TEXT NOT NULL UNIQUE,
    password_hash TEXT NOT NULL,
    display_name TEXT NOT NULL DEFAULT '',
    created_at TIMESTAMP NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_app_user_email ON app_user(email);

-- Mood entries: one per user per calendar day.
-- The composite unique key is the authoritative guard for the
-- one-entry-per-day rule; the service-level existence check alone
-- cannot close the check-then-write race between sessions.
CREATE TABLE IF NOT EXISTS mood_entry (
    id TEXT PRIMARY KEY,
    user_id TEXT NOT NULL REFERENCES app_user(id) ON DELETE CASCADE,
    mood_level INTEGER NOT NULL CHECK (mood_level BETWEEN 1 AND 5),
    note TEXT NOT NULL DEFAULT '',
    entry_date TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    UNIQUE (user_id, entry_date)
);

CREATE INDEX IF NOT EXISTS idx_mood_entry_user_date ON mood_entry(user_id, entry_date);
`
