// Copyright (c) 2025 spnutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"errors"
	"testing"

	"github.com/lib/pq"
)

func TestBind(t *testing.T) {
	tests := []struct {
		name   string
		dbType string
		query  string
		want   string
	}{
		{
			name:   "postgres passes through",
			dbType: TypePostgres,
			query:  "SELECT * FROM mood_entry WHERE id = $1",
			want:   "SELECT * FROM mood_entry WHERE id = $1",
		},
		{
			name:   "sqlite single placeholder",
			dbType: TypeSQLite,
			query:  "SELECT * FROM mood_entry WHERE id = $1",
			want:   "SELECT * FROM mood_entry WHERE id = ?",
		},
		{
			name:   "sqlite multiple placeholders",
			dbType: TypeSQLite,
			query:  "INSERT INTO mood_entry (a, b, c) VALUES ($1, $2, $3)",
			want:   "INSERT INTO mood_entry (a, b, c) VALUES (?, ?, ?)",
		},
		{
			name:   "sqlite two digit placeholder",
			dbType: TypeSQLite,
			query:  "UPDATE t SET a = $9, b = $10, c = $11",
			want:   "UPDATE t SET a = ?, b = ?, c = ?",
		},
		{
			name:   "sqlite dollar without digit untouched",
			dbType: TypeSQLite,
			query:  "SELECT '$' FROM t WHERE a = $1",
			want:   "SELECT '$' FROM t WHERE a = ?",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSQL(nil, tt.dbType)
			if got := s.bind(tt.query); got != tt.want {
				t.Errorf("bind() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestIsUniqueViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"postgres unique", &pq.Error{Code: "23505"}, true},
		{"postgres other", &pq.Error{Code: "23503"}, false},
		{"sqlite unique", errors.New("constraint failed: UNIQUE constraint failed: mood_entry.user_id, mood_entry.entry_date (2067)"), true},
		{"unrelated", errors.New("connection refused"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isUniqueViolation(tt.err); got != tt.want {
				t.Errorf("isUniqueViolation(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
