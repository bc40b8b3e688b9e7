// Copyright (c) 2025 spnutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/spnutz/your-mood/auth"
	"github.com/spnutz/your-mood/cliparse"
	"github.com/spnutz/your-mood/models"
	"github.com/spnutz/your-mood/moods"
	"github.com/spnutz/your-mood/store"
)

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         8090,
		DatabaseURL:  "file::memory:",
		DatabaseType: "sqlite",
		TokenSecret:  "test-token-secret",
	}
}

// NewTestStore returns a fresh in-memory store
func NewTestStore(t *testing.T) *store.Memory {
	t.Helper()
	return store.NewMemory()
}

// CreateTestUser inserts a user and returns its id and a valid session token
func CreateTestUser(t *testing.T, st store.UserStore, cfg cliparse.Config, email string) (userID, token string) {
	t.Helper()

	hash, err := auth.HashPassword("test-password-1")
	if err != nil {
		t.Fatalf("Failed to hash test password: %v", err)
	}

	userID = auth.NewUserID()
	err = st.InsertUser(context.Background(), models.User{
		ID:           userID,
		Email:        email,
		PasswordHash: hash,
		DisplayName:  "Test User",
		CreatedAt:    time.Now(),
	})
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}

	token, err = auth.NewToken(userID, cfg.TokenSecret)
	if err != nil {
		t.Fatalf("Failed to issue test token: %v", err)
	}

	return userID, token
}

// LogTestMood inserts a mood entry directly into the store
func LogTestMood(t *testing.T, st store.MoodStore, userID, date string, level models.MoodLevel, note string) models.MoodEntry {
	t.Helper()

	e := models.MoodEntry{
		ID:        moods.NewEntryID(),
		UserID:    userID,
		MoodLevel: level,
		Note:      note,
		Date:      date,
		CreatedAt: time.Now(),
	}
	if err := st.InsertMood(context.Background(), e); err != nil {
		t.Fatalf("Failed to insert test mood: %v", err)
	}
	return e
}

// AuthHeaders returns the header map for a Bearer token
func AuthHeaders(token string) map[string]string {
	return map[string]string{"Authorization": "Bearer " + token}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
