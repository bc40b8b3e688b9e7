// Copyright (c) 2025 spnutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spnutz/your-mood/models"
	"github.com/spnutz/your-mood/moods"
	"github.com/spnutz/your-mood/store"
	"github.com/spnutz/your-mood/testutil"
)

func calendarFixture(t *testing.T) (*store.Memory, *CalendarHandler, string, string) {
	t.Helper()
	st := testutil.NewTestStore(t)
	cfg := testutil.GetTestConfig()
	userID, token := testutil.CreateTestUser(t, st, cfg, "cal@example.com")
	return st, NewCalendarHandler(moods.NewService(st)), userID, token
}

func TestCalendarWeek(t *testing.T) {
	st, h, userID, token := calendarFixture(t)
	// 2024-06-05 is a Wednesday; its week is Mon 06-03 through Sun 06-09
	testutil.LogTestMood(t, st, userID, "2024-06-03", models.MoodHappy, "")
	testutil.LogTestMood(t, st, userID, "2024-06-07", models.MoodSad, "rough")
	// Outside the week, must not appear
	testutil.LogTestMood(t, st, userID, "2024-06-10", models.MoodNeutral, "")

	req := testutil.MakeRequest("GET", "/calendar/week?date=2024-06-05", nil, testutil.AuthHeaders(token))
	w := httptest.NewRecorder()
	secured(h.Week)(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp CalendarResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.View != "week" || resp.Start != "2024-06-03" || resp.End != "2024-06-09" {
		t.Fatalf("unexpected week bounds: %+v", resp)
	}
	if len(resp.Cells) != 7 {
		t.Fatalf("expected 7 cells, got %d", len(resp.Cells))
	}

	var filled int
	for _, c := range resp.Cells {
		if !c.InMonth {
			t.Errorf("week cell %s marked out of month", c.DateKey)
		}
		if c.Entry != nil {
			filled++
			if c.Entry.Date != c.DateKey {
				t.Errorf("entry %s joined onto cell %s", c.Entry.Date, c.DateKey)
			}
		}
	}
	if filled != 2 {
		t.Errorf("expected 2 filled cells, got %d", filled)
	}
}

func TestCalendarMonth(t *testing.T) {
	st, h, userID, token := calendarFixture(t)
	testutil.LogTestMood(t, st, userID, "2024-06-01", models.MoodHappy, "")
	testutil.LogTestMood(t, st, userID, "2024-06-30", models.MoodVerySad, "")

	req := testutil.MakeRequest("GET", "/calendar/month?date=2024-06-15", nil, testutil.AuthHeaders(token))
	w := httptest.NewRecorder()
	secured(h.Month)(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp CalendarResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.View != "month" || resp.Start != "2024-06-01" || resp.End != "2024-06-30" {
		t.Fatalf("unexpected month bounds: %+v", resp)
	}
	if len(resp.Cells) != 42 {
		t.Fatalf("expected 42 cells, got %d", len(resp.Cells))
	}
	// June 2024 starts on a Saturday; grid leads with late May
	if resp.Cells[0].DateKey != "2024-05-27" {
		t.Errorf("grid starts at %s, want 2024-05-27", resp.Cells[0].DateKey)
	}

	var inMonth, filled int
	for _, c := range resp.Cells {
		if c.InMonth {
			inMonth++
		}
		if c.Entry != nil {
			filled++
			if !c.InMonth {
				t.Errorf("padding cell %s carries an entry", c.DateKey)
			}
		}
	}
	if inMonth != 30 {
		t.Errorf("expected 30 in-month cells, got %d", inMonth)
	}
	if filled != 2 {
		t.Errorf("expected 2 filled cells, got %d", filled)
	}
}

func TestCalendarDefaultsToToday(t *testing.T) {
	_, h, _, token := calendarFixture(t)

	req := testutil.MakeRequest("GET", "/calendar/week", nil, testutil.AuthHeaders(token))
	w := httptest.NewRecorder()
	secured(h.Week)(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)

	var resp CalendarResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Cells) != 7 {
		t.Errorf("expected 7 cells, got %d", len(resp.Cells))
	}
}

func TestCalendarBadDate(t *testing.T) {
	_, h, _, token := calendarFixture(t)

	tests := []struct {
		name    string
		path    string
		handler func(http.ResponseWriter, *http.Request)
	}{
		{"week word", "/calendar/week?date=tomorrow", h.Week},
		{"month out of range", "/calendar/month?date=2024-13-01", h.Month},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := testutil.MakeRequest("GET", tt.path, nil, testutil.AuthHeaders(token))
			w := httptest.NewRecorder()
			secured(tt.handler)(w, req)
			testutil.AssertStatus(t, w, http.StatusBadRequest)
		})
	}
}

func TestCalendarDuplicateDate(t *testing.T) {
	st, h, userID, token := calendarFixture(t)
	// Two entries on one day violate the one-per-day invariant
	testutil.LogTestMood(t, st, userID, "2024-06-05", models.MoodHappy, "")
	testutil.LogTestMood(t, st, userID, "2024-06-05", models.MoodSad, "")

	req := testutil.MakeRequest("GET", "/calendar/week?date=2024-06-05", nil, testutil.AuthHeaders(token))
	w := httptest.NewRecorder()
	secured(h.Week)(w, req)
	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Message != "Data integrity error" {
		t.Errorf("message = %q", resp.Message)
	}
}
