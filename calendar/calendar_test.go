// Copyright (c) 2025 spnutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package calendar

import (
	"errors"
	"testing"
	"time"

	"github.com/spnutz/your-mood/dates"
	"github.com/spnutz/your-mood/models"
)

func mustParse(t *testing.T, key string) time.Time {
	t.Helper()
	d, err := dates.ParseKey(key)
	if err != nil {
		t.Fatalf("ParseKey(%q) error = %v", key, err)
	}
	return d
}

func TestMonthGridShape(t *testing.T) {
	tests := []struct {
		name      string
		month     string
		wantFirst string // first cell of the grid
	}{
		// 2024-07-01 is a Monday: the grid starts exactly on the 1st
		{"first is monday", "2024-07-15", "2024-07-01"},
		// 2024-09-01 is a Sunday: look back 6 days
		{"first is sunday", "2024-09-01", "2024-08-26"},
		// 2024-06-01 is a Saturday: look back 5 days
		{"first is saturday", "2024-06-10", "2024-05-27"},
		// 2024-02-01 is a Thursday, leap year
		{"leap february", "2024-02-29", "2024-01-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cells, err := MonthGrid(mustParse(t, tt.month), nil)
			if err != nil {
				t.Fatalf("MonthGrid() error = %v", err)
			}

			if len(cells) != 42 {
				t.Fatalf("MonthGrid() returned %d cells, want 42", len(cells))
			}
			if cells[0].DateKey != tt.wantFirst {
				t.Errorf("first cell = %s, want %s", cells[0].DateKey, tt.wantFirst)
			}
			if cells[0].Date.Weekday() != time.Monday {
				t.Errorf("first cell weekday = %v, want Monday", cells[0].Date.Weekday())
			}

			// Every date of the month appears exactly once, tagged InMonth
			month := mustParse(t, tt.month).Month()
			seen := map[string]int{}
			inMonth := 0
			for _, c := range cells {
				seen[c.DateKey]++
				if c.InMonth {
					inMonth++
					if c.Date.Month() != month {
						t.Errorf("cell %s tagged InMonth but belongs to %v", c.DateKey, c.Date.Month())
					}
				}
			}
			for key, n := range seen {
				if n != 1 {
					t.Errorf("date %s appears %d times in grid", key, n)
				}
			}
			wantDays := len(dates.MonthDates(mustParse(t, tt.month)))
			if inMonth != wantDays {
				t.Errorf("InMonth cell count = %d, want %d", inMonth, wantDays)
			}
		})
	}
}

func TestMonthGridOverlaysMoods(t *testing.T) {
	moods := []models.MoodEntry{
		{ID: "a", UserID: "u1", MoodLevel: models.MoodHappy, Date: "2024-09-10"},
		{ID: "b", UserID: "u1", MoodLevel: models.MoodSad, Date: "2024-09-30"},
	}

	cells, err := MonthGrid(mustParse(t, "2024-09-15"), moods)
	if err != nil {
		t.Fatalf("MonthGrid() error = %v", err)
	}

	filled := 0
	for _, c := range cells {
		if c.Entry == nil {
			continue
		}
		filled++
		if c.Entry.Date != c.DateKey {
			t.Errorf("cell %s holds entry for %s", c.DateKey, c.Entry.Date)
		}
	}
	if filled != len(moods) {
		t.Errorf("filled cells = %d, want %d", filled, len(moods))
	}
}

func TestWeekGrid(t *testing.T) {
	weekStart := mustParse(t, "2024-06-03") // a Monday
	moods := []models.MoodEntry{
		{ID: "a", UserID: "u1", MoodLevel: models.MoodNeutral, Date: "2024-06-05"},
	}

	cells, err := WeekGrid(weekStart, moods)
	if err != nil {
		t.Fatalf("WeekGrid() error = %v", err)
	}

	if len(cells) != 7 {
		t.Fatalf("WeekGrid() returned %d cells, want 7", len(cells))
	}
	if cells[0].DateKey != "2024-06-03" || cells[6].DateKey != "2024-06-09" {
		t.Errorf("week spans %s..%s, want 2024-06-03..2024-06-09", cells[0].DateKey, cells[6].DateKey)
	}
	if cells[2].Entry == nil || cells[2].Entry.ID != "a" {
		t.Errorf("expected entry a on 2024-06-05, got %+v", cells[2].Entry)
	}
}

func TestJoinMoods(t *testing.T) {
	days := dates.WeekDates(mustParse(t, "2024-06-03"))
	moods := []models.MoodEntry{
		{ID: "a", Date: "2024-06-03", MoodLevel: models.MoodVeryHappy},
		{ID: "b", Date: "2024-06-07", MoodLevel: models.MoodVerySad},
		{ID: "c", Date: "2024-06-09", MoodLevel: models.MoodNeutral},
	}

	cells, err := JoinMoods(days, moods)
	if err != nil {
		t.Fatalf("JoinMoods() error = %v", err)
	}

	if len(cells) != len(days) {
		t.Fatalf("JoinMoods() returned %d cells, want %d", len(cells), len(days))
	}

	filled := 0
	for _, c := range cells {
		if c.Entry != nil {
			filled++
		}
	}
	if filled != len(moods) {
		t.Errorf("non-empty cells = %d, want %d", filled, len(moods))
	}
}

func TestJoinMoodsDuplicateDate(t *testing.T) {
	days := dates.WeekDates(mustParse(t, "2024-06-03"))
	moods := []models.MoodEntry{
		{ID: "a", Date: "2024-06-04"},
		{ID: "b", Date: "2024-06-04"},
	}

	_, err := JoinMoods(days, moods)
	if !errors.Is(err, ErrDuplicateDate) {
		t.Fatalf("JoinMoods() error = %v, want ErrDuplicateDate", err)
	}
}

func TestJoinMoodsEmpty(t *testing.T) {
	days := dates.WeekDates(mustParse(t, "2024-06-03"))

	cells, err := JoinMoods(days, nil)
	if err != nil {
		t.Fatalf("JoinMoods() error = %v", err)
	}
	for _, c := range cells {
		if c.Entry != nil {
			t.Errorf("cell %s unexpectedly filled", c.DateKey)
		}
	}
}
