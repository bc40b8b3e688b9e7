// Copyright (c) 2025 spnutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dates

import (
	"testing"
	"time"
)

func TestWeekRange(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantStart string
		wantEnd   string
	}{
		{"wednesday", "2024-06-05", "2024-06-03", "2024-06-09"},
		{"monday is its own start", "2024-06-03", "2024-06-03", "2024-06-09"},
		{"sunday belongs to preceding monday", "2024-06-09", "2024-06-03", "2024-06-09"},
		{"saturday", "2024-06-08", "2024-06-03", "2024-06-09"},
		{"year boundary", "2025-01-01", "2024-12-30", "2025-01-05"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseKey(tt.input)
			if err != nil {
				t.Fatalf("ParseKey(%q) error = %v", tt.input, err)
			}

			start, end := WeekRange(d)
			if Key(start) != tt.wantStart {
				t.Errorf("WeekRange(%s) start = %s, want %s", tt.input, Key(start), tt.wantStart)
			}
			if Key(end) != tt.wantEnd {
				t.Errorf("WeekRange(%s) end = %s, want %s", tt.input, Key(end), tt.wantEnd)
			}

			if start.Weekday() != time.Monday {
				t.Errorf("WeekRange(%s) start weekday = %v, want Monday", tt.input, start.Weekday())
			}
			if end.Sub(start) != 6*24*time.Hour {
				t.Errorf("WeekRange(%s) span = %v, want 144h", tt.input, end.Sub(start))
			}

			// The input date falls inside [start, end]
			if d.Before(start) || d.After(end) {
				t.Errorf("WeekRange(%s): input outside [%s, %s]", tt.input, Key(start), Key(end))
			}
		})
	}
}

func TestMonthRange(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantStart string
		wantEnd   string
	}{
		{"leap february", "2024-02-15", "2024-02-01", "2024-02-29"},
		{"non-leap february", "2023-02-15", "2023-02-01", "2023-02-28"},
		{"thirty days", "2024-06-10", "2024-06-01", "2024-06-30"},
		{"thirty one days", "2024-07-31", "2024-07-01", "2024-07-31"},
		{"december", "2024-12-01", "2024-12-01", "2024-12-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseKey(tt.input)
			if err != nil {
				t.Fatalf("ParseKey(%q) error = %v", tt.input, err)
			}

			start, end := MonthRange(d)
			if Key(start) != tt.wantStart {
				t.Errorf("MonthRange(%s) start = %s, want %s", tt.input, Key(start), tt.wantStart)
			}
			if Key(end) != tt.wantEnd {
				t.Errorf("MonthRange(%s) end = %s, want %s", tt.input, Key(end), tt.wantEnd)
			}
		})
	}
}

func TestWeekDates(t *testing.T) {
	// 2024-06-03 is a Monday
	start, err := ParseKey("2024-06-03")
	if err != nil {
		t.Fatal(err)
	}

	got := WeekDates(start)
	if len(got) != 7 {
		t.Fatalf("WeekDates() returned %d dates, want 7", len(got))
	}

	want := []string{
		"2024-06-03", "2024-06-04", "2024-06-05", "2024-06-06",
		"2024-06-07", "2024-06-08", "2024-06-09",
	}
	for i, d := range got {
		if Key(d) != want[i] {
			t.Errorf("WeekDates()[%d] = %s, want %s", i, Key(d), want[i])
		}
		if d.Hour() != 12 {
			t.Errorf("WeekDates()[%d] hour = %d, want 12 (midday normalization)", i, d.Hour())
		}
	}
}

func TestMonthDates(t *testing.T) {
	tests := []struct {
		name  string
		input string
		count int
	}{
		{"leap february", "2024-02-01", 29},
		{"non-leap february", "2023-02-14", 28},
		{"june", "2024-06-30", 30},
		{"july", "2024-07-04", 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseKey(tt.input)
			if err != nil {
				t.Fatal(err)
			}

			got := MonthDates(d)
			if len(got) != tt.count {
				t.Fatalf("MonthDates(%s) returned %d dates, want %d", tt.input, len(got), tt.count)
			}
			if got[0].Day() != 1 {
				t.Errorf("MonthDates(%s) first day = %d, want 1", tt.input, got[0].Day())
			}
			if got[len(got)-1].Day() != tt.count {
				t.Errorf("MonthDates(%s) last day = %d, want %d", tt.input, got[len(got)-1].Day(), tt.count)
			}

			// Consecutive days, no gaps
			for i := 1; i < len(got); i++ {
				if !got[i].Equal(got[i-1].AddDate(0, 0, 1)) {
					t.Errorf("MonthDates(%s) gap between index %d and %d", tt.input, i-1, i)
				}
			}
		})
	}
}

func TestNoon(t *testing.T) {
	in := time.Date(2024, time.June, 5, 23, 59, 58, 123, time.Local)
	got := Noon(in)

	if got.Hour() != 12 || got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
		t.Errorf("Noon() = %v, want 12:00:00.0", got)
	}
	if got.Year() != 2024 || got.Month() != time.June || got.Day() != 5 {
		t.Errorf("Noon() changed the calendar day: %v", got)
	}
}

func TestParseKey(t *testing.T) {
	d, err := ParseKey("2024-06-03")
	if err != nil {
		t.Fatalf("ParseKey() error = %v", err)
	}
	if Key(d) != "2024-06-03" {
		t.Errorf("round trip = %s, want 2024-06-03", Key(d))
	}
	if d.Hour() != 12 {
		t.Errorf("ParseKey() hour = %d, want 12", d.Hour())
	}

	for _, bad := range []string{"", "2024-6-3", "03-06-2024", "not-a-date", "2024-13-01"} {
		if _, err := ParseKey(bad); err == nil {
			t.Errorf("ParseKey(%q) expected error, got nil", bad)
		}
	}
}
