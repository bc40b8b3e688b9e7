// Copyright (c) 2025 spnutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package dates

import (
	"fmt"
	"time"
)

// KeyFormat is the canonical calendar-day key layout.
const KeyFormat = "2006-01-02"

// Noon returns t pinned to 12:00 on the same calendar day.
// Midday normalization keeps a date from shifting to the adjacent day
// when the value is converted to UTC during serialization.
func Noon(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, t.Location())
}

// Key formats t as a "YYYY-MM-DD" date key.
func Key(t time.Time) string {
	return t.Format(KeyFormat)
}

// ParseKey parses a "YYYY-MM-DD" date key into a midday-normalized time.
func ParseKey(s string) (time.Time, error) {
	t, err := time.ParseInLocation(KeyFormat, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q: %w", s, err)
	}
	return Noon(t), nil
}

// WeekRange returns the Monday and Sunday of the ISO week containing d,
// both midday-normalized.
func WeekRange(d time.Time) (start, end time.Time) {
	day := int(d.Weekday()) // 0=Sunday .. 6=Saturday
	offset := 1 - day
	if day == 0 {
		offset = -6
	}
	start = Noon(d.AddDate(0, 0, offset))
	end = start.AddDate(0, 0, 6)
	return start, end
}

// MonthRange returns the first and last calendar day of d's month,
// both midday-normalized.
func MonthRange(d time.Time) (start, end time.Time) {
	start = time.Date(d.Year(), d.Month(), 1, 12, 0, 0, 0, d.Location())
	end = start.AddDate(0, 1, -1)
	return start, end
}

// WeekDates returns exactly 7 consecutive midday dates beginning at start.
func WeekDates(start time.Time) []time.Time {
	out := make([]time.Time, 0, 7)
	day := Noon(start)
	for i := 0; i < 7; i++ {
		out = append(out, day)
		day = day.AddDate(0, 0, 1)
	}
	return out
}

// MonthDates returns every midday date in d's month, in order
// (28-31 entries depending on month and leap year).
func MonthDates(d time.Time) []time.Time {
	first, last := MonthRange(d)
	out := make([]time.Time, 0, 31)
	for day := first; !day.After(last); day = day.AddDate(0, 0, 1) {
		out = append(out, day)
	}
	return out
}
