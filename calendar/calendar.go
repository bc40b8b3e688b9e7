// Copyright (c) 2025 spnutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/spnutz/your-mood/dates"
	"github.com/spnutz/your-mood/models"
)

// ErrDuplicateDate is returned when two mood entries carry the same date
// key. One entry per day is an invariant of the store; a duplicate means
// the data is inconsistent and must not be resolved by picking one.
var ErrDuplicateDate = errors.New("duplicate mood entries for one date")

// gridSize is 6 weeks of 7 days, enough to cover any month layout.
const gridSize = 42

// Cell is one day in a rendered calendar view.
type Cell struct {
	Date    time.Time         `json:"-"`
	DateKey string            `json:"date"`
	InMonth bool              `json:"in_month"`
	Entry   *models.MoodEntry `json:"entry,omitempty"`
}

// MonthGrid builds the 42-cell month view for the month containing d.
// The grid starts on the Monday on-or-before the 1st (exactly on the 1st
// when the 1st is a Monday) and pads with adjacent-month days, tagged
// InMonth=false, so the grid is always rectangular.
func MonthGrid(d time.Time, moods []models.MoodEntry) ([]Cell, error) {
	first, _ := dates.MonthRange(d)

	// Monday-based look-back: Sunday counts as weekday 7.
	day := int(first.Weekday())
	back := day - 1
	if day == 0 {
		back = 6
	}
	start := first.AddDate(0, 0, -back)

	days := make([]time.Time, 0, gridSize)
	for i := 0; i < gridSize; i++ {
		days = append(days, start.AddDate(0, 0, i))
	}

	cells, err := JoinMoods(days, moods)
	if err != nil {
		return nil, err
	}
	for i := range cells {
		cells[i].InMonth = cells[i].Date.Month() == first.Month()
	}
	return cells, nil
}

// WeekGrid builds the 7-cell week view beginning at weekStart.
func WeekGrid(weekStart time.Time, moods []models.MoodEntry) ([]Cell, error) {
	return JoinMoods(dates.WeekDates(weekStart), moods)
}

// JoinMoods overlays an unordered list of mood entries onto an ordered
// date sequence, producing one cell per date. Entries match cells by
// exact date key. Two entries with the same key violate the one-entry-
// per-day invariant and fail with ErrDuplicateDate.
func JoinMoods(days []time.Time, moods []models.MoodEntry) ([]Cell, error) {
	byDate := make(map[string]*models.MoodEntry, len(moods))
	for i := range moods {
		key := moods[i].Date
		if _, exists := byDate[key]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateDate, key)
		}
		byDate[key] = &moods[i]
	}

	cells := make([]Cell, 0, len(days))
	for _, day := range days {
		key := dates.Key(day)
		cells = append(cells, Cell{
			Date:    day,
			DateKey: key,
			InMonth: true,
			Entry:   byDate[key],
		})
	}
	return cells, nil
}
