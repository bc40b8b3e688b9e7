// Copyright (c) 2025 spnutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/spnutz/your-mood/calendar"
	"github.com/spnutz/your-mood/dates"
	"github.com/spnutz/your-mood/middleware"
	"github.com/spnutz/your-mood/moods"
)

type CalendarHandler struct {
	svc *moods.Service
}

func NewCalendarHandler(svc *moods.Service) *CalendarHandler {
	return &CalendarHandler{svc: svc}
}

// CalendarResponse carries one rendered view: 7 cells for a week,
// 42 for a month.
type CalendarResponse struct {
	View  string          `json:"view"`
	Start string          `json:"start"`
	End   string          `json:"end"`
	Cells []calendar.Cell `json:"cells"`
}

// refDate resolves the optional ?date= parameter, defaulting to today.
func refDate(r *http.Request) (time.Time, error) {
	if q := r.URL.Query().Get("date"); q != "" {
		return dates.ParseKey(q)
	}
	return dates.Noon(time.Now()), nil
}

// Week handles GET /calendar/week?date=YYYY-MM-DD
// Returns the Monday-Sunday week containing the reference date, with
// the user's moods joined onto the seven days.
func (h *CalendarHandler) Week(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	d, err := refDate(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "date must be a YYYY-MM-DD date")
		return
	}

	start, end := dates.WeekRange(d)
	entries, err := h.svc.FetchByRange(r.Context(), userID, dates.Key(start), dates.Key(end))
	if err != nil {
		slog.Error("failed to fetch mood range", "user_id", userID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	cells, err := calendar.WeekGrid(start, entries)
	if err != nil {
		h.gridError(w, userID, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, CalendarResponse{
		View:  "week",
		Start: dates.Key(start),
		End:   dates.Key(end),
		Cells: cells,
	})
}

// Month handles GET /calendar/month?date=YYYY-MM-DD
// Returns the 42-cell grid for the month containing the reference date.
// Moods are fetched for the month itself; padding cells from adjacent
// months render empty.
func (h *CalendarHandler) Month(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	d, err := refDate(r)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "date must be a YYYY-MM-DD date")
		return
	}

	start, end := dates.MonthRange(d)
	entries, err := h.svc.FetchByRange(r.Context(), userID, dates.Key(start), dates.Key(end))
	if err != nil {
		slog.Error("failed to fetch mood range", "user_id", userID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	cells, err := calendar.MonthGrid(d, entries)
	if err != nil {
		h.gridError(w, userID, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, CalendarResponse{
		View:  "month",
		Start: dates.Key(start),
		End:   dates.Key(end),
		Cells: cells,
	})
}

// gridError maps a join failure. A duplicate date means the store holds
// two entries for one day - an invariant violation, not a user error.
func (h *CalendarHandler) gridError(w http.ResponseWriter, userID string, err error) {
	if errors.Is(err, calendar.ErrDuplicateDate) {
		slog.Error("duplicate mood entries detected", "user_id", userID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Data integrity error")
		return
	}
	slog.Error("failed to build calendar grid", "user_id", userID, "error", err)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to build calendar")
}
