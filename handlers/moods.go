// Copyright (c) 2025 spnutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/spnutz/your-mood/dates"
	"github.com/spnutz/your-mood/middleware"
	"github.com/spnutz/your-mood/models"
	"github.com/spnutz/your-mood/moods"
	"github.com/spnutz/your-mood/store"
)

type MoodHandler struct {
	svc *moods.Service
}

func NewMoodHandler(svc *moods.Service) *MoodHandler {
	return &MoodHandler{svc: svc}
}

// Create handles POST /moods
// Logs the authenticated user's mood for today. One entry per day: a
// second attempt gets 409 and should edit the existing entry instead.
func (h *MoodHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	var req models.CreateMoodRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	entry, err := h.svc.CreateForToday(r.Context(), userID, req.Level, req.Note)
	switch {
	case errors.Is(err, moods.ErrInvalidLevel):
		middleware.ErrorResponse(w, http.StatusBadRequest, "level must be between 1 and 5")
		return
	case errors.Is(err, store.ErrDuplicateEntry):
		middleware.ErrorResponse(w, http.StatusConflict, "Mood already logged today - edit it instead")
		return
	case errors.Is(err, store.ErrIntegrityViolation):
		slog.Error("duplicate mood entries detected", "user_id", userID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Data integrity error")
		return
	case err != nil:
		slog.Error("failed to create mood entry", "user_id", userID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to log mood")
		return
	}

	slog.Info("mood logged", "user_id", userID, "entry_id", entry.ID, "date", entry.Date)

	middleware.JSONResponse(w, http.StatusCreated, entry)
}

// GetToday handles GET /moods/today
func (h *MoodHandler) GetToday(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	entry, err := h.svc.FetchByDate(r.Context(), userID, h.svc.TodayKey())
	switch {
	case errors.Is(err, store.ErrNotFound):
		middleware.ErrorResponse(w, http.StatusNotFound, "No mood logged today")
		return
	case errors.Is(err, store.ErrIntegrityViolation):
		slog.Error("duplicate mood entries detected", "user_id", userID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Data integrity error")
		return
	case err != nil:
		slog.Error("failed to fetch today's mood", "user_id", userID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.TodayResponse{
		Entry:     entry,
		LoggedAgo: humanize.Time(entry.CreatedAt),
	})
}

// Update handles PATCH /moods/{id}
// Rewrites level and note of an existing entry. Only the owner may edit.
func (h *MoodHandler) Update(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "entry id is required")
		return
	}

	entry, err := h.svc.FetchByID(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) || (err == nil && entry.UserID != userID) {
		// Same response for missing and foreign entries
		middleware.ErrorResponse(w, http.StatusNotFound, "Mood entry not found")
		return
	}
	if err != nil {
		slog.Error("failed to fetch mood entry", "entry_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	var req models.UpdateMoodRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	if err := h.svc.UpdateByID(r.Context(), id, req.Level, req.Note); err != nil {
		if errors.Is(err, moods.ErrInvalidLevel) {
			middleware.ErrorResponse(w, http.StatusBadRequest, "level must be between 1 and 5")
			return
		}
		slog.Error("failed to update mood entry", "entry_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to update mood")
		return
	}

	slog.Info("mood updated", "user_id", userID, "entry_id", id)

	entry.MoodLevel = req.Level
	entry.Note = req.Note
	middleware.JSONResponse(w, http.StatusOK, entry)
}

// List handles GET /moods?start=YYYY-MM-DD&end=YYYY-MM-DD
// Raw inclusive range fetch; ordering is not guaranteed.
func (h *MoodHandler) List(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserID(r)

	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")
	if _, err := dates.ParseKey(start); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "start must be a YYYY-MM-DD date")
		return
	}
	if _, err := dates.ParseKey(end); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "end must be a YYYY-MM-DD date")
		return
	}
	if end < start {
		middleware.ErrorResponse(w, http.StatusBadRequest, "end must not precede start")
		return
	}

	entries, err := h.svc.FetchByRange(r.Context(), userID, start, end)
	if err != nil {
		slog.Error("failed to fetch mood range", "user_id", userID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.MoodListResponse{Moods: entries})
}

// Options handles GET /moods/options
// The static five-level lookup table, best to worst.
func (h *MoodHandler) Options(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.MoodOptions)
}
