// Copyright (c) 2025 spnutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/spnutz/your-mood/cliparse"
	"github.com/spnutz/your-mood/handlers"
	"github.com/spnutz/your-mood/middleware"
	"github.com/spnutz/your-mood/moods"
	"github.com/spnutz/your-mood/store"
)

func NewRouter(st store.Store, cfg cliparse.Config) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	moodSvc := moods.NewService(st)
	authHandler := handlers.NewAuthHandler(st, cfg)
	moodHandler := handlers.NewMoodHandler(moodSvc)
	calendarHandler := handlers.NewCalendarHandler(moodSvc)

	secured := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithAuth(cfg.TokenSecret, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Identity (public)
	mux.HandleFunc("POST /auth/register", middleware.WithLogging(authHandler.Register))
	mux.HandleFunc("POST /auth/login", middleware.WithLogging(authHandler.Login))
	mux.HandleFunc("GET /auth/me", secured(authHandler.Me))

	// Mood logging
	mux.HandleFunc("GET /moods/options", middleware.WithLogging(moodHandler.Options))
	mux.HandleFunc("POST /moods", secured(moodHandler.Create))
	mux.HandleFunc("GET /moods/today", secured(moodHandler.GetToday))
	mux.HandleFunc("PATCH /moods/{id}", secured(moodHandler.Update))
	mux.HandleFunc("GET /moods", secured(moodHandler.List))

	// Calendar views
	mux.HandleFunc("GET /calendar/week", secured(calendarHandler.Week))
	mux.HandleFunc("GET /calendar/month", secured(calendarHandler.Month))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("your-mood API v1"))
	})

	return mux
}
