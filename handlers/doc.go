// Copyright (c) 2025 spnutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the your-mood API.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - AuthHandler: account registration, sign-in, current user
  - MoodHandler: daily mood logging, editing, range fetches
  - CalendarHandler: week and month calendar views

# Mood Lifecycle

A day's mood is logged once and then only edited:

	POST  /moods        → Create (409 when today is already logged)
	GET   /moods/today  → GetToday (pre-fills the logger UI)
	PATCH /moods/{id}   → Update (level and note only, owner only)

There is no delete endpoint; a logged day stays logged.

# Views

	GET /calendar/week?date=YYYY-MM-DD  → 7 cells, Monday-Sunday
	GET /calendar/month?date=YYYY-MM-DD → 42 cells, padded to full weeks
	GET /moods?start=&end=              → raw entries, no grid

All mood and calendar routes require a Bearer session token; the user id
comes from middleware.UserID.

# Error Mapping

	store.ErrDuplicateEntry     → 409
	store.ErrNotFound           → 404
	store.ErrIntegrityViolation → 500 "Data integrity error"
	calendar.ErrDuplicateDate   → 500 "Data integrity error"
	validation failures         → 400
	missing/invalid token       → 401

Store failures are propagated as 500 without retry; the client decides
whether to try again.
*/
package handlers
