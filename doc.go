// Copyright (c) 2025 spnutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the your-mood API server.

your-mood is a personal mood diary: one entry per day (level 1-5 with an
optional note), reviewed through weekly and monthly calendar views.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL="file:mood.db" TOKEN_SECRET=... go run main.go

Or with flags:

	go run main.go -p 8090 -d "postgres://..." -t postgres

# Configuration

Required settings:

  - DATABASE_URL (-d): postgres DSN or sqlite file path
  - TOKEN_SECRET (-token-secret): session token signing secret

Optional settings:

  - PORT (-p): server port (default: 8090)
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (auth, moods, calendar)
  - router: route definitions using Go 1.22+ routing
  - middleware: auth, CORS, logging, JSON helpers
  - models: domain and request/response types
  - moods: mood record service and edit-session state machine
  - calendar: week/month grid builder
  - dates: date-key and range arithmetic
  - store: injectable persistence (SQL and in-memory)
  - db: schema creation
  - auth: password hashing and session tokens
  - cliparse: configuration parsing

See package documentation for each component.
*/
package main
