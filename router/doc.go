// Copyright (c) 2025 spnutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router wires the HTTP routes to their handlers.

# Routing

Uses Go 1.22+ method-aware ServeMux patterns:

	mux.HandleFunc("PATCH /moods/{id}", ...)

NewRouter receives the store and config explicitly; there are no global
clients, so tests can pass an in-memory store:

	mux := router.NewRouter(store.NewMemory(), cfg)

# Route Groups

  - /auth/*: registration and sign-in (public), current user (secured)
  - /moods*: logging and editing, all secured by Bearer token
  - /calendar/*: week and month views, secured
  - /health, /: liveness and banner
*/
package router
