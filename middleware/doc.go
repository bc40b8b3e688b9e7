// Copyright (c) 2025 spnutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP plumbing shared by all handlers.

# Request Wrappers

  - WithLogging: structured request/completion logging via slog
  - WithAuth: Bearer-token validation; puts the user id in the request
    context, readable through UserID(r)
  - CORS: cross-origin headers and preflight handling

Wrappers compose in the router:

	mux.HandleFunc("POST /moods",
		middleware.WithLogging(middleware.WithAuth(secret, h.Create)))

# JSON Helpers

  - JSONResponse: encode a value with a status code
  - ErrorResponse: standard {"error", "message"} body
  - ParseJSONBody: decode and close the request body
*/
package middleware
