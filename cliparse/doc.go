// Copyright (c) 2025 spnutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles server configuration from CLI flags and
environment variables.

# Precedence

CLI flags win over environment variables; defaults apply last:

	go run . -p 8090 -d "file:mood.db" -t sqlite

or

	PORT=8090 DATABASE_URL="postgres://..." DATABASE_TYPE=postgres go run .

# Settings

  - PORT (-p): listen port, default 8090
  - DATABASE_URL (-d): postgres DSN or sqlite file path, required
  - DATABASE_TYPE (-t): "sqlite" (default) or "postgres"
  - TOKEN_SECRET (-token-secret): session token signing secret, required

TOKEN_SECRET has no default on purpose; a guessable signing secret would
let anyone mint valid sessions.
*/
package cliparse
