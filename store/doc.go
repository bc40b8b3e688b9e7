// Copyright (c) 2025 spnutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store defines the persistence boundary and its implementations.

# Interfaces

Store = MoodStore + UserStore. Handlers and the mood service receive a
Store value; nothing in the application reaches for a global connection.

Two implementations exist:

  - SQL: PostgreSQL (lib/pq) or SQLite (modernc.org/sqlite), selected by
    the configured database type. Queries are written once with $N
    placeholders and rebound to ? for SQLite.
  - Memory: map-backed fake for tests. It mimics a constraint-less
    document store, so duplicate-entry states can be seeded to exercise
    integrity-violation handling.

# Uniqueness

The SQL schema carries UNIQUE (user_id, entry_date), so the one-entry-
per-day rule holds even when two sessions race past the service's
check-then-write. A losing insert surfaces as ErrDuplicateEntry.

# Errors

Sentinel errors cross the boundary unwrapped or wrapped with %w:

  - ErrNotFound: no record matched
  - ErrDuplicateEntry: entry already exists for the user and date
  - ErrIntegrityViolation: more than one entry for a user and date
  - ErrEmailTaken: email already registered

Anything else is a transient store failure and propagates to the caller
unmodified; no retry is attempted at this layer.
*/
package store
