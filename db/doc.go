// Copyright (c) 2025 spnutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS. The DDL is written in
the subset of SQL that PostgreSQL and SQLite both accept.

# Tables

  - app_user: accounts (bcrypt password hash, unique email)
  - mood_entry: one logged mood per user per day

# Uniqueness

mood_entry carries UNIQUE (user_id, entry_date). This is the store-side
enforcement of the one-entry-per-day rule: two sessions can both pass
the application's existence check, but only one insert wins.

# Indexes

  - app_user.email (unique)
  - mood_entry.(user_id, entry_date) - date and range lookups
*/
package db
