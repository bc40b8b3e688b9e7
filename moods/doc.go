// Copyright (c) 2025 spnutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package moods implements the mood record service: create-if-absent for
today, update by id, fetch by date, fetch by range.

# Daily Uniqueness

A user logs at most one mood per calendar day. CreateForToday checks for
an existing entry before inserting and fails with store.ErrDuplicateEntry
when one exists. The check and the insert are separate store calls, so
the sequence is not atomic; the SQL store's unique (user_id, entry_date)
key is the real guard when two sessions race.

FetchByDate treats more than one matching record as
store.ErrIntegrityViolation instead of silently returning the first.

# Edit Sessions

EditSession models the client-visible per-day state machine:

	Unlogged -> Logged -> Editing -> Logged

Begin snapshots the entry, Cancel restores the snapshot without writing,
Commit persists through Service.UpdateByID. No delete transition exists;
Logged is a day's terminal state.
*/
package moods
