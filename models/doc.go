// Copyright (c) 2025 spnutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the domain types and the HTTP request/response
shapes.

# Domain

  - MoodEntry: one logged mood for one calendar day. Date is a
    "YYYY-MM-DD" key; per user at most one entry exists per date.
    Entries are created once and edited in place; never deleted.
  - MoodLevel: ordinal 1 (Very Sad) to 5 (Very Happy).
  - MoodOption: the static five-row table mapping a level to label,
    color, and a symbolic glyph tag. Compiled in, not persisted; the
    presentation layer maps tags to actual glyphs.
  - User: account with a bcrypt password hash (never serialized).

# Conventions

Request types end in Request, response types in Response. Sensitive
fields carry json:"-".
*/
package models
