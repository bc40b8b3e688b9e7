// Copyright (c) 2025 spnutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package calendar expands date ranges into renderable calendar cells.

# Grids

Two view shapes exist:

  - WeekGrid: 7 cells, Monday through Sunday
  - MonthGrid: always 42 cells (6 weeks), starting on the Monday
    on-or-before the 1st of the month

Month cells from adjacent months pad the grid to full weeks and are
tagged InMonth=false so the view can dim them.

# Joining

JoinMoods overlays sparse mood entries onto a dense date sequence by
exact date-key match. Duplicate entries for one date are a violation of
the one-entry-per-day invariant and surface as ErrDuplicateDate; the
join never silently picks one of them.
*/
package calendar
