// Copyright (c) 2025 spnutz.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package dates computes week and month boundaries for the calendar views.

# Date Keys

Calendar days are identified by "YYYY-MM-DD" keys. All time values produced
here are pinned to 12:00 local time before formatting:

	start, end := dates.WeekRange(time.Now())
	key := dates.Key(start) // "2024-06-03"

Pinning to midday matters. A midnight-based value one timezone east of UTC
serializes as the previous calendar day; a midday value never crosses a day
boundary under UTC conversion.

# Ranges

  - WeekRange: Monday through Sunday of the ISO week containing a date
  - MonthRange: first through last day of a date's month
  - WeekDates: the 7 consecutive dates from a week start
  - MonthDates: every date in a month (28-31 entries)

All functions are pure and deterministic for a given input and location.
*/
package dates
