package schedule

import "time"

// Navigation is a pure state transition over an anchor date.
// No I/O; callers re-query appointments for the new anchor.

func NextDay(anchor time.Time) time.Time {
	return anchor.AddDate(0, 0, 1)
}

func PrevDay(anchor time.Time) time.Time {
	return anchor.AddDate(0, 0, -1)
}

func NextWeek(anchor time.Time) time.Time {
	return anchor.AddDate(0, 0, 7)
}

func PrevWeek(anchor time.Time) time.Time {
	return anchor.AddDate(0, 0, -7)
}

// Today resets the anchor to the current date in loc.
func Today(now time.Time, loc *time.Location) time.Time {
	t := now.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
