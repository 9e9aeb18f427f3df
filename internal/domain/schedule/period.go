package schedule

import "time"

// Named statistics periods.
type Period string

const (
	PeriodToday Period = "today"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

func ParsePeriod(s string) Period {
	switch Period(s) {
	case PeriodWeek:
		return PeriodWeek
	case PeriodMonth:
		return PeriodMonth
	default:
		return PeriodToday
	}
}

// WindowStart returns the inclusive lower bound of a period as of now.
// Windows are open-ended: stats cover start <= t.
//
//	today: local midnight
//	week:  midnight of the configured week start day
//	month: first calendar day of the current month
func WindowStart(p Period, now time.Time, weekStart time.Weekday) time.Time {
	switch p {
	case PeriodWeek:
		return StartOfWeek(now, weekStart)
	case PeriodMonth:
		return time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	default:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}
}
