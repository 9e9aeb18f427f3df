package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParsePeriod(t *testing.T) {
	assert.Equal(t, PeriodToday, ParsePeriod("today"))
	assert.Equal(t, PeriodWeek, ParsePeriod("week"))
	assert.Equal(t, PeriodMonth, ParsePeriod("month"))

	// Unknown values fall back to today.
	assert.Equal(t, PeriodToday, ParsePeriod(""))
	assert.Equal(t, PeriodToday, ParsePeriod("year"))
}

func TestWindowStart(t *testing.T) {
	// Wednesday 2024-06-12, mid-afternoon.
	now := time.Date(2024, time.June, 12, 15, 30, 0, 0, time.UTC)

	assert.Equal(t,
		time.Date(2024, time.June, 12, 0, 0, 0, 0, time.UTC),
		WindowStart(PeriodToday, now, time.Monday),
	)

	assert.Equal(t,
		time.Date(2024, time.June, 10, 0, 0, 0, 0, time.UTC),
		WindowStart(PeriodWeek, now, time.Monday),
	)

	assert.Equal(t,
		time.Date(2024, time.June, 9, 0, 0, 0, 0, time.UTC),
		WindowStart(PeriodWeek, now, time.Sunday),
	)

	assert.Equal(t,
		time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC),
		WindowStart(PeriodMonth, now, time.Monday),
	)
}
