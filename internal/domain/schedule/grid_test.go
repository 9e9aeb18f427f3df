package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corebeautylab/salon-scheduler/internal/dto"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func item(id uint, start time.Time) dto.AppointmentItem {
	return dto.AppointmentItem{ID: id, StartTime: start}
}

// =============================================================================
// Day grid
// =============================================================================

func TestBuildDayGrid_BucketsByHour(t *testing.T) {
	d := day(2024, time.June, 10)
	items := []dto.AppointmentItem{
		item(1, d.Add(10*time.Hour)),
		item(2, d.Add(10*time.Hour+30*time.Minute)),
		item(3, d.Add(15*time.Hour)),
	}

	grid := BuildDayGrid(d, items)

	require.Len(t, grid.Rows, LastHour-FirstHour+1)

	row10 := grid.Rows[10-FirstHour]
	assert.Equal(t, 10, row10.Hour)
	require.Len(t, row10.Appointments, 2)

	row15 := grid.Rows[15-FirstHour]
	require.Len(t, row15.Appointments, 1)
	assert.Equal(t, uint(3), row15.Appointments[0].ID)
}

func TestBuildDayGrid_SortsCellByMinute(t *testing.T) {
	d := day(2024, time.June, 10)
	items := []dto.AppointmentItem{
		item(1, d.Add(9*time.Hour+45*time.Minute)),
		item(2, d.Add(9*time.Hour)),
		item(3, d.Add(9*time.Hour+15*time.Minute)),
	}

	grid := BuildDayGrid(d, items)

	row := grid.Rows[9-FirstHour]
	require.Len(t, row.Appointments, 3)
	assert.Equal(t, uint(2), row.Appointments[0].ID)
	assert.Equal(t, uint(3), row.Appointments[1].ID)
	assert.Equal(t, uint(1), row.Appointments[2].ID)
}

func TestBuildDayGrid_DropsOtherDaysAndOffHours(t *testing.T) {
	d := day(2024, time.June, 10)
	items := []dto.AppointmentItem{
		item(1, d.AddDate(0, 0, 1).Add(10*time.Hour)), // next day
		item(2, d.Add(3*time.Hour)),                   // before opening
		item(3, d.Add(12*time.Hour)),
	}

	grid := BuildDayGrid(d, items)

	total := 0
	for _, row := range grid.Rows {
		total += len(row.Appointments)
	}
	assert.Equal(t, 1, total)
}

// =============================================================================
// Week grid
// =============================================================================

func TestBuildWeekGrid_EveryVisibleAppointmentInExactlyOneCell(t *testing.T) {
	// 2024-06-10 is a Monday.
	anchor := day(2024, time.June, 12)
	var items []dto.AppointmentItem
	id := uint(1)
	for dayOff := 0; dayOff < 7; dayOff++ {
		for _, h := range []int{8, 12, 19} {
			items = append(items, item(id, day(2024, time.June, 10+dayOff).Add(time.Duration(h)*time.Hour)))
			id++
		}
	}

	grid := BuildWeekGrid(anchor, time.Monday, items)

	assert.Equal(t, day(2024, time.June, 10), grid.WeekStart)
	require.Len(t, grid.Days, 7)

	seen := make(map[uint]int)
	for _, hours := range grid.Cells {
		for _, cell := range hours {
			for _, it := range cell {
				seen[it.ID]++
			}
		}
	}

	assert.Len(t, seen, len(items))
	for apID, n := range seen {
		assert.Equal(t, 1, n, "appointment %d appears in %d cells", apID, n)
	}
}

func TestBuildWeekGrid_ExcludesOutsideRange(t *testing.T) {
	anchor := day(2024, time.June, 10)
	items := []dto.AppointmentItem{
		item(1, day(2024, time.June, 9).Add(10*time.Hour)),  // Sunday before
		item(2, day(2024, time.June, 17).Add(10*time.Hour)), // next Monday
		item(3, day(2024, time.June, 13).Add(10*time.Hour)),
	}

	grid := BuildWeekGrid(anchor, time.Monday, items)

	total := 0
	for _, hours := range grid.Cells {
		for _, cell := range hours {
			total += len(cell)
		}
	}
	assert.Equal(t, 1, total)
}

func TestStartOfWeek(t *testing.T) {
	// Wednesday 2024-06-12.
	wed := day(2024, time.June, 12)

	assert.Equal(t, day(2024, time.June, 10), StartOfWeek(wed, time.Monday))
	assert.Equal(t, day(2024, time.June, 9), StartOfWeek(wed, time.Sunday))

	// Already at the week start.
	assert.Equal(t, day(2024, time.June, 10), StartOfWeek(day(2024, time.June, 10), time.Monday))
}

// =============================================================================
// Slot candidates and navigation
// =============================================================================

func TestCandidateForCell(t *testing.T) {
	d := day(2024, time.June, 10)

	slot := CandidateForCell(d, 10)

	assert.Equal(t, d.Add(10*time.Hour), slot.Start)
	assert.Equal(t, d.Add(10*time.Hour+30*time.Minute), slot.End)
}

func TestNavigation(t *testing.T) {
	anchor := day(2024, time.June, 10)

	assert.Equal(t, day(2024, time.June, 11), NextDay(anchor))
	assert.Equal(t, day(2024, time.June, 9), PrevDay(anchor))
	assert.Equal(t, day(2024, time.June, 17), NextWeek(anchor))
	assert.Equal(t, day(2024, time.June, 3), PrevWeek(anchor))

	now := time.Date(2024, time.June, 12, 15, 42, 7, 0, time.UTC)
	assert.Equal(t, day(2024, time.June, 12), Today(now, time.UTC))
}
