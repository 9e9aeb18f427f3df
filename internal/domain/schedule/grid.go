package schedule

import (
	"sort"
	"time"

	"github.com/corebeautylab/salon-scheduler/internal/dto"
)

// Business hours shown on the calendar. Rows run 07:00 through 23:00.
const (
	FirstHour = 7
	LastHour  = 23
)

// Cell is one day x hour bucket of the calendar grid.
type Cell struct {
	Day          time.Time             `json:"day"`
	Hour         int                   `json:"hour"`
	Appointments []dto.AppointmentItem `json:"appointments"`
}

// DayGrid projects appointments onto a single day's hourly rows.
// An appointment lands in the row of its start hour; entries within
// a row are ordered by minute so stacking is deterministic.
type DayGrid struct {
	Day  time.Time `json:"day"`
	Rows []Cell    `json:"rows"`
}

// WeekGrid is a rolling 7-day grid anchored at a week start.
type WeekGrid struct {
	WeekStart time.Time                                `json:"week_start"`
	Days      []time.Time                              `json:"days"`
	Cells     map[string]map[int][]dto.AppointmentItem `json:"cells"`
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func sortByMinute(items []dto.AppointmentItem) {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].StartTime.Minute() < items[j].StartTime.Minute()
	})
}

// BuildDayGrid buckets the given appointments into the day's hour rows.
// Appointments outside the day or outside business hours are dropped.
func BuildDayGrid(day time.Time, items []dto.AppointmentItem) DayGrid {
	grid := DayGrid{Day: day}

	byHour := make(map[int][]dto.AppointmentItem)
	for _, it := range items {
		start := it.StartTime.In(day.Location())
		if !sameDay(start, day) {
			continue
		}
		h := start.Hour()
		if h < FirstHour || h > LastHour {
			continue
		}
		byHour[h] = append(byHour[h], it)
	}

	for h := FirstHour; h <= LastHour; h++ {
		row := byHour[h]
		sortByMinute(row)
		grid.Rows = append(grid.Rows, Cell{
			Day:          day,
			Hour:         h,
			Appointments: row,
		})
	}

	return grid
}

// BuildWeekGrid buckets appointments into a 7-day grid starting at
// the week start of anchor. Cell keys are "2006-01-02" dates.
func BuildWeekGrid(anchor time.Time, weekStart time.Weekday, items []dto.AppointmentItem) WeekGrid {
	start := StartOfWeek(anchor, weekStart)

	grid := WeekGrid{
		WeekStart: start,
		Cells:     make(map[string]map[int][]dto.AppointmentItem),
	}

	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		grid.Days = append(grid.Days, day)
		grid.Cells[day.Format("2006-01-02")] = make(map[int][]dto.AppointmentItem)
	}

	end := start.AddDate(0, 0, 7)
	for _, it := range items {
		t := it.StartTime.In(start.Location())
		if t.Before(start) || !t.Before(end) {
			continue
		}
		h := t.Hour()
		if h < FirstHour || h > LastHour {
			continue
		}
		key := t.Format("2006-01-02")
		grid.Cells[key][h] = append(grid.Cells[key][h], it)
	}

	for _, hours := range grid.Cells {
		for h := range hours {
			sortByMinute(hours[h])
		}
	}

	return grid
}

// StartOfWeek truncates t to midnight of its week start day.
func StartOfWeek(t time.Time, weekStart time.Weekday) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	diff := (int(day.Weekday()) - int(weekStart) + 7) % 7
	return day.AddDate(0, 0, -diff)
}
