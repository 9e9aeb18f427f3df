package appointment

import (
	"context"
	"time"

	domain "github.com/corebeautylab/salon-scheduler/internal/domain/appointment"
	"github.com/corebeautylab/salon-scheduler/internal/dto"
	"github.com/corebeautylab/salon-scheduler/internal/models"
)

const (
	clientHistoryLimit = 50
	upcomingLimit      = 100
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

// ByDay lists one local day, ascending by start time.
func (uc *ListAppointments) ByDay(
	ctx context.Context,
	day time.Time,
) ([]dto.AppointmentItem, error) {

	// Calendar-day step: DST transition days are not 24 hours long.
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	aps, err := uc.repo.ListForPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return toItems(aps), nil
}

// ByRange lists an inclusive date range, ascending by start time.
func (uc *ListAppointments) ByRange(
	ctx context.Context,
	from time.Time,
	to time.Time,
) ([]dto.AppointmentItem, error) {

	start := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, from.Location())
	end := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, to.Location()).
		AddDate(0, 0, 1)

	aps, err := uc.repo.ListForPeriod(ctx, start, end)
	if err != nil {
		return nil, err
	}
	return toItems(aps), nil
}

// ByClient lists a client's history, newest first, capped at 50.
func (uc *ListAppointments) ByClient(
	ctx context.Context,
	clientID uint,
) ([]dto.AppointmentItem, error) {

	aps, err := uc.repo.ListForClient(ctx, clientID, clientHistoryLimit)
	if err != nil {
		return nil, err
	}
	return toItems(aps), nil
}

// Upcoming is the default query: everything from now onward,
// ascending, capped at 100.
func (uc *ListAppointments) Upcoming(
	ctx context.Context,
	now time.Time,
) ([]dto.AppointmentItem, error) {

	aps, err := uc.repo.ListUpcoming(ctx, now, upcomingLimit)
	if err != nil {
		return nil, err
	}
	return toItems(aps), nil
}

func toItems(aps []models.Appointment) []dto.AppointmentItem {
	out := make([]dto.AppointmentItem, 0, len(aps))
	for _, ap := range aps {
		out = append(out, dto.AppointmentItem{
			ID:          ap.ID,
			StartTime:   ap.StartTime,
			EndTime:     ap.EndTime(),
			DurationMin: ap.DurationMin,
			Completed:   ap.Completed,
			Notes:       ap.Notes,

			ClientID:   ap.ClientID,
			ClientName: ap.Client.Name,

			ServiceID:       ap.ServiceID,
			ServiceName:     ap.Service.Name,
			ServiceCategory: ap.Service.Category,
			ServicePrice:    ap.Service.Price,
		})
	}
	return out
}
