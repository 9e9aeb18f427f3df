package appointment

import (
	"context"
	"time"

	"github.com/corebeautylab/salon-scheduler/internal/audit"
	domain "github.com/corebeautylab/salon-scheduler/internal/domain/appointment"
	"github.com/corebeautylab/salon-scheduler/internal/httperr"
	"github.com/corebeautylab/salon-scheduler/internal/models"
)

// UpdateAppointmentInput carries partial changes; nil means "leave as is".
type UpdateAppointmentInput struct {
	OperatorID string
	ID         uint

	ClientID  *uint
	ServiceID *uint
	Start     *time.Time
	Notes     *string
	Completed *bool
}

type UpdateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewUpdateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute applies a partial update. The duration snapshot is
// re-taken only when the caller supplies a new service id; a stale
// duration is never silently reused for a changed service, and an
// unchanged service never has its snapshot refreshed.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointment(ctx, in.ID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if in.ClientID != nil {
		client, err := uc.repo.GetClient(ctx, *in.ClientID)
		if err != nil {
			return nil, httperr.ErrBusiness("client_not_found")
		}
		ap.ClientID = client.ID
		ap.Client = *client
	}

	if in.ServiceID != nil {
		svc, err := uc.repo.GetService(ctx, *in.ServiceID)
		if err != nil {
			return nil, httperr.ErrBusiness("service_not_found")
		}
		serviceID := svc.ID
		ap.ServiceID = &serviceID
		ap.Service = *svc
		ap.DurationMin = svc.DurationMin
	}

	if in.Start != nil {
		ap.StartTime = *in.Start
	}

	if in.Notes != nil {
		ap.Notes = *in.Notes
	}

	completedNow := false
	if in.Completed != nil {
		completedNow = *in.Completed && !ap.Completed
		ap.Completed = *in.Completed
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	action := "appointment_updated"
	if completedNow {
		action = "appointment_completed"
	}

	uc.audit.Dispatch(audit.Event{
		OperatorID: &in.OperatorID,
		Action:     action,
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	return ap, nil
}
