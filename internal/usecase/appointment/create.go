package appointment

import (
	"context"
	"time"

	"github.com/corebeautylab/salon-scheduler/internal/audit"
	domain "github.com/corebeautylab/salon-scheduler/internal/domain/appointment"
	"github.com/corebeautylab/salon-scheduler/internal/httperr"
	"github.com/corebeautylab/salon-scheduler/internal/models"
)

type CreateAppointmentInput struct {
	OperatorID string

	ClientID  uint
	ServiceID uint
	Start     time.Time
	Notes     string
}

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute resolves both references, snapshots the service's current
// duration into the new record and persists it. There is no overlap
// check: the ledger is a permissive single-operator scheduler, and
// two appointments may occupy the same interval.
func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	client, err := uc.repo.GetClient(ctx, in.ClientID)
	if err != nil {
		return nil, httperr.ErrBusiness("client_not_found")
	}

	svc, err := uc.repo.GetService(ctx, in.ServiceID)
	if err != nil {
		return nil, httperr.ErrBusiness("service_not_found")
	}

	serviceID := svc.ID
	ap := &models.Appointment{
		ClientID:    client.ID,
		ServiceID:   &serviceID,
		StartTime:   in.Start,
		DurationMin: svc.DurationMin,
		Notes:       in.Notes,
		Completed:   false,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		OperatorID: &in.OperatorID,
		Action:     "appointment_created",
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	return ap, nil
}
