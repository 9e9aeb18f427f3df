package appointment

import (
	"context"

	"github.com/corebeautylab/salon-scheduler/internal/audit"
	domain "github.com/corebeautylab/salon-scheduler/internal/domain/appointment"
	"github.com/corebeautylab/salon-scheduler/internal/httperr"
)

type DeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	operatorID string,
	id uint,
) error {

	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.DeleteAppointment(ctx, ap.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		OperatorID: &operatorID,
		Action:     "appointment_deleted",
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	return nil
}
