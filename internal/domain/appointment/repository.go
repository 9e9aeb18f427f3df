package appointment

import (
	"context"
	"time"

	"github.com/corebeautylab/salon-scheduler/internal/models"
)

// Repository is the ledger's persistence boundary. Each list
// variant keeps its own ordering contract: day/range/upcoming are
// ascending by start, per-client history is descending and capped.
type Repository interface {
	// -------- References --------
	GetClient(
		ctx context.Context,
		id uint,
	) (*models.Client, error)

	GetService(
		ctx context.Context,
		id uint,
	) (*models.Service, error)

	// -------- Appointment --------
	GetAppointment(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// -------- Listing --------
	ListForPeriod(
		ctx context.Context,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListForClient(
		ctx context.Context,
		clientID uint,
		limit int,
	) ([]models.Appointment, error)

	ListUpcoming(
		ctx context.Context,
		from time.Time,
		limit int,
	) ([]models.Appointment, error)
}
