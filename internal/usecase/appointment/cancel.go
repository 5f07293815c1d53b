package appointment

import (
	"context"
	"time"

	"github.com/autoservicehub/workshop-scheduler/internal/audit"
	domain "github.com/autoservicehub/workshop-scheduler/internal/domain/appointment"
	"github.com/autoservicehub/workshop-scheduler/internal/models"
)

type CancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CancelAppointment {
	return &CancelAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute cancels a booking; the slot it occupied becomes available again
// because the occupancy index ignores cancelled rows.
func (uc *CancelAppointment) Execute(
	ctx context.Context,
	workshopSlug string,
	userID uint,
	appointmentID uint,
) (*models.Appointment, error) {

	shop, err := uc.repo.GetWorkshopBySlug(ctx, workshopSlug)
	if err != nil {
		return nil, err
	}

	ap, err := uc.repo.GetAppointmentForWorkshop(ctx, appointmentID, shop.ID)
	if err != nil {
		return nil, err
	}

	if err := domain.Cancel(ap, time.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		WorkshopID: shop.ID,
		UserID:     &userID,
		Action:     "appointment_cancelled",
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	return ap, nil
}
