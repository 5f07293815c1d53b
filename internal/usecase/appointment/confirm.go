package appointment

import (
	"context"
	"time"

	"github.com/autoservicehub/workshop-scheduler/internal/audit"
	domain "github.com/autoservicehub/workshop-scheduler/internal/domain/appointment"
	"github.com/autoservicehub/workshop-scheduler/internal/models"
)

type ConfirmAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewConfirmAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *ConfirmAppointment {
	return &ConfirmAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *ConfirmAppointment) Execute(
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

	if err := domain.Confirm(ap, time.Now()); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		WorkshopID: shop.ID,
		UserID:     &userID,
		Action:     "appointment_confirmed",
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	return ap, nil
}
