package appointment

import (
	"context"
	"time"

	"github.com/autoservicehub/workshop-scheduler/internal/models"
)

type Repository interface {
	// -------- Workshop --------
	GetWorkshopBySlug(
		ctx context.Context,
		slug string,
	) (*models.Workshop, error)

	// -------- Service types --------
	ListActiveServiceTypes(
		ctx context.Context,
	) ([]models.ServiceType, error)

	// -------- Appointment (create) --------
	// CreateAppointment inserts the booking. The slot-occupancy constraint
	// lives in the store; a conflicting insert surfaces as the
	// appointment.slot.taken business error.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// -------- Appointment (read) --------
	ListAppointmentsForWorkshop(
		ctx context.Context,
		workshopID uint,
	) ([]models.Appointment, error)

	ListAppointmentsForDay(
		ctx context.Context,
		workshopID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentsForPeriod(
		ctx context.Context,
		workshopID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	// -------- Appointment (state change) --------
	GetAppointmentForWorkshop(
		ctx context.Context,
		appointmentID uint,
		workshopID uint,
	) (*models.Appointment, error)

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error
}
