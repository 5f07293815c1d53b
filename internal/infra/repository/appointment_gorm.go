package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	domain "github.com/autoservicehub/workshop-scheduler/internal/domain/appointment"
	"github.com/autoservicehub/workshop-scheduler/internal/httperr"
	"github.com/autoservicehub/workshop-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

// --------------------------------------------------
// Workshop
// --------------------------------------------------

func (r *AppointmentGormRepository) GetWorkshopBySlug(
	ctx context.Context,
	slug string,
) (*models.Workshop, error) {

	var shop models.Workshop
	if err := r.db.WithContext(ctx).
		Where("slug = ?", slug).
		First(&shop).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("workshop.not_found")
		}
		return nil, err
	}
	return &shop, nil
}

// --------------------------------------------------
// Service types
// --------------------------------------------------

func (r *AppointmentGormRepository) ListActiveServiceTypes(
	ctx context.Context,
) ([]models.ServiceType, error) {

	var types []models.ServiceType
	if err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("name ASC").
		Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// --------------------------------------------------
// Appointment
// --------------------------------------------------

// CreateAppointment relies on the partial unique index over
// (workshop_id, appointment_date) to reject double bookings, so two
// concurrent inserts for the same slot cannot both succeed.
func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {

	if err := r.db.WithContext(ctx).Create(ap).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return httperr.ErrBusiness("appointment.slot.taken")
		}
		return err
	}
	return nil
}

func (r *AppointmentGormRepository) ListAppointmentsForWorkshop(
	ctx context.Context,
	workshopID uint,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where("workshop_id = ?", workshopID).
		Order("appointment_date ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForDay(
	ctx context.Context,
	workshopID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"workshop_id = ? AND status <> ? AND appointment_date >= ? AND appointment_date < ?",
			workshopID, string(domain.StatusCancelled), start, end,
		).
		Order("appointment_date ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (r *AppointmentGormRepository) ListAppointmentsForPeriod(
	ctx context.Context,
	workshopID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"workshop_id = ? AND appointment_date >= ? AND appointment_date < ?",
			workshopID, start, end,
		).
		Order("appointment_date ASC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// --------------------------------------------------
// Appointment (state change)
// --------------------------------------------------

func (r *AppointmentGormRepository) GetAppointmentForWorkshop(
	ctx context.Context,
	appointmentID uint,
	workshopID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND workshop_id = ?", appointmentID, workshopID).
		First(&ap).Error; err != nil {

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("appointment.not_found")
		}
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)
