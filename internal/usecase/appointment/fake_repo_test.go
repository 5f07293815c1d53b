package appointment

import (
	"context"
	"time"

	domain "github.com/autoservicehub/workshop-scheduler/internal/domain/appointment"
	"github.com/autoservicehub/workshop-scheduler/internal/httperr"
	"github.com/autoservicehub/workshop-scheduler/internal/models"
)

// fakeRepo keeps everything in slices and enforces the same slot-occupancy
// rule the store's unique index enforces.
type fakeRepo struct {
	workshops    []*models.Workshop
	serviceTypes []models.ServiceType
	appointments []*models.Appointment
	nextID       uint
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		workshops: []*models.Workshop{
			{ID: 1, Name: "Oficina Centro", Slug: "oficina-centro"},
			{ID: 2, Name: "Oficina Zona Sul", Slug: "oficina-zona-sul"},
		},
		serviceTypes: []models.ServiceType{
			{ID: 1, Name: "Troca de óleo", IsActive: true},
			{ID: 2, Name: "Freios", IsActive: true},
		},
	}
}

func (r *fakeRepo) GetWorkshopBySlug(_ context.Context, slug string) (*models.Workshop, error) {
	for _, w := range r.workshops {
		if w.Slug == slug {
			return w, nil
		}
	}
	return nil, httperr.ErrBusiness("workshop.not_found")
}

func (r *fakeRepo) ListActiveServiceTypes(_ context.Context) ([]models.ServiceType, error) {
	return r.serviceTypes, nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	for _, existing := range r.appointments {
		if existing.WorkshopID == ap.WorkshopID &&
			existing.AppointmentDate.Equal(ap.AppointmentDate) &&
			domain.Status(existing.Status).Booked() {
			return httperr.ErrBusiness("appointment.slot.taken")
		}
	}

	r.nextID++
	ap.ID = r.nextID
	r.appointments = append(r.appointments, ap)
	return nil
}

func (r *fakeRepo) ListAppointmentsForWorkshop(_ context.Context, workshopID uint) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0)
	for _, ap := range r.appointments {
		if ap.WorkshopID == workshopID {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForDay(_ context.Context, workshopID uint, start, end time.Time) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0)
	for _, ap := range r.appointments {
		if ap.WorkshopID == workshopID &&
			domain.Status(ap.Status).Booked() &&
			!ap.AppointmentDate.Before(start) &&
			ap.AppointmentDate.Before(end) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) ListAppointmentsForPeriod(_ context.Context, workshopID uint, start, end time.Time) ([]models.Appointment, error) {
	out := make([]models.Appointment, 0)
	for _, ap := range r.appointments {
		if ap.WorkshopID == workshopID &&
			!ap.AppointmentDate.Before(start) &&
			ap.AppointmentDate.Before(end) {
			out = append(out, *ap)
		}
	}
	return out, nil
}

func (r *fakeRepo) GetAppointmentForWorkshop(_ context.Context, appointmentID, workshopID uint) (*models.Appointment, error) {
	for _, ap := range r.appointments {
		if ap.ID == appointmentID && ap.WorkshopID == workshopID {
			return ap, nil
		}
	}
	return nil, httperr.ErrBusiness("appointment.not_found")
}

func (r *fakeRepo) UpdateAppointment(_ context.Context, ap *models.Appointment) error {
	for i, existing := range r.appointments {
		if existing.ID == ap.ID {
			r.appointments[i] = ap
			return nil
		}
	}
	return httperr.ErrBusiness("appointment.not_found")
}

var _ domain.Repository = (*fakeRepo)(nil)
