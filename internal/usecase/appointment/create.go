package appointment

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/autoservicehub/workshop-scheduler/internal/audit"
	domain "github.com/autoservicehub/workshop-scheduler/internal/domain/appointment"
	"github.com/autoservicehub/workshop-scheduler/internal/httperr"
	"github.com/autoservicehub/workshop-scheduler/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	WorkshopSlug string

	ClientName  string
	ClientPhone string

	VehicleBrand string
	VehicleModel string
	VehicleYear  int
	VehiclePlate string

	ServiceTypes []string

	// Naive ISO local date-time, e.g. 2025-03-10T09:00:00.
	AppointmentDate string
}

var dateTimeLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

func parseAppointmentDate(raw string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateTimeLayouts {
		t, err := time.ParseInLocation(layout, raw, time.Local)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// ======================================================
// USE CASE
// ======================================================

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

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	shop, err := uc.repo.GetWorkshopBySlug(ctx, in.WorkshopSlug)
	if err != nil {
		return nil, err
	}

	start, err := parseAppointmentDate(in.AppointmentDate)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment.invalid_date")
	}

	// Bookings live on the fixed slot grid only.
	if !domain.IsSlot(domain.SlotOf(start)) {
		return nil, httperr.ErrBusiness("appointment.slot.unknown")
	}

	if len(in.ServiceTypes) == 0 {
		return nil, httperr.ErrBusiness("appointment.service.unknown")
	}

	active, err := uc.repo.ListActiveServiceTypes(ctx)
	if err != nil {
		return nil, err
	}
	known := make(map[string]bool, len(active))
	for _, st := range active {
		known[st.Name] = true
	}
	for _, name := range in.ServiceTypes {
		if !known[name] {
			return nil, httperr.ErrBusiness("appointment.service.unknown")
		}
	}

	services, err := json.Marshal(in.ServiceTypes)
	if err != nil {
		return nil, err
	}

	ap := &models.Appointment{
		Reference:       uuid.NewString(),
		WorkshopID:      shop.ID,
		ClientName:      in.ClientName,
		ClientPhone:     in.ClientPhone,
		VehicleBrand:    in.VehicleBrand,
		VehicleModel:    in.VehicleModel,
		VehicleYear:     in.VehicleYear,
		VehiclePlate:    in.VehiclePlate,
		ServiceTypes:    services,
		AppointmentDate: start,
		Status:          string(domain.InitialStatus()),
	}

	// The advisory availability read happens on a separate request; the
	// store's slot constraint is what actually prevents double booking.
	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		WorkshopID: shop.ID,
		Action:     "appointment_created",
		Entity:     "appointment",
		EntityID:   &ap.ID,
	})

	return ap, nil
}
