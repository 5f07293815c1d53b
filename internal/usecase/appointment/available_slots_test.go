package appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/autoservicehub/workshop-scheduler/internal/domain/appointment"
	"github.com/autoservicehub/workshop-scheduler/internal/httperr"
)

func availabilityOn(t *testing.T, uc *GetAvailableSlots, slug string, date time.Time) *domain.AvailableSlots {
	t.Helper()

	out, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		WorkshopSlug: slug,
		Date:         date,
	})
	require.NoError(t, err)
	return out
}

func TestAvailableSlotsEmptyDay(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailableSlots(repo)

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	out := availabilityOn(t, uc, "oficina-centro", day)

	assert.Equal(t, "2025-03-10", out.Date)
	assert.Equal(t, domain.Slots(), out.TimeSlots)
}

func TestAvailableSlotsOmitsBookedTimes(t *testing.T) {
	repo := newFakeRepo()
	createUC := NewCreateAppointment(repo, newTestDispatcher(t))
	uc := NewGetAvailableSlots(repo)

	in := validCreateInput()
	in.AppointmentDate = "2025-03-10T09:00:00"
	_, err := createUC.Execute(context.Background(), in)
	require.NoError(t, err)

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	out := availabilityOn(t, uc, "oficina-centro", day)

	assert.Len(t, out.TimeSlots, len(domain.Slots())-1)
	assert.NotContains(t, out.TimeSlots, "09:00")
	assert.Equal(t, []string{"08:00", "10:00", "11:00", "14:00", "15:00", "16:00", "17:00"}, out.TimeSlots)
}

func TestAvailableSlotsIgnoresCancelled(t *testing.T) {
	repo := newFakeRepo()
	createUC := NewCreateAppointment(repo, newTestDispatcher(t))
	cancelUC := NewCancelAppointment(repo, newTestDispatcher(t))
	uc := NewGetAvailableSlots(repo)

	ap, err := createUC.Execute(context.Background(), validCreateInput())
	require.NoError(t, err)

	_, err = cancelUC.Execute(context.Background(), "oficina-centro", 1, ap.ID)
	require.NoError(t, err)

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	out := availabilityOn(t, uc, "oficina-centro", day)

	assert.Contains(t, out.TimeSlots, "09:00")
	assert.Equal(t, domain.Slots(), out.TimeSlots)
}

func TestAvailableSlotsScopedToWorkshop(t *testing.T) {
	repo := newFakeRepo()
	createUC := NewCreateAppointment(repo, newTestDispatcher(t))
	uc := NewGetAvailableSlots(repo)

	_, err := createUC.Execute(context.Background(), validCreateInput())
	require.NoError(t, err)

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.Local)
	out := availabilityOn(t, uc, "oficina-zona-sul", day)

	assert.Equal(t, domain.Slots(), out.TimeSlots)
}

func TestAvailableSlotsScopedToDay(t *testing.T) {
	repo := newFakeRepo()
	createUC := NewCreateAppointment(repo, newTestDispatcher(t))
	uc := NewGetAvailableSlots(repo)

	_, err := createUC.Execute(context.Background(), validCreateInput())
	require.NoError(t, err)

	nextDay := time.Date(2025, 3, 11, 0, 0, 0, 0, time.Local)
	out := availabilityOn(t, uc, "oficina-centro", nextDay)

	assert.Equal(t, "2025-03-11", out.Date)
	assert.Equal(t, domain.Slots(), out.TimeSlots)
}

func TestAvailableSlotsUnknownWorkshop(t *testing.T) {
	repo := newFakeRepo()
	uc := NewGetAvailableSlots(repo)

	_, err := uc.Execute(context.Background(), domain.AvailabilityInput{
		WorkshopSlug: "no-such-shop",
		Date:         time.Now(),
	})
	require.Error(t, err)
	assert.True(t, httperr.IsBusiness(err, "workshop.not_found"))
}
