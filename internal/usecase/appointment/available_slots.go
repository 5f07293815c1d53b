package appointment

import (
	"context"
	"time"

	domain "github.com/autoservicehub/workshop-scheduler/internal/domain/appointment"
)

type GetAvailableSlots struct {
	repo domain.Repository
}

func NewGetAvailableSlots(repo domain.Repository) *GetAvailableSlots {
	return &GetAvailableSlots{repo: repo}
}

// Execute subtracts the booked HH:mm times of a workshop's day from the
// fixed slot catalog, preserving catalog order.
func (uc *GetAvailableSlots) Execute(
	ctx context.Context,
	in domain.AvailabilityInput,
) (*domain.AvailableSlots, error) {

	shop, err := uc.repo.GetWorkshopBySlug(ctx, in.WorkshopSlug)
	if err != nil {
		return nil, err
	}

	dayStart := time.Date(
		in.Date.Year(), in.Date.Month(), in.Date.Day(),
		0, 0, 0, 0,
		in.Date.Location(),
	)
	dayEnd := dayStart.Add(24 * time.Hour)

	appointments, err := uc.repo.ListAppointmentsForDay(
		ctx,
		shop.ID,
		dayStart,
		dayEnd,
	)
	if err != nil {
		return nil, err
	}

	booked := make(map[string]bool, len(appointments))
	for _, ap := range appointments {
		if domain.Status(ap.Status).Booked() {
			booked[domain.SlotOf(ap.AppointmentDate)] = true
		}
	}

	free := make([]string, 0, len(domain.Slots()))
	for _, slot := range domain.Slots() {
		if !booked[slot] {
			free = append(free, slot)
		}
	}

	return &domain.AvailableSlots{
		Date:      dayStart.Format("2006-01-02"),
		TimeSlots: free,
	}, nil
}
