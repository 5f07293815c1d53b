package appointment

import (
	"context"

	domain "github.com/autoservicehub/workshop-scheduler/internal/domain/appointment"
	"github.com/autoservicehub/workshop-scheduler/internal/dto"
)

type ListAppointments struct {
	repo domain.Repository
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{repo: repo}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	workshopSlug string,
) ([]dto.AppointmentDTO, error) {

	shop, err := uc.repo.GetWorkshopBySlug(ctx, workshopSlug)
	if err != nil {
		return nil, err
	}

	appointments, err := uc.repo.ListAppointmentsForWorkshop(ctx, shop.ID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentDTO, 0, len(appointments))
	for _, ap := range appointments {
		out = append(out, dto.AppointmentFromModel(ap, shop.Slug))
	}

	return out, nil
}
