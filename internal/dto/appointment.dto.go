package dto

import (
	"encoding/json"
	"time"

	"github.com/autoservicehub/workshop-scheduler/internal/models"
)

// Naive local date-time, matching what clients send.
const dateTimeLayout = "2006-01-02T15:04:05"

type AppointmentDTO struct {
	ID        uint   `json:"id"`
	Reference string `json:"reference"`

	ClientName  string `json:"clientName"`
	ClientPhone string `json:"clientPhone"`

	VehicleBrand string `json:"vehicleBrand"`
	VehicleModel string `json:"vehicleModel"`
	VehicleYear  int    `json:"vehicleYear"`
	VehiclePlate string `json:"vehiclePlate,omitempty"`

	ServiceTypes    []string `json:"serviceTypes"`
	AppointmentDate string   `json:"appointmentDate"`
	Workshop        string   `json:"workshop"`
	Status          string   `json:"status"`

	CreatedAt time.Time `json:"createdAt"`
}

// AppointmentListDTO is the lean shape for calendar listings.
type AppointmentListDTO struct {
	ID              uint     `json:"id"`
	AppointmentDate string   `json:"appointmentDate"`
	Status          string   `json:"status"`
	ClientName      string   `json:"clientName"`
	ServiceTypes    []string `json:"serviceTypes"`
}

func serviceTypes(ap models.Appointment) []string {
	var names []string
	if len(ap.ServiceTypes) > 0 {
		_ = json.Unmarshal(ap.ServiceTypes, &names)
	}
	if names == nil {
		names = []string{}
	}
	return names
}

func AppointmentFromModel(ap models.Appointment, workshopSlug string) AppointmentDTO {
	return AppointmentDTO{
		ID:              ap.ID,
		Reference:       ap.Reference,
		ClientName:      ap.ClientName,
		ClientPhone:     ap.ClientPhone,
		VehicleBrand:    ap.VehicleBrand,
		VehicleModel:    ap.VehicleModel,
		VehicleYear:     ap.VehicleYear,
		VehiclePlate:    ap.VehiclePlate,
		ServiceTypes:    serviceTypes(ap),
		AppointmentDate: ap.AppointmentDate.Format(dateTimeLayout),
		Workshop:        workshopSlug,
		Status:          ap.Status,
		CreatedAt:       ap.CreatedAt,
	}
}

func AppointmentListFromModel(ap models.Appointment) AppointmentListDTO {
	return AppointmentListDTO{
		ID:              ap.ID,
		AppointmentDate: ap.AppointmentDate.Format(dateTimeLayout),
		Status:          ap.Status,
		ClientName:      ap.ClientName,
		ServiceTypes:    serviceTypes(ap),
	}
}
