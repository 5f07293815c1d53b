package models

import (
	"time"

	"gorm.io/datatypes"
)

type Appointment struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Reference string `gorm:"size:36;uniqueIndex;not null" json:"reference"`

	WorkshopID uint     `json:"workshop_id"`
	Workshop   Workshop `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	ClientName  string `gorm:"size:100;not null" json:"clientName"`
	ClientPhone string `gorm:"size:20;not null" json:"clientPhone"`

	VehicleBrand string `gorm:"size:50;not null" json:"vehicleBrand"`
	VehicleModel string `gorm:"size:50;not null" json:"vehicleModel"`
	VehicleYear  int    `gorm:"not null" json:"vehicleYear"`
	VehiclePlate string `gorm:"size:10" json:"vehiclePlate"`

	// One or more service type names, stored as a JSON array.
	ServiceTypes datatypes.JSON `json:"serviceTypes"`

	// Naive local date-time; the slot is its HH:mm component.
	AppointmentDate time.Time `gorm:"not null" json:"appointmentDate"`

	Status string `gorm:"size:24;default:'PENDING_CONFIRMATION'" json:"status"`

	ConfirmedAt *time.Time `json:"confirmed_at"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
