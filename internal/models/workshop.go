package models

import (
	"time"

	"gorm.io/datatypes"
)

// WorkshopContent is the localized half of a workshop: everything a
// customer reads in their own language.
type WorkshopContent struct {
	Description string   `json:"description"`
	Hours       string   `json:"hours"`
	Services    []string `json:"services"`
}

type Workshop struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
	Slug string `gorm:"size:100;uniqueIndex;not null" json:"workshopId"`

	Address string  `gorm:"size:255;not null" json:"address"`
	Phone   string  `gorm:"size:20" json:"phone"`
	Rating  float64 `gorm:"type:numeric(2,1)" json:"rating"`

	// Locale tag -> WorkshopContent, resolved against the request locale
	// with fallback to RegistrationLanguage.
	Content datatypes.JSON `json:"-"`

	RegistrationLanguage string `gorm:"size:10;not null;default:'pt-BR'" json:"registrationLanguage"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
