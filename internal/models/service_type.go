package models

import "time"

type ServiceType struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name     string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	IsActive bool   `gorm:"default:true" json:"isActive"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
