package models

import "time"

type UserType string

const (
	UserTypeAdmin    UserType = "ADMIN"
	UserTypeWorkshop UserType = "WORKSHOP"
	UserTypeCustomer UserType = "CUSTOMER"
)

func (t UserType) Valid() bool {
	switch t {
	case UserTypeAdmin, UserTypeWorkshop, UserTypeCustomer:
		return true
	}
	return false
}

// Staff returns true for accounts allowed into the management API.
func (t UserType) Staff() bool {
	return t == UserTypeAdmin || t == UserTypeWorkshop
}

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Name         string   `gorm:"size:100;not null" json:"name"`
	Email        string   `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"size:255;not null" json:"-"`
	Phone        string   `gorm:"size:20;not null" json:"phone"`
	UserType     UserType `gorm:"size:20;not null;default:'WORKSHOP'" json:"userType"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
