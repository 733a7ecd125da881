package models

import (
	"time"
)

type Role string

const (
	RoleOrganizer Role = "organizer"
	RoleVendor    Role = "vendor"
	RoleAttendee  Role = "attendee"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Role      Role      `json:"role" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// PublicUser is the profile shape returned by auth endpoints.
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
