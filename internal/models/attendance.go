package models

import (
	"time"
)

type AttendanceStatus string

const (
	AttendanceRegistered AttendanceStatus = "registered"
	AttendanceCancelled  AttendanceStatus = "cancelled"
)

type Attendance struct {
	ID           string           `json:"id" gorm:"primaryKey"`
	EventID      string           `json:"eventId" gorm:"index;not null"`
	UserID       string           `json:"userId" gorm:"index;not null"`
	UserName     string           `json:"userName"`
	UserEmail    string           `json:"userEmail"`
	RegisteredAt time.Time        `json:"registeredAt"`
	Status       AttendanceStatus `json:"status" gorm:"not null"`
}
