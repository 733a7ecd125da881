package models

import (
	"time"
)

type EventStatus string

const (
	EventUpcoming  EventStatus = "upcoming"
	EventOngoing   EventStatus = "ongoing"
	EventCompleted EventStatus = "completed"
	EventCancelled EventStatus = "cancelled"
)

type Event struct {
	ID          string      `json:"id" gorm:"primaryKey"`
	Title       string      `json:"title" gorm:"not null"`
	Description string      `json:"description"`
	Category    string      `json:"category"`
	Date        string      `json:"date"`
	Location    string      `json:"location"`
	Capacity    int         `json:"capacity" gorm:"not null"`
	Price       float64     `json:"price" gorm:"not null"`
	OrganizerID string      `json:"organizer" gorm:"index;not null"`
	VendorIDs   []string    `json:"vendors" gorm:"serializer:json"`
	Status      EventStatus `json:"status" gorm:"not null"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// HasVendor reports whether vendorID is already assigned to the event.
func (e *Event) HasVendor(vendorID string) bool {
	for _, id := range e.VendorIDs {
		if id == vendorID {
			return true
		}
	}
	return false
}

type EventRequest struct {
	Title       string  `json:"title" validate:"required"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Date        string  `json:"date" validate:"required"`
	Location    string  `json:"location"`
	Capacity    int     `json:"capacity" validate:"required,gt=0"`
	Price       float64 `json:"price" validate:"gte=0"`
}

type UpdateEventRequest struct {
	Title       *string      `json:"title"`
	Description *string      `json:"description"`
	Category    *string      `json:"category"`
	Date        *string      `json:"date"`
	Location    *string      `json:"location"`
	Capacity    *int         `json:"capacity" validate:"omitempty,gt=0"`
	Price       *float64     `json:"price" validate:"omitempty,gte=0"`
	Status      *EventStatus `json:"status" validate:"omitempty,oneof=upcoming ongoing completed cancelled"`
}

type AssignVendorRequest struct {
	VendorID string `json:"vendorId" validate:"required"`
}

// OrganizerSummary is the organizer join shown on event reads.
type OrganizerSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// EventVendorSummary is the vendor join shown on event reads.
type EventVendorSummary struct {
	ID            string `json:"id"`
	CompanyName   string `json:"companyName"`
	ContactNumber string `json:"contactNumber"`
}

// EventSummary is an event enriched with organizer/vendor summaries and the
// active attendee count.
type EventSummary struct {
	Event
	Organizer     *OrganizerSummary    `json:"organizerInfo,omitempty"`
	VendorDetails []EventVendorSummary `json:"vendorDetails"`
	AttendeeCount int                  `json:"attendeeCount"`
}

// EventDetail additionally carries the full attendance list.
type EventDetail struct {
	EventSummary
	Attendees []Attendance `json:"attendees"`
}
