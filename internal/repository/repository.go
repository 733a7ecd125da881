// Package repository defines the storage contracts for the domain. Two
// implementations exist: a mutex-guarded in-memory store (the default) and a
// GORM-backed postgres store. Check-then-act sequences whose invariants span
// collections (registration capacity, profile upsert, vendor assignment,
// cascade delete) live behind this boundary so each store can make them
// atomic.
package repository

import (
	"github.com/planora/planora-backend/internal/models"
)

type UserRepository interface {
	// Create assigns an id and creation time. Fails with Conflict when the
	// email is already taken (exact, case-sensitive match).
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
}

type EventRepository interface {
	Create(event *models.Event) error
	GetByID(id string) (*models.Event, error)
	GetAll() ([]models.Event, error)
	// GetByVendorID returns events whose vendor set contains vendorID.
	GetByVendorID(vendorID string) ([]models.Event, error)
	Update(event *models.Event) error
	// Delete removes the event and all of its attendance records.
	Delete(id string) error
	// AssignVendor adds vendorID to the event's vendor set. Fails with
	// Conflict when already assigned.
	AssignVendor(eventID, vendorID string) (*models.Event, error)
	UnassignVendor(eventID, vendorID string) (*models.Event, error)
}

type VendorRepository interface {
	GetByID(id string) (*models.Vendor, error)
	GetByUserID(userID string) (*models.Vendor, error)
	GetAll() ([]models.Vendor, error)
	// Upsert creates the profile for profile.UserID with defaults, or updates
	// the mutable profile fields of the existing one. At most one profile per
	// user ever exists.
	Upsert(profile *models.Vendor) (*models.Vendor, error)
	AddService(userID string, service *models.Service) (*models.Service, error)
	// RemoveService fails with NotFound when the service id is absent, so a
	// second removal of the same id is an error.
	RemoveService(userID, serviceID string) error
	UpdateAvailability(userID string, availability models.Availability) (*models.Vendor, error)
}

type AttendanceRepository interface {
	// Register creates an attendance record for user on the event. The
	// duplicate check and the capacity check are atomic with respect to
	// concurrent registrations: NotFound on unknown event, Conflict on an
	// existing active registration, CapacityExceeded when full.
	Register(eventID string, user *models.User) (*models.Attendance, error)
	GetByEventID(eventID string) ([]models.Attendance, error)
	CountActiveByEventID(eventID string) (int, error)
}

// Repositories bundles the four collections behind one store.
type Repositories struct {
	Users      UserRepository
	Events     EventRepository
	Vendors    VendorRepository
	Attendance AttendanceRepository
}
