// Package memory is the default store: process-local collections guarded by a
// single lock. Data is volatile and lost on restart. Because every operation
// holds the store lock, check-then-act sequences that span collections
// (capacity + insert, upsert, cascade delete) are serial, which is what keeps
// the capacity and uniqueness invariants intact under concurrent requests.
package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/planora/planora-backend/internal/models"
	"github.com/planora/planora-backend/internal/repository"
)

type Store struct {
	mu sync.RWMutex

	users       map[string]*models.User
	events      map[string]*models.Event
	vendors     map[string]*models.Vendor
	attendances map[string]*models.Attendance

	// insertion order for listings
	eventOrder      []string
	vendorOrder     []string
	attendanceOrder []string
}

func NewStore() *Store {
	return &Store{
		users:       make(map[string]*models.User),
		events:      make(map[string]*models.Event),
		vendors:     make(map[string]*models.Vendor),
		attendances: make(map[string]*models.Attendance),
	}
}

// NewRepositories returns the repository set backed by a fresh store.
func NewRepositories() *repository.Repositories {
	s := NewStore()
	return &repository.Repositories{
		Users:      &UserRepository{store: s},
		Events:     &EventRepository{store: s},
		Vendors:    &VendorRepository{store: s},
		Attendance: &AttendanceRepository{store: s},
	}
}

func newID() string {
	return uuid.NewString()
}

func now() time.Time {
	return time.Now().UTC()
}

// Stored records are never handed out directly; reads and writes exchange
// copies so callers cannot mutate shared state outside the lock.

func cloneUser(u *models.User) *models.User {
	c := *u
	return &c
}

func cloneEvent(e *models.Event) *models.Event {
	c := *e
	c.VendorIDs = append([]string(nil), e.VendorIDs...)
	return &c
}

func cloneVendor(v *models.Vendor) *models.Vendor {
	c := *v
	c.Services = append([]models.Service(nil), v.Services...)
	return &c
}

func cloneAttendance(a *models.Attendance) *models.Attendance {
	c := *a
	return &c
}

func (s *Store) activeAttendeeCount(eventID string) int {
	count := 0
	for _, id := range s.attendanceOrder {
		a := s.attendances[id]
		if a.EventID == eventID && a.Status == models.AttendanceRegistered {
			count++
		}
	}
	return count
}
