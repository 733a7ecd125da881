package memory

import (
	"github.com/planora/planora-backend/internal/models"
	"github.com/planora/planora-backend/pkg/apperr"
)

type AttendanceRepository struct {
	store *Store
}

func (r *AttendanceRepository) Register(eventID string, user *models.User) (*models.Attendance, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	event, ok := r.store.events[eventID]
	if !ok {
		return nil, apperr.NotFound("Event not found")
	}

	for _, id := range r.store.attendanceOrder {
		a := r.store.attendances[id]
		if a.EventID == eventID && a.UserID == user.ID && a.Status == models.AttendanceRegistered {
			return nil, apperr.Conflict("Already registered for this event")
		}
	}

	if r.store.activeAttendeeCount(eventID) >= event.Capacity {
		return nil, apperr.CapacityExceeded("Event is at full capacity")
	}

	attendance := &models.Attendance{
		ID:           newID(),
		EventID:      eventID,
		UserID:       user.ID,
		UserName:     user.Name,
		UserEmail:    user.Email,
		RegisteredAt: now(),
		Status:       models.AttendanceRegistered,
	}
	r.store.attendances[attendance.ID] = attendance
	r.store.attendanceOrder = append(r.store.attendanceOrder, attendance.ID)
	return cloneAttendance(attendance), nil
}

func (r *AttendanceRepository) GetByEventID(eventID string) ([]models.Attendance, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	attendances := []models.Attendance{}
	for _, id := range r.store.attendanceOrder {
		if r.store.attendances[id].EventID == eventID {
			attendances = append(attendances, *cloneAttendance(r.store.attendances[id]))
		}
	}
	return attendances, nil
}

func (r *AttendanceRepository) CountActiveByEventID(eventID string) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return r.store.activeAttendeeCount(eventID), nil
}
