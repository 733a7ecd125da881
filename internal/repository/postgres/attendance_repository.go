package postgres

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/planora/planora-backend/internal/models"
	"github.com/planora/planora-backend/pkg/apperr"
)

type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) Register(eventID string, user *models.User) (*models.Attendance, error) {
	var attendance models.Attendance
	err := r.db.Transaction(func(tx *gorm.DB) error {
		// lock the event row so concurrent registrations for the same event
		// serialize on the capacity check
		var event models.Event
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&event, "id = ?", eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("Event not found")
			}
			return apperr.Internal("failed to load event", err)
		}

		var existing int64
		if err := tx.Model(&models.Attendance{}).
			Where("event_id = ? AND user_id = ? AND status = ?", eventID, user.ID, models.AttendanceRegistered).
			Count(&existing).Error; err != nil {
			return apperr.Internal("failed to check registration", err)
		}
		if existing > 0 {
			return apperr.Conflict("Already registered for this event")
		}

		var active int64
		if err := tx.Model(&models.Attendance{}).
			Where("event_id = ? AND status = ?", eventID, models.AttendanceRegistered).
			Count(&active).Error; err != nil {
			return apperr.Internal("failed to count attendance", err)
		}
		if int(active) >= event.Capacity {
			return apperr.CapacityExceeded("Event is at full capacity")
		}

		attendance = models.Attendance{
			ID:           uuid.NewString(),
			EventID:      eventID,
			UserID:       user.ID,
			UserName:     user.Name,
			UserEmail:    user.Email,
			RegisteredAt: time.Now().UTC(),
			Status:       models.AttendanceRegistered,
		}
		if err := tx.Create(&attendance).Error; err != nil {
			return apperr.Internal("failed to create attendance", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &attendance, nil
}

func (r *AttendanceRepository) GetByEventID(eventID string) ([]models.Attendance, error) {
	attendances := []models.Attendance{}
	if err := r.db.Where("event_id = ?", eventID).Order("registered_at").Find(&attendances).Error; err != nil {
		return nil, apperr.Internal("failed to list attendance", err)
	}
	return attendances, nil
}

func (r *AttendanceRepository) CountActiveByEventID(eventID string) (int, error) {
	var count int64
	err := r.db.Model(&models.Attendance{}).
		Where("event_id = ? AND status = ?", eventID, models.AttendanceRegistered).
		Count(&count).Error
	if err != nil {
		return 0, apperr.Internal("failed to count attendance", err)
	}
	return int(count), nil
}
