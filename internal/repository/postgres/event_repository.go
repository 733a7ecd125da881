package postgres

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/planora/planora-backend/internal/models"
	"github.com/planora/planora-backend/pkg/apperr"
)

type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

func (r *EventRepository) Create(event *models.Event) error {
	event.ID = uuid.NewString()
	if event.VendorIDs == nil {
		event.VendorIDs = []string{}
	}
	if err := r.db.Create(event).Error; err != nil {
		return apperr.Internal("failed to create event", err)
	}
	return nil
}

func (r *EventRepository) GetByID(id string) (*models.Event, error) {
	var event models.Event
	if err := r.db.First(&event, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Event not found")
		}
		return nil, apperr.Internal("failed to load event", err)
	}
	return &event, nil
}

func (r *EventRepository) GetAll() ([]models.Event, error) {
	var events []models.Event
	if err := r.db.Order("created_at").Find(&events).Error; err != nil {
		return nil, apperr.Internal("failed to list events", err)
	}
	return events, nil
}

func (r *EventRepository) GetByVendorID(vendorID string) ([]models.Event, error) {
	// vendor sets are stored as JSON arrays; this scan is O(n), which the
	// data volume allows
	all, err := r.GetAll()
	if err != nil {
		return nil, err
	}
	events := []models.Event{}
	for _, e := range all {
		if e.HasVendor(vendorID) {
			events = append(events, e)
		}
	}
	return events, nil
}

func (r *EventRepository) Update(event *models.Event) error {
	result := r.db.Model(&models.Event{}).Where("id = ?", event.ID).
		Select("Title", "Description", "Category", "Date", "Location", "Capacity", "Price", "VendorIDs", "Status").
		Updates(event)
	if result.Error != nil {
		return apperr.Internal("failed to update event", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound("Event not found")
	}
	return nil
}

func (r *EventRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Delete(&models.Event{}, "id = ?", id)
		if result.Error != nil {
			return apperr.Internal("failed to delete event", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperr.NotFound("Event not found")
		}
		if err := tx.Delete(&models.Attendance{}, "event_id = ?", id).Error; err != nil {
			return apperr.Internal("failed to delete event attendance", err)
		}
		return nil
	})
}

func (r *EventRepository) AssignVendor(eventID, vendorID string) (*models.Event, error) {
	var event models.Event
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&event, "id = ?", eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("Event not found")
			}
			return apperr.Internal("failed to load event", err)
		}
		if event.HasVendor(vendorID) {
			return apperr.Conflict("Vendor already assigned to this event")
		}
		event.VendorIDs = append(event.VendorIDs, vendorID)
		if err := tx.Model(&event).Update("VendorIDs", event.VendorIDs).Error; err != nil {
			return apperr.Internal("failed to assign vendor", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}

func (r *EventRepository) UnassignVendor(eventID, vendorID string) (*models.Event, error) {
	var event models.Event
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&event, "id = ?", eventID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("Event not found")
			}
			return apperr.Internal("failed to load event", err)
		}
		kept := make([]string, 0, len(event.VendorIDs))
		for _, id := range event.VendorIDs {
			if id != vendorID {
				kept = append(kept, id)
			}
		}
		event.VendorIDs = kept
		if err := tx.Model(&event).Update("VendorIDs", event.VendorIDs).Error; err != nil {
			return apperr.Internal("failed to unassign vendor", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &event, nil
}
