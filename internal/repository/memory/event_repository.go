package memory

import (
	"github.com/planora/planora-backend/internal/models"
	"github.com/planora/planora-backend/pkg/apperr"
)

type EventRepository struct {
	store *Store
}

func (r *EventRepository) Create(event *models.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	event.ID = newID()
	event.CreatedAt = now()
	if event.VendorIDs == nil {
		event.VendorIDs = []string{}
	}
	r.store.events[event.ID] = cloneEvent(event)
	r.store.eventOrder = append(r.store.eventOrder, event.ID)
	return nil
}

func (r *EventRepository) GetByID(id string) (*models.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	event, ok := r.store.events[id]
	if !ok {
		return nil, apperr.NotFound("Event not found")
	}
	return cloneEvent(event), nil
}

func (r *EventRepository) GetAll() ([]models.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	events := make([]models.Event, 0, len(r.store.eventOrder))
	for _, id := range r.store.eventOrder {
		events = append(events, *cloneEvent(r.store.events[id]))
	}
	return events, nil
}

func (r *EventRepository) GetByVendorID(vendorID string) ([]models.Event, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	events := []models.Event{}
	for _, id := range r.store.eventOrder {
		if r.store.events[id].HasVendor(vendorID) {
			events = append(events, *cloneEvent(r.store.events[id]))
		}
	}
	return events, nil
}

func (r *EventRepository) Update(event *models.Event) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	current, ok := r.store.events[event.ID]
	if !ok {
		return apperr.NotFound("Event not found")
	}

	// id and createdAt are immutable
	event.CreatedAt = current.CreatedAt
	r.store.events[event.ID] = cloneEvent(event)
	return nil
}

func (r *EventRepository) Delete(id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.events[id]; !ok {
		return apperr.NotFound("Event not found")
	}

	delete(r.store.events, id)
	r.store.eventOrder = removeID(r.store.eventOrder, id)

	// cascade: no attendance row may outlive its event
	kept := r.store.attendanceOrder[:0]
	for _, aid := range r.store.attendanceOrder {
		if r.store.attendances[aid].EventID == id {
			delete(r.store.attendances, aid)
			continue
		}
		kept = append(kept, aid)
	}
	r.store.attendanceOrder = kept
	return nil
}

func (r *EventRepository) AssignVendor(eventID, vendorID string) (*models.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	event, ok := r.store.events[eventID]
	if !ok {
		return nil, apperr.NotFound("Event not found")
	}
	if event.HasVendor(vendorID) {
		return nil, apperr.Conflict("Vendor already assigned to this event")
	}

	event.VendorIDs = append(event.VendorIDs, vendorID)
	return cloneEvent(event), nil
}

func (r *EventRepository) UnassignVendor(eventID, vendorID string) (*models.Event, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	event, ok := r.store.events[eventID]
	if !ok {
		return nil, apperr.NotFound("Event not found")
	}

	event.VendorIDs = removeID(event.VendorIDs, vendorID)
	return cloneEvent(event), nil
}

func removeID(ids []string, id string) []string {
	kept := make([]string, 0, len(ids))
	for _, v := range ids {
		if v != id {
			kept = append(kept, v)
		}
	}
	return kept
}
