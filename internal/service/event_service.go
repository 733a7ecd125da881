package service

import (
	"github.com/planora/planora-backend/internal/models"
	"github.com/planora/planora-backend/internal/repository"
	"github.com/planora/planora-backend/pkg/apperr"
)

type EventService struct {
	events     repository.EventRepository
	users      repository.UserRepository
	vendors    repository.VendorRepository
	attendance repository.AttendanceRepository
}

func NewEventService(
	events repository.EventRepository,
	users repository.UserRepository,
	vendors repository.VendorRepository,
	attendance repository.AttendanceRepository,
) *EventService {
	return &EventService{
		events:     events,
		users:      users,
		vendors:    vendors,
		attendance: attendance,
	}
}

func (s *EventService) CreateEvent(organizerID string, req models.EventRequest) (*models.Event, error) {
	event := &models.Event{
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Date:        req.Date,
		Location:    req.Location,
		Capacity:    req.Capacity,
		Price:       req.Price,
		OrganizerID: organizerID,
		VendorIDs:   []string{},
		Status:      models.EventUpcoming,
	}
	if err := s.events.Create(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) GetEvents() ([]models.EventSummary, error) {
	events, err := s.events.GetAll()
	if err != nil {
		return nil, err
	}

	summaries := make([]models.EventSummary, 0, len(events))
	for i := range events {
		summary, err := s.summarize(&events[i])
		if err != nil {
			return nil, err
		}
		summaries = append(summaries, *summary)
	}
	return summaries, nil
}

func (s *EventService) GetEvent(id string) (*models.EventDetail, error) {
	event, err := s.events.GetByID(id)
	if err != nil {
		return nil, err
	}

	summary, err := s.summarize(event)
	if err != nil {
		return nil, err
	}
	attendees, err := s.attendance.GetByEventID(id)
	if err != nil {
		return nil, err
	}

	return &models.EventDetail{
		EventSummary: *summary,
		Attendees:    attendees,
	}, nil
}

func (s *EventService) UpdateEvent(actorID, eventID string, req models.UpdateEventRequest) (*models.Event, error) {
	event, err := s.ownedEvent(actorID, eventID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Category != nil {
		event.Category = *req.Category
	}
	if req.Date != nil {
		event.Date = *req.Date
	}
	if req.Location != nil {
		event.Location = *req.Location
	}
	if req.Capacity != nil {
		event.Capacity = *req.Capacity
	}
	if req.Price != nil {
		event.Price = *req.Price
	}
	if req.Status != nil {
		event.Status = *req.Status
	}

	if err := s.events.Update(event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *EventService) DeleteEvent(actorID, eventID string) error {
	if _, err := s.ownedEvent(actorID, eventID); err != nil {
		return err
	}
	return s.events.Delete(eventID)
}

func (s *EventService) AssignVendor(actorID, eventID, vendorID string) (*models.EventSummary, error) {
	if _, err := s.ownedEvent(actorID, eventID); err != nil {
		return nil, err
	}
	if _, err := s.vendors.GetByID(vendorID); err != nil {
		return nil, err
	}

	event, err := s.events.AssignVendor(eventID, vendorID)
	if err != nil {
		return nil, err
	}
	return s.summarize(event)
}

func (s *EventService) UnassignVendor(actorID, eventID, vendorID string) (*models.EventSummary, error) {
	if _, err := s.ownedEvent(actorID, eventID); err != nil {
		return nil, err
	}

	event, err := s.events.UnassignVendor(eventID, vendorID)
	if err != nil {
		return nil, err
	}
	return s.summarize(event)
}

func (s *EventService) RegisterAttendance(eventID string, user *models.User) (*models.Attendance, error) {
	return s.attendance.Register(eventID, user)
}

func (s *EventService) GetAttendees(eventID string) ([]models.Attendance, error) {
	if _, err := s.events.GetByID(eventID); err != nil {
		return nil, err
	}
	return s.attendance.GetByEventID(eventID)
}

// GetVendorEvents lists the events the vendor user's profile is assigned to.
func (s *EventService) GetVendorEvents(userID string) ([]models.Event, error) {
	vendor, err := s.vendors.GetByUserID(userID)
	if err != nil {
		return nil, err
	}
	return s.events.GetByVendorID(vendor.ID)
}

func (s *EventService) ownedEvent(actorID, eventID string) (*models.Event, error) {
	event, err := s.events.GetByID(eventID)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID != actorID {
		return nil, apperr.Forbidden("Not authorized")
	}
	return event, nil
}

func (s *EventService) summarize(event *models.Event) (*models.EventSummary, error) {
	summary := &models.EventSummary{
		Event:         *event,
		VendorDetails: []models.EventVendorSummary{},
	}

	if organizer, err := s.users.GetByID(event.OrganizerID); err == nil {
		summary.Organizer = &models.OrganizerSummary{
			ID:    organizer.ID,
			Name:  organizer.Name,
			Email: organizer.Email,
		}
	}

	for _, vendorID := range event.VendorIDs {
		vendor, err := s.vendors.GetByID(vendorID)
		if err != nil {
			continue
		}
		summary.VendorDetails = append(summary.VendorDetails, models.EventVendorSummary{
			ID:            vendor.ID,
			CompanyName:   vendor.CompanyName,
			ContactNumber: vendor.ContactNumber,
		})
	}

	count, err := s.attendance.CountActiveByEventID(event.ID)
	if err != nil {
		return nil, err
	}
	summary.AttendeeCount = count
	return summary, nil
}
