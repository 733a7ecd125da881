package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planora/planora-backend/internal/models"
	"github.com/planora/planora-backend/internal/repository"
	"github.com/planora/planora-backend/internal/repository/memory"
	"github.com/planora/planora-backend/pkg/apperr"
)

func newEventService() (*EventService, *VendorService, *repository.Repositories) {
	repos := memory.NewRepositories()
	events := NewEventService(repos.Events, repos.Users, repos.Vendors, repos.Attendance)
	vendors := NewVendorService(repos.Vendors)
	return events, vendors, repos
}

func seedUser(t *testing.T, repos *repository.Repositories, email string, role models.Role) *models.User {
	t.Helper()
	user := &models.User{Name: "User " + email, Email: email, Password: "hash", Role: role}
	require.NoError(t, repos.Users.Create(user))
	return user
}

func TestCreateEventDefaults(t *testing.T) {
	svc, _, repos := newEventService()
	organizer := seedUser(t, repos, "org@example.com", models.RoleOrganizer)

	event, err := svc.CreateEvent(organizer.ID, models.EventRequest{
		Title:    "Expo",
		Date:     "2026-11-05",
		Capacity: 100,
		Price:    49.90,
	})
	require.NoError(t, err)
	assert.Equal(t, models.EventUpcoming, event.Status)
	assert.Equal(t, organizer.ID, event.OrganizerID)
	assert.Empty(t, event.VendorIDs)
}

func TestUpdateEventRequiresOwnership(t *testing.T) {
	svc, _, repos := newEventService()
	organizerA := seedUser(t, repos, "a@example.com", models.RoleOrganizer)
	organizerB := seedUser(t, repos, "b@example.com", models.RoleOrganizer)

	event, err := svc.CreateEvent(organizerA.ID, models.EventRequest{Title: "Expo", Date: "2026-11-05", Capacity: 10})
	require.NoError(t, err)

	title := "Hijacked"
	_, err = svc.UpdateEvent(organizerB.ID, event.ID, models.UpdateEventRequest{Title: &title})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))

	title = "Renamed"
	updated, err := svc.UpdateEvent(organizerA.ID, event.ID, models.UpdateEventRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Title)
}

func TestUpdateEventMergesOnlyProvidedFields(t *testing.T) {
	svc, _, repos := newEventService()
	organizer := seedUser(t, repos, "org@example.com", models.RoleOrganizer)

	event, err := svc.CreateEvent(organizer.ID, models.EventRequest{
		Title:       "Expo",
		Description: "annual",
		Date:        "2026-11-05",
		Capacity:    10,
		Price:       5,
	})
	require.NoError(t, err)

	status := models.EventCancelled
	updated, err := svc.UpdateEvent(organizer.ID, event.ID, models.UpdateEventRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.EventCancelled, updated.Status)
	assert.Equal(t, "Expo", updated.Title)
	assert.Equal(t, "annual", updated.Description)
	assert.Equal(t, 10, updated.Capacity)
}

func TestDeleteEventRequiresOwnershipAndCascades(t *testing.T) {
	svc, _, repos := newEventService()
	organizer := seedUser(t, repos, "org@example.com", models.RoleOrganizer)
	intruder := seedUser(t, repos, "x@example.com", models.RoleOrganizer)
	attendee := seedUser(t, repos, "att@example.com", models.RoleAttendee)

	event, err := svc.CreateEvent(organizer.ID, models.EventRequest{Title: "Expo", Date: "2026-11-05", Capacity: 10})
	require.NoError(t, err)
	_, err = svc.RegisterAttendance(event.ID, attendee)
	require.NoError(t, err)

	err = svc.DeleteEvent(intruder.ID, event.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindForbidden))

	require.NoError(t, svc.DeleteEvent(organizer.ID, event.ID))

	_, err = svc.GetAttendees(event.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestAssignVendorChecksVendorExists(t *testing.T) {
	svc, vendorSvc, repos := newEventService()
	organizer := seedUser(t, repos, "org@example.com", models.RoleOrganizer)
	vendorUser := seedUser(t, repos, "v@example.com", models.RoleVendor)

	event, err := svc.CreateEvent(organizer.ID, models.EventRequest{Title: "Expo", Date: "2026-11-05", Capacity: 10})
	require.NoError(t, err)

	_, err = svc.AssignVendor(organizer.ID, event.ID, "ghost-vendor")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	vendor, err := vendorSvc.UpsertProfile(vendorUser.ID, models.VendorProfileRequest{CompanyName: "Acme"})
	require.NoError(t, err)

	summary, err := svc.AssignVendor(organizer.ID, event.ID, vendor.ID)
	require.NoError(t, err)
	require.Len(t, summary.VendorDetails, 1)
	assert.Equal(t, "Acme", summary.VendorDetails[0].CompanyName)

	_, err = svc.AssignVendor(organizer.ID, event.ID, vendor.ID)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestGetEventIncludesAttendees(t *testing.T) {
	svc, _, repos := newEventService()
	organizer := seedUser(t, repos, "org@example.com", models.RoleOrganizer)
	attendee := seedUser(t, repos, "att@example.com", models.RoleAttendee)

	event, err := svc.CreateEvent(organizer.ID, models.EventRequest{Title: "Expo", Date: "2026-11-05", Capacity: 10})
	require.NoError(t, err)
	_, err = svc.RegisterAttendance(event.ID, attendee)
	require.NoError(t, err)

	detail, err := svc.GetEvent(event.ID)
	require.NoError(t, err)
	require.Len(t, detail.Attendees, 1)
	assert.Equal(t, attendee.ID, detail.Attendees[0].UserID)
	assert.Equal(t, 1, detail.AttendeeCount)
	require.NotNil(t, detail.Organizer)
	assert.Equal(t, organizer.Email, detail.Organizer.Email)
}

func TestGetVendorEvents(t *testing.T) {
	svc, vendorSvc, repos := newEventService()
	organizer := seedUser(t, repos, "org@example.com", models.RoleOrganizer)
	vendorUser := seedUser(t, repos, "v@example.com", models.RoleVendor)

	vendor, err := vendorSvc.UpsertProfile(vendorUser.ID, models.VendorProfileRequest{CompanyName: "Acme"})
	require.NoError(t, err)

	event, err := svc.CreateEvent(organizer.ID, models.EventRequest{Title: "Expo", Date: "2026-11-05", Capacity: 10})
	require.NoError(t, err)
	_, err = svc.AssignVendor(organizer.ID, event.ID, vendor.ID)
	require.NoError(t, err)

	events, err := svc.GetVendorEvents(vendorUser.ID)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, event.ID, events[0].ID)
}
