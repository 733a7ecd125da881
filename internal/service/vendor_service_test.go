package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/planora/planora-backend/internal/models"
	"github.com/planora/planora-backend/internal/repository/memory"
	"github.com/planora/planora-backend/pkg/apperr"
)

func TestUpsertProfileTwiceKeepsOneProfile(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewVendorService(repos.Vendors)
	user := seedUser(t, repos, "v@example.com", models.RoleVendor)

	first, err := svc.UpsertProfile(user.ID, models.VendorProfileRequest{CompanyName: "Acme"})
	require.NoError(t, err)

	second, err := svc.UpsertProfile(user.ID, models.VendorProfileRequest{CompanyName: "Acme Events", Address: "5 Main St"})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, "Acme Events", second.CompanyName)
	assert.Equal(t, "5 Main St", second.Address)

	summaries, err := svc.GetVendors()
	require.NoError(t, err)
	assert.Len(t, summaries, 1)
}

func TestSetAvailabilityRejectsUnknownValue(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewVendorService(repos.Vendors)
	user := seedUser(t, repos, "v@example.com", models.RoleVendor)

	_, err := svc.UpsertProfile(user.ID, models.VendorProfileRequest{CompanyName: "Acme"})
	require.NoError(t, err)

	_, err = svc.SetAvailability(user.ID, "on-vacation")
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	vendor, err := svc.SetAvailability(user.ID, models.AvailabilityBusy)
	require.NoError(t, err)
	assert.Equal(t, models.AvailabilityBusy, vendor.Availability)
}

func TestSetAvailabilityWithoutProfile(t *testing.T) {
	repos := memory.NewRepositories()
	svc := NewVendorService(repos.Vendors)
	user := seedUser(t, repos, "v@example.com", models.RoleVendor)

	_, err := svc.SetAvailability(user.ID, models.AvailabilityBusy)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}
