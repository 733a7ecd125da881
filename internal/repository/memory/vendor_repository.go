package memory

import (
	"github.com/planora/planora-backend/internal/models"
	"github.com/planora/planora-backend/pkg/apperr"
)

type VendorRepository struct {
	store *Store
}

func (r *VendorRepository) GetByID(id string) (*models.Vendor, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	vendor, ok := r.store.vendors[id]
	if !ok {
		return nil, apperr.NotFound("Vendor not found")
	}
	return cloneVendor(vendor), nil
}

func (r *VendorRepository) GetByUserID(userID string) (*models.Vendor, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	vendor := r.findByUserID(userID)
	if vendor == nil {
		return nil, apperr.NotFound("Vendor profile not found")
	}
	return cloneVendor(vendor), nil
}

func (r *VendorRepository) GetAll() ([]models.Vendor, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	vendors := make([]models.Vendor, 0, len(r.store.vendorOrder))
	for _, id := range r.store.vendorOrder {
		vendors = append(vendors, *cloneVendor(r.store.vendors[id]))
	}
	return vendors, nil
}

func (r *VendorRepository) Upsert(profile *models.Vendor) (*models.Vendor, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if existing := r.findByUserID(profile.UserID); existing != nil {
		existing.CompanyName = profile.CompanyName
		existing.Description = profile.Description
		existing.ContactNumber = profile.ContactNumber
		existing.Address = profile.Address
		return cloneVendor(existing), nil
	}

	vendor := &models.Vendor{
		ID:            newID(),
		UserID:        profile.UserID,
		CompanyName:   profile.CompanyName,
		Description:   profile.Description,
		ContactNumber: profile.ContactNumber,
		Address:       profile.Address,
		Services:      []models.Service{},
		Availability:  models.AvailabilityAvailable,
		Rating:        0,
		TotalReviews:  0,
		CreatedAt:     now(),
	}
	r.store.vendors[vendor.ID] = vendor
	r.store.vendorOrder = append(r.store.vendorOrder, vendor.ID)
	return cloneVendor(vendor), nil
}

func (r *VendorRepository) AddService(userID string, service *models.Service) (*models.Service, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	vendor := r.findByUserID(userID)
	if vendor == nil {
		return nil, apperr.NotFound("Vendor profile not found")
	}

	service.ID = newID()
	service.CreatedAt = now()
	vendor.Services = append(vendor.Services, *service)
	return service, nil
}

func (r *VendorRepository) RemoveService(userID, serviceID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	vendor := r.findByUserID(userID)
	if vendor == nil {
		return apperr.NotFound("Vendor profile not found")
	}

	for i, svc := range vendor.Services {
		if svc.ID == serviceID {
			vendor.Services = append(vendor.Services[:i], vendor.Services[i+1:]...)
			return nil
		}
	}
	return apperr.NotFound("Service not found")
}

func (r *VendorRepository) UpdateAvailability(userID string, availability models.Availability) (*models.Vendor, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	vendor := r.findByUserID(userID)
	if vendor == nil {
		return nil, apperr.NotFound("Vendor profile not found")
	}

	vendor.Availability = availability
	return cloneVendor(vendor), nil
}

// findByUserID must be called with the store lock held.
func (r *VendorRepository) findByUserID(userID string) *models.Vendor {
	for _, id := range r.store.vendorOrder {
		if r.store.vendors[id].UserID == userID {
			return r.store.vendors[id]
		}
	}
	return nil
}
