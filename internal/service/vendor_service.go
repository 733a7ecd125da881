package service

import (
	"github.com/planora/planora-backend/internal/models"
	"github.com/planora/planora-backend/internal/repository"
	"github.com/planora/planora-backend/pkg/apperr"
)

type VendorService struct {
	vendors repository.VendorRepository
}

func NewVendorService(vendors repository.VendorRepository) *VendorService {
	return &VendorService{vendors: vendors}
}

func (s *VendorService) UpsertProfile(userID string, req models.VendorProfileRequest) (*models.Vendor, error) {
	return s.vendors.Upsert(&models.Vendor{
		UserID:        userID,
		CompanyName:   req.CompanyName,
		Description:   req.Description,
		ContactNumber: req.ContactNumber,
		Address:       req.Address,
	})
}

func (s *VendorService) GetProfile(userID string) (*models.Vendor, error) {
	return s.vendors.GetByUserID(userID)
}

func (s *VendorService) GetVendor(id string) (*models.Vendor, error) {
	return s.vendors.GetByID(id)
}

// GetVendors is the public directory view; services are omitted by contract.
func (s *VendorService) GetVendors() ([]models.VendorSummary, error) {
	vendors, err := s.vendors.GetAll()
	if err != nil {
		return nil, err
	}

	summaries := make([]models.VendorSummary, 0, len(vendors))
	for i := range vendors {
		summaries = append(summaries, vendors[i].Summary())
	}
	return summaries, nil
}

func (s *VendorService) AddService(userID string, req models.ServiceRequest) (*models.Service, error) {
	return s.vendors.AddService(userID, &models.Service{
		Name:        req.Name,
		Category:    req.Category,
		Description: req.Description,
		Price:       req.Price,
	})
}

func (s *VendorService) RemoveService(userID, serviceID string) error {
	return s.vendors.RemoveService(userID, serviceID)
}

func (s *VendorService) SetAvailability(userID string, availability models.Availability) (*models.Vendor, error) {
	switch availability {
	case models.AvailabilityAvailable, models.AvailabilityBusy, models.AvailabilityUnavailable:
	default:
		return nil, apperr.Validation("Invalid availability value")
	}
	return s.vendors.UpdateAvailability(userID, availability)
}
