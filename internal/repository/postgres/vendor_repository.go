package postgres

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/planora/planora-backend/internal/models"
	"github.com/planora/planora-backend/pkg/apperr"
)

type VendorRepository struct {
	db *gorm.DB
}

func NewVendorRepository(db *gorm.DB) *VendorRepository {
	return &VendorRepository{db: db}
}

func (r *VendorRepository) GetByID(id string) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := r.db.First(&vendor, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Vendor not found")
		}
		return nil, apperr.Internal("failed to load vendor", err)
	}
	return &vendor, nil
}

func (r *VendorRepository) GetByUserID(userID string) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := r.db.First(&vendor, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("Vendor profile not found")
		}
		return nil, apperr.Internal("failed to load vendor", err)
	}
	return &vendor, nil
}

func (r *VendorRepository) GetAll() ([]models.Vendor, error) {
	var vendors []models.Vendor
	if err := r.db.Order("created_at").Find(&vendors).Error; err != nil {
		return nil, apperr.Internal("failed to list vendors", err)
	}
	return vendors, nil
}

func (r *VendorRepository) Upsert(profile *models.Vendor) (*models.Vendor, error) {
	var vendor models.Vendor
	err := r.db.Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&vendor, "user_id = ?", profile.UserID).Error
		if err == nil {
			vendor.CompanyName = profile.CompanyName
			vendor.Description = profile.Description
			vendor.ContactNumber = profile.ContactNumber
			vendor.Address = profile.Address
			if err := tx.Save(&vendor).Error; err != nil {
				return apperr.Internal("failed to update vendor profile", err)
			}
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Internal("failed to load vendor", err)
		}

		vendor = models.Vendor{
			ID:            uuid.NewString(),
			UserID:        profile.UserID,
			CompanyName:   profile.CompanyName,
			Description:   profile.Description,
			ContactNumber: profile.ContactNumber,
			Address:       profile.Address,
			Services:      []models.Service{},
			Availability:  models.AvailabilityAvailable,
			Rating:        0,
			TotalReviews:  0,
		}
		if err := tx.Create(&vendor).Error; err != nil {
			return apperr.Internal("failed to create vendor profile", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *VendorRepository) AddService(userID string, service *models.Service) (*models.Service, error) {
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var vendor models.Vendor
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&vendor, "user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("Vendor profile not found")
			}
			return apperr.Internal("failed to load vendor", err)
		}
		service.ID = uuid.NewString()
		vendor.Services = append(vendor.Services, *service)
		if err := tx.Model(&vendor).Update("Services", vendor.Services).Error; err != nil {
			return apperr.Internal("failed to add service", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return service, nil
}

func (r *VendorRepository) RemoveService(userID, serviceID string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var vendor models.Vendor
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&vendor, "user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("Vendor profile not found")
			}
			return apperr.Internal("failed to load vendor", err)
		}
		for i, svc := range vendor.Services {
			if svc.ID == serviceID {
				vendor.Services = append(vendor.Services[:i], vendor.Services[i+1:]...)
				if err := tx.Model(&vendor).Update("Services", vendor.Services).Error; err != nil {
					return apperr.Internal("failed to remove service", err)
				}
				return nil
			}
		}
		return apperr.NotFound("Service not found")
	})
}

func (r *VendorRepository) UpdateAvailability(userID string, availability models.Availability) (*models.Vendor, error) {
	var vendor models.Vendor
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&vendor, "user_id = ?", userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("Vendor profile not found")
			}
			return apperr.Internal("failed to load vendor", err)
		}
		vendor.Availability = availability
		if err := tx.Model(&vendor).Update("Availability", availability).Error; err != nil {
			return apperr.Internal("failed to update availability", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}
