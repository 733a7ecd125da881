package models

import (
	"time"
)

type Availability string

const (
	AvailabilityAvailable   Availability = "available"
	AvailabilityBusy        Availability = "busy"
	AvailabilityUnavailable Availability = "unavailable"
)

type Service struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Vendor struct {
	ID            string       `json:"id" gorm:"primaryKey"`
	UserID        string       `json:"userId" gorm:"uniqueIndex;not null"`
	CompanyName   string       `json:"companyName"`
	Description   string       `json:"description"`
	ContactNumber string       `json:"contactNumber"`
	Address       string       `json:"address"`
	Services      []Service    `json:"services" gorm:"serializer:json"`
	Availability  Availability `json:"availability" gorm:"not null"`
	Rating        float64      `json:"rating"`
	TotalReviews  int          `json:"totalReviews"`
	CreatedAt     time.Time    `json:"createdAt"`
}

// VendorSummary is the directory view: profile fields without services.
type VendorSummary struct {
	ID            string       `json:"id"`
	UserID        string       `json:"userId"`
	CompanyName   string       `json:"companyName"`
	Description   string       `json:"description"`
	ContactNumber string       `json:"contactNumber"`
	Address       string       `json:"address"`
	Availability  Availability `json:"availability"`
	Rating        float64      `json:"rating"`
	TotalReviews  int          `json:"totalReviews"`
	CreatedAt     time.Time    `json:"createdAt"`
}

func (v *Vendor) Summary() VendorSummary {
	return VendorSummary{
		ID:            v.ID,
		UserID:        v.UserID,
		CompanyName:   v.CompanyName,
		Description:   v.Description,
		ContactNumber: v.ContactNumber,
		Address:       v.Address,
		Availability:  v.Availability,
		Rating:        v.Rating,
		TotalReviews:  v.TotalReviews,
		CreatedAt:     v.CreatedAt,
	}
}

type VendorProfileRequest struct {
	CompanyName   string `json:"companyName" validate:"required"`
	Description   string `json:"description"`
	ContactNumber string `json:"contactNumber"`
	Address       string `json:"address"`
}

type ServiceRequest struct {
	Name        string  `json:"name" validate:"required"`
	Category    string  `json:"category"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"gte=0"`
}

type AvailabilityRequest struct {
	Availability Availability `json:"availability" validate:"required,oneof=available busy unavailable"`
}
