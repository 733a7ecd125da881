// Package postgres is the GORM-backed store, selected with
// STORAGE_DRIVER=postgres. Cross-collection invariants are kept with
// transactions and row locks instead of the memory store's single lock.
package postgres

import (
	"gorm.io/gorm"

	"github.com/planora/planora-backend/internal/repository"
)

func NewRepositories(db *gorm.DB) *repository.Repositories {
	return &repository.Repositories{
		Users:      NewUserRepository(db),
		Events:     NewEventRepository(db),
		Vendors:    NewVendorRepository(db),
		Attendance: NewAttendanceRepository(db),
	}
}
