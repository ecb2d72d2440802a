package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"evrental/internal/model"
)

// DriverLicenseRepository defines driver license persistence operations.
type DriverLicenseRepository interface {
	Create(ctx context.Context, license *model.DriverLicense) error
	FindByNumber(ctx context.Context, number string) (*model.DriverLicense, error)
	ListByRenter(ctx context.Context, renterID uuid.UUID) ([]model.DriverLicense, error)
}

type driverLicenseRepository struct {
	db *gorm.DB
}

// NewDriverLicenseRepository creates a new driver license repository.
func NewDriverLicenseRepository(db *gorm.DB) DriverLicenseRepository {
	return &driverLicenseRepository{db: db}
}

// Create creates a new driver license.
func (r *driverLicenseRepository) Create(ctx context.Context, license *model.DriverLicense) error {
	return r.db.WithContext(ctx).Create(license).Error
}

// FindByNumber finds a license by its unique number.
func (r *driverLicenseRepository) FindByNumber(ctx context.Context, number string) (*model.DriverLicense, error) {
	var license model.DriverLicense
	if err := r.db.WithContext(ctx).Where("license_number = ?", number).First(&license).Error; err != nil {
		return nil, err
	}
	return &license, nil
}

// ListByRenter returns a renter's licenses, most recently issued first.
func (r *driverLicenseRepository) ListByRenter(ctx context.Context, renterID uuid.UUID) ([]model.DriverLicense, error) {
	var licenses []model.DriverLicense
	err := r.db.WithContext(ctx).
		Where("renter_id = ?", renterID).
		Order("issued_date DESC").
		Find(&licenses).Error
	return licenses, err
}
