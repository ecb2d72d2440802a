package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"evrental/internal/model"
)

// StaffRepository defines staff persistence operations.
type StaffRepository interface {
	Create(ctx context.Context, staff *model.Staff) error
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*model.Staff, error)
}

type staffRepository struct {
	db *gorm.DB
}

// NewStaffRepository creates a new staff repository.
func NewStaffRepository(db *gorm.DB) StaffRepository {
	return &staffRepository{db: db}
}

// Create creates a new staff profile.
func (r *staffRepository) Create(ctx context.Context, staff *model.Staff) error {
	return r.db.WithContext(ctx).Create(staff).Error
}

// FindByAccountID finds the staff profile owned by an account.
func (r *staffRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*model.Staff, error) {
	var staff model.Staff
	if err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&staff).Error; err != nil {
		return nil, err
	}
	return &staff, nil
}
