package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"evrental/internal/model"
)

// AccountRepository defines account persistence operations.
type AccountRepository interface {
	Create(ctx context.Context, account *model.Account) error
	Update(ctx context.Context, account *model.Account) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Account, error)
	FindByEmail(ctx context.Context, email string) (*model.Account, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status model.AccountStatus) error
	HardDelete(ctx context.Context, id uuid.UUID) error
}

type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository creates a new account repository.
func NewAccountRepository(db *gorm.DB) AccountRepository {
	return &accountRepository{db: db}
}

// Create creates a new account.
func (r *accountRepository) Create(ctx context.Context, account *model.Account) error {
	return r.db.WithContext(ctx).Create(account).Error
}

// Update updates an existing account.
func (r *accountRepository) Update(ctx context.Context, account *model.Account) error {
	return r.db.WithContext(ctx).Save(account).Error
}

// FindByID finds an account by ID.
func (r *accountRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	var account model.Account
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// FindByEmail finds an account by email.
func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*model.Account, error) {
	var account model.Account
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&account).Error; err != nil {
		return nil, err
	}
	return &account, nil
}

// UpdateStatus updates the status of an account.
func (r *accountRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status model.AccountStatus) error {
	return r.db.WithContext(ctx).Model(&model.Account{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// HardDelete removes the account and its dependent staff/renter rows in one
// transaction, so a partial failure rolls everything back.
func (r *accountRepository) HardDelete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var renters []model.Renter
		if err := tx.Where("account_id = ?", id).Find(&renters).Error; err != nil {
			return err
		}
		for _, renter := range renters {
			if err := tx.Where("renter_id = ?", renter.ID).Delete(&model.DriverLicense{}).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("account_id = ?", id).Delete(&model.Renter{}).Error; err != nil {
			return err
		}
		if err := tx.Where("account_id = ?", id).Delete(&model.Staff{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&model.Account{}).Error
	})
}
