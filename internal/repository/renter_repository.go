package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"evrental/internal/model"
)

// RenterRepository defines renter persistence operations.
type RenterRepository interface {
	Create(ctx context.Context, renter *model.Renter) error
	Update(ctx context.Context, renter *model.Renter) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Renter, error)
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*model.Renter, error)
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Renter, error)
	List(ctx context.Context, q ListQuery) ([]model.Renter, int64, error)
	Count(ctx context.Context) (int64, error)
}

type renterRepository struct {
	db *gorm.DB
}

// NewRenterRepository creates a new renter repository.
func NewRenterRepository(db *gorm.DB) RenterRepository {
	return &renterRepository{db: db}
}

// Create creates a new renter profile.
func (r *renterRepository) Create(ctx context.Context, renter *model.Renter) error {
	return r.db.WithContext(ctx).Create(renter).Error
}

// Update updates an existing renter profile.
func (r *renterRepository) Update(ctx context.Context, renter *model.Renter) error {
	return r.db.WithContext(ctx).Save(renter).Error
}

// FindByID finds a renter with its account preloaded.
func (r *renterRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Renter, error) {
	var renter model.Renter
	if err := r.db.WithContext(ctx).Preload("Account").
		Where("id = ?", id).First(&renter).Error; err != nil {
		return nil, err
	}
	return &renter, nil
}

// FindByAccountID finds the renter profile owned by an account.
func (r *renterRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*model.Renter, error) {
	var renter model.Renter
	if err := r.db.WithContext(ctx).Where("account_id = ?", accountID).First(&renter).Error; err != nil {
		return nil, err
	}
	return &renter, nil
}

// FindByIDs returns the renters with the given IDs, accounts preloaded.
func (r *renterRepository) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Renter, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var renters []model.Renter
	err := r.db.WithContext(ctx).Preload("Account").
		Where("id IN ?", ids).Find(&renters).Error
	return renters, err
}

// List returns a page of renters plus the total matching the filters. Search
// covers name, email, identity number and phone; the status filter applies to
// the owning account. Ordering is fixed: account full name ascending.
func (r *renterRepository) List(ctx context.Context, q ListQuery) ([]model.Renter, int64, error) {
	q = q.Normalize()

	scope := func(db *gorm.DB) *gorm.DB {
		db = db.Joins("LEFT JOIN accounts ON accounts.id = renters.account_id")
		if q.Search != "" {
			like := "%" + q.Search + "%"
			db = db.Where(
				"accounts.full_name LIKE ? OR accounts.email LIKE ? OR renters.identity_number LIKE ? OR accounts.phone_number LIKE ?",
				like, like, like, like,
			)
		}
		if q.FilterByStatus() {
			db = db.Where("accounts.status = ?", q.Status)
		}
		return db
	}

	var total int64
	if err := scope(r.db.WithContext(ctx).Model(&model.Renter{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var renters []model.Renter
	err := scope(r.db.WithContext(ctx).Model(&model.Renter{})).
		Preload("Account").
		Order("accounts.full_name ASC").
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&renters).Error
	if err != nil {
		return nil, 0, err
	}
	return renters, total, nil
}

// Count returns the number of renter profiles.
func (r *renterRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Renter{}).Count(&total).Error
	return total, err
}
