package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"evrental/internal/model"
)

// HourCount is one bucket of an hour-of-day histogram.
type HourCount struct {
	Hour  int   `json:"hour"`
	Count int64 `json:"count"`
}

// BookingRepository defines booking persistence and aggregation operations.
type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) error
	List(ctx context.Context, q ListQuery) ([]model.Booking, int64, error)
	ListByRenter(ctx context.Context, renterID uuid.UUID) ([]model.Booking, error)
	Recent(ctx context.Context, limit int) ([]model.Booking, error)
	Count(ctx context.Context) (int64, error)
	CompletedRevenueForMonth(ctx context.Context, month time.Time) (decimal.Decimal, error)
	CountCompletedByRenter(ctx context.Context, renterID uuid.UUID) (int64, error)
	CompletedCostByRenter(ctx context.Context, renterID uuid.UUID) (decimal.Decimal, error)
	CompletedStartHours(ctx context.Context, renterID uuid.UUID) ([]HourCount, error)
}

type bookingRepository struct {
	db *gorm.DB
}

// NewBookingRepository creates a new booking repository.
func NewBookingRepository(db *gorm.DB) BookingRepository {
	return &bookingRepository{db: db}
}

// Create creates a new booking.
func (r *bookingRepository) Create(ctx context.Context, booking *model.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

// List returns a page of bookings with related rows preloaded. Search covers
// the renter's full name and the vehicle plate; the joins are LEFT so an
// orphaned booking still lists. Ordering is fixed: start time descending.
func (r *bookingRepository) List(ctx context.Context, q ListQuery) ([]model.Booking, int64, error) {
	q = q.Normalize()

	scope := func(db *gorm.DB) *gorm.DB {
		if q.Search != "" {
			like := "%" + q.Search + "%"
			db = db.
				Joins("LEFT JOIN renters ON renters.id = bookings.renter_id").
				Joins("LEFT JOIN accounts ON accounts.id = renters.account_id").
				Joins("LEFT JOIN vehicles ON vehicles.id = bookings.vehicle_id").
				Where("accounts.full_name LIKE ? OR vehicles.license_plate LIKE ?", like, like)
		}
		if q.FilterByStatus() {
			db = db.Where("bookings.status = ?", q.Status)
		}
		return db
	}

	var total int64
	if err := scope(r.db.WithContext(ctx).Model(&model.Booking{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var bookings []model.Booking
	err := scope(r.db.WithContext(ctx).Model(&model.Booking{})).
		Preload("Renter.Account").
		Preload("Vehicle").
		Order("bookings.start_time DESC").
		Offset(q.Offset()).
		Limit(q.Limit).
		Find(&bookings).Error
	if err != nil {
		return nil, 0, err
	}
	return bookings, total, nil
}

// ListByRenter returns every booking of a renter, newest start first.
func (r *bookingRepository) ListByRenter(ctx context.Context, renterID uuid.UUID) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Preload("Vehicle").
		Where("renter_id = ?", renterID).
		Order("start_time DESC").
		Find(&bookings).Error
	return bookings, err
}

// Recent returns the latest bookings for the dashboard widget.
func (r *bookingRepository) Recent(ctx context.Context, limit int) ([]model.Booking, error) {
	var bookings []model.Booking
	err := r.db.WithContext(ctx).
		Preload("Renter.Account").
		Preload("Vehicle").
		Order("start_time DESC").
		Limit(limit).
		Find(&bookings).Error
	return bookings, err
}

// Count returns the number of bookings.
func (r *bookingRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Booking{}).Count(&total).Error
	return total, err
}

// CompletedRevenueForMonth sums deposits of completed bookings whose end time
// falls in the same calendar month as the given instant.
func (r *bookingRepository) CompletedRevenueForMonth(ctx context.Context, month time.Time) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	err := r.db.WithContext(ctx).Model(&model.Booking{}).
		Select("COALESCE(SUM(deposit_amount), 0) AS total").
		Where("status = ?", model.BookingStatusCompleted).
		Where("MONTH(end_time) = ? AND YEAR(end_time) = ?", int(month.Month()), month.Year()).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// CountCompletedByRenter counts a renter's completed bookings.
func (r *bookingRepository) CountCompletedByRenter(ctx context.Context, renterID uuid.UUID) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Booking{}).
		Where("renter_id = ? AND status = ?", renterID, model.BookingStatusCompleted).
		Count(&total).Error
	return total, err
}

// CompletedCostByRenter sums the deposits of a renter's completed bookings.
func (r *bookingRepository) CompletedCostByRenter(ctx context.Context, renterID uuid.UUID) (decimal.Decimal, error) {
	var row struct {
		Total decimal.Decimal
	}
	err := r.db.WithContext(ctx).Model(&model.Booking{}).
		Select("COALESCE(SUM(deposit_amount), 0) AS total").
		Where("renter_id = ? AND status = ?", renterID, model.BookingStatusCompleted).
		Scan(&row).Error
	if err != nil {
		return decimal.Zero, err
	}
	return row.Total, nil
}

// CompletedStartHours groups a renter's completed bookings by start hour.
// Only hours that occur come back; callers zero-fill the histogram.
func (r *bookingRepository) CompletedStartHours(ctx context.Context, renterID uuid.UUID) ([]HourCount, error) {
	var rows []HourCount
	err := r.db.WithContext(ctx).Model(&model.Booking{}).
		Select("HOUR(start_time) AS hour, COUNT(*) AS count").
		Where("renter_id = ? AND status = ?", renterID, model.BookingStatusCompleted).
		Group("HOUR(start_time)").
		Scan(&rows).Error
	return rows, err
}
