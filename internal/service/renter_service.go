package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apierrors "evrental/internal/errors"
	"evrental/internal/model"
	"evrental/internal/repository"
)

// RenterStats is the personal dashboard payload for a renter.
type RenterStats struct {
	TotalTrips int64                  `json:"totalTrips"`
	TotalCost  float64                `json:"totalCost"`
	PeakHours  []repository.HourCount `json:"peakHours"`
}

// RenterService handles renter listings, details and self-service history.
type RenterService interface {
	List(ctx context.Context, q repository.ListQuery) ([]model.Renter, int64, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Renter, error)
	Licenses(ctx context.Context, renterID uuid.UUID) ([]model.DriverLicense, error)
	History(ctx context.Context, renterID uuid.UUID) ([]BookingView, error)
	Stats(ctx context.Context, renterID uuid.UUID) (*RenterStats, error)
}

type renterService struct {
	renters  repository.RenterRepository
	bookings repository.BookingRepository
	licenses repository.DriverLicenseRepository
}

// NewRenterService creates a new renter service.
func NewRenterService(
	renters repository.RenterRepository,
	bookings repository.BookingRepository,
	licenses repository.DriverLicenseRepository,
) RenterService {
	return &renterService{
		renters:  renters,
		bookings: bookings,
		licenses: licenses,
	}
}

// List returns one page of renters with their accounts.
func (s *renterService) List(ctx context.Context, q repository.ListQuery) ([]model.Renter, int64, error) {
	renters, total, err := s.renters.List(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("list renters: %w", err)
	}
	return renters, total, nil
}

// GetByID returns one renter with its account.
func (s *renterService) GetByID(ctx context.Context, id uuid.UUID) (*model.Renter, error) {
	renter, err := s.renters.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.ErrRenterNotFound
		}
		return nil, fmt.Errorf("find renter: %w", err)
	}
	return renter, nil
}

// Licenses returns a renter's driver licenses, most recently issued first.
func (s *renterService) Licenses(ctx context.Context, renterID uuid.UUID) ([]model.DriverLicense, error) {
	licenses, err := s.licenses.ListByRenter(ctx, renterID)
	if err != nil {
		return nil, fmt.Errorf("list licenses: %w", err)
	}
	return licenses, nil
}

// History returns a renter's bookings, enriched, newest start first.
func (s *renterService) History(ctx context.Context, renterID uuid.UUID) ([]BookingView, error) {
	bookings, err := s.bookings.ListByRenter(ctx, renterID)
	if err != nil {
		return nil, fmt.Errorf("list renter bookings: %w", err)
	}

	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, toBookingView(&b, false))
	}
	return views, nil
}

// Stats aggregates a renter's completed bookings: trip count, summed cost,
// and the top peak-hour buckets of a zero-filled 24 hour histogram.
func (s *renterService) Stats(ctx context.Context, renterID uuid.UUID) (*RenterStats, error) {
	trips, err := s.bookings.CountCompletedByRenter(ctx, renterID)
	if err != nil {
		return nil, fmt.Errorf("count trips: %w", err)
	}
	cost, err := s.bookings.CompletedCostByRenter(ctx, renterID)
	if err != nil {
		return nil, fmt.Errorf("sum cost: %w", err)
	}
	hours, err := s.bookings.CompletedStartHours(ctx, renterID)
	if err != nil {
		return nil, fmt.Errorf("peak hours: %w", err)
	}

	return &RenterStats{
		TotalTrips: trips,
		TotalCost:  cost.InexactFloat64(),
		PeakHours:  topPeakHours(hours, peakHourBuckets),
	}, nil
}
