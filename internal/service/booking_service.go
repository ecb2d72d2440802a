package service

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"

	"evrental/internal/model"
	"evrental/internal/repository"
)

// Placeholders substituted when a joined row is missing (deleted or
// orphaned); listings must not fail over a dangling reference.
const (
	placeholderName = "Unknown"
	placeholderNA   = "N/A"
)

const recentLimit = 5

// BookingRenterView is the renter slice of a booking listing row.
type BookingRenterView struct {
	FullName string `json:"FullName"`
	Email    string `json:"Email,omitempty"`
}

// BookingVehicleView is the vehicle slice of a booking listing row.
type BookingVehicleView struct {
	LicensePlate string `json:"LicensePlate"`
	Brand        string `json:"Brand,omitempty"`
	Model        string `json:"Model,omitempty"`
}

// BookingView is an enriched booking listing row. Duration and TotalCost are
// derived, never stored.
type BookingView struct {
	BookingID     uuid.UUID           `json:"BookingID"`
	Renter        *BookingRenterView  `json:"Renter,omitempty"`
	Vehicle       BookingVehicleView  `json:"Vehicle"`
	StartTime     time.Time           `json:"StartTime"`
	EndTime       time.Time           `json:"EndTime"`
	DepositAmount float64             `json:"DepositAmount"`
	Status        model.BookingStatus `json:"Status"`
	Duration      int                 `json:"Duration"`
	TotalCost     float64             `json:"TotalCost"`
}

// RecentBookingView is the compact shape of the dashboard widget feed.
type RecentBookingView struct {
	BookingID uuid.UUID           `json:"BookingID"`
	Renter    BookingRenterView   `json:"Renter"`
	Vehicle   BookingVehicleView  `json:"Vehicle"`
	Status    model.BookingStatus `json:"Status"`
	TotalCost float64             `json:"TotalCost"`
}

// BookingStats summarizes a renter's bookings.
type BookingStats struct {
	TotalTrips int                    `json:"totalTrips"`
	TotalCost  float64                `json:"totalCost"`
	PeakHours  []repository.HourCount `json:"peakHours"`
}

// BookingService handles booking listings and enrichment.
type BookingService interface {
	List(ctx context.Context, q repository.ListQuery) ([]BookingView, int64, error)
	MyBookings(ctx context.Context, renterID uuid.UUID) ([]BookingView, *BookingStats, error)
	Recent(ctx context.Context) ([]RecentBookingView, error)
}

type bookingService struct {
	bookings repository.BookingRepository
}

// NewBookingService creates a new booking service.
func NewBookingService(bookings repository.BookingRepository) BookingService {
	return &bookingService{bookings: bookings}
}

// List returns one page of enriched bookings.
func (s *bookingService) List(ctx context.Context, q repository.ListQuery) ([]BookingView, int64, error) {
	bookings, total, err := s.bookings.List(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("list bookings: %w", err)
	}

	views := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		views = append(views, toBookingView(&b, true))
	}
	return views, total, nil
}

// MyBookings returns a renter's bookings with inline stats.
func (s *bookingService) MyBookings(ctx context.Context, renterID uuid.UUID) ([]BookingView, *BookingStats, error) {
	bookings, err := s.bookings.ListByRenter(ctx, renterID)
	if err != nil {
		return nil, nil, fmt.Errorf("list renter bookings: %w", err)
	}

	views := make([]BookingView, 0, len(bookings))
	totalCost := 0.0
	for _, b := range bookings {
		v := toBookingView(&b, false)
		totalCost += v.TotalCost
		views = append(views, v)
	}

	hours, err := s.bookings.CompletedStartHours(ctx, renterID)
	if err != nil {
		return nil, nil, fmt.Errorf("booking peak hours: %w", err)
	}

	return views, &BookingStats{
		TotalTrips: len(views),
		TotalCost:  totalCost,
		PeakHours:  topPeakHours(hours, peakHourBuckets),
	}, nil
}

// Recent returns the latest bookings in the dashboard widget shape.
func (s *bookingService) Recent(ctx context.Context) ([]RecentBookingView, error) {
	bookings, err := s.bookings.Recent(ctx, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("recent bookings: %w", err)
	}

	views := make([]RecentBookingView, 0, len(bookings))
	for _, b := range bookings {
		view := RecentBookingView{
			BookingID: b.ID,
			Renter:    BookingRenterView{FullName: placeholderName},
			Vehicle:   BookingVehicleView{LicensePlate: placeholderNA},
			Status:    b.Status,
			TotalCost: b.TotalCost().InexactFloat64(),
		}
		if b.Renter != nil && b.Renter.Account != nil {
			view.Renter.FullName = b.Renter.Account.FullName
		}
		if b.Vehicle != nil {
			view.Vehicle.LicensePlate = b.Vehicle.LicensePlate
		}
		views = append(views, view)
	}
	return views, nil
}

func toBookingView(b *model.Booking, withRenter bool) BookingView {
	view := BookingView{
		BookingID: b.ID,
		Vehicle: BookingVehicleView{
			LicensePlate: placeholderNA,
			Brand:        placeholderNA,
			Model:        placeholderNA,
		},
		StartTime:     b.StartTime,
		EndTime:       b.EndTime,
		DepositAmount: b.DepositAmount.InexactFloat64(),
		Status:        b.Status,
		Duration:      b.DurationHours(),
		TotalCost:     b.TotalCost().InexactFloat64(),
	}
	if b.Vehicle != nil {
		view.Vehicle = BookingVehicleView{
			LicensePlate: b.Vehicle.LicensePlate,
			Brand:        b.Vehicle.Brand,
			Model:        b.Vehicle.Model,
		}
	}
	if withRenter {
		renter := &BookingRenterView{FullName: placeholderName, Email: placeholderNA}
		if b.Renter != nil && b.Renter.Account != nil {
			renter.FullName = b.Renter.Account.FullName
			renter.Email = b.Renter.Account.Email
		}
		view.Renter = renter
	}
	return view
}

// peakHourBuckets is how many histogram buckets the dashboard chart shows.
const peakHourBuckets = 6

// topPeakHours zero-fills a 24-bucket hour histogram, then keeps the top n
// buckets by count, hour ascending on ties.
func topPeakHours(rows []repository.HourCount, n int) []repository.HourCount {
	buckets := make([]repository.HourCount, 24)
	for i := range buckets {
		buckets[i].Hour = i
	}
	for _, row := range rows {
		if row.Hour >= 0 && row.Hour < 24 {
			buckets[row.Hour].Count = row.Count
		}
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		return buckets[i].Count > buckets[j].Count
	})
	if n > len(buckets) {
		n = len(buckets)
	}
	return buckets[:n]
}
