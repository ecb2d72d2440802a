package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"evrental/internal/model"
	"evrental/internal/repository"
)

func TestBookingService_List(t *testing.T) {
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	booking := model.Booking{
		ID:            uuid.New(),
		StartTime:     start,
		EndTime:       start.Add(4 * time.Hour),
		DepositAmount: decimal.NewFromInt(100),
		Status:        model.BookingStatusCompleted,
		Renter: &model.Renter{
			Account: &model.Account{FullName: "Nguyen Thi An", Email: "an@example.com"},
		},
		Vehicle: &model.Vehicle{LicensePlate: "51K-123.45", Brand: "VinFast", Model: "VF e34"},
	}
	orphan := model.Booking{
		ID:            uuid.New(),
		StartTime:     start,
		EndTime:       start.Add(90 * time.Minute),
		DepositAmount: decimal.NewFromInt(50),
		Status:        model.BookingStatusPending,
	}

	mockRepo := new(MockBookingRepository)
	mockRepo.On("List", mock.Anything, mock.AnythingOfType("repository.ListQuery")).
		Return([]model.Booking{booking, orphan}, int64(2), nil)

	service := NewBookingService(mockRepo)
	views, total, err := service.List(context.Background(), repository.ListQuery{})

	assert.NoError(t, err)
	assert.Equal(t, int64(2), total)
	if assert.Len(t, views, 2) {
		assert.Equal(t, "Nguyen Thi An", views[0].Renter.FullName)
		assert.Equal(t, "51K-123.45", views[0].Vehicle.LicensePlate)
		assert.Equal(t, 4, views[0].Duration)
		assert.Equal(t, 100.0, views[0].TotalCost)

		// Orphaned booking still lists with placeholders.
		assert.Equal(t, "Unknown", views[1].Renter.FullName)
		assert.Equal(t, "N/A", views[1].Vehicle.LicensePlate)
		assert.Equal(t, 2, views[1].Duration)
	}
	mockRepo.AssertExpectations(t)
}

func TestBookingService_MyBookings(t *testing.T) {
	renterID := uuid.New()
	start := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	bookings := []model.Booking{
		{
			ID:            uuid.New(),
			RenterID:      renterID,
			StartTime:     start,
			EndTime:       start.Add(4 * time.Hour),
			DepositAmount: decimal.NewFromInt(100),
			Status:        model.BookingStatusCompleted,
		},
		{
			ID:            uuid.New(),
			RenterID:      renterID,
			StartTime:     start.Add(24 * time.Hour),
			EndTime:       start.Add(26 * time.Hour),
			DepositAmount: decimal.NewFromInt(250),
			Status:        model.BookingStatusCompleted,
		},
	}

	mockRepo := new(MockBookingRepository)
	mockRepo.On("ListByRenter", mock.Anything, renterID).Return(bookings, nil)
	mockRepo.On("CompletedStartHours", mock.Anything, renterID).Return([]repository.HourCount{
		{Hour: 9, Count: 2},
	}, nil)

	service := NewBookingService(mockRepo)
	views, stats, err := service.MyBookings(context.Background(), renterID)

	assert.NoError(t, err)
	assert.Len(t, views, 2)
	// Own bookings omit the renter block.
	assert.Nil(t, views[0].Renter)

	if assert.NotNil(t, stats) {
		assert.Equal(t, 2, stats.TotalTrips)
		assert.Equal(t, 350.0, stats.TotalCost)
		if assert.Len(t, stats.PeakHours, 6) {
			assert.Equal(t, 9, stats.PeakHours[0].Hour)
			assert.Equal(t, int64(2), stats.PeakHours[0].Count)
		}
	}
	mockRepo.AssertExpectations(t)
}

func TestBookingService_Recent(t *testing.T) {
	mockRepo := new(MockBookingRepository)
	mockRepo.On("Recent", mock.Anything, 5).Return([]model.Booking{
		{
			ID:            uuid.New(),
			DepositAmount: decimal.NewFromInt(75),
			Status:        model.BookingStatusConfirmed,
		},
	}, nil)

	service := NewBookingService(mockRepo)
	views, err := service.Recent(context.Background())

	assert.NoError(t, err)
	if assert.Len(t, views, 1) {
		assert.Equal(t, "Unknown", views[0].Renter.FullName)
		assert.Equal(t, "N/A", views[0].Vehicle.LicensePlate)
		assert.Equal(t, 75.0, views[0].TotalCost)
	}
	mockRepo.AssertExpectations(t)
}

func TestTopPeakHours(t *testing.T) {
	tests := []struct {
		name     string
		rows     []repository.HourCount
		expected []repository.HourCount
	}{
		{
			name: "busiest hours first, hour ascending on ties",
			rows: []repository.HourCount{
				{Hour: 18, Count: 5},
				{Hour: 8, Count: 3},
				{Hour: 12, Count: 3},
			},
			expected: []repository.HourCount{
				{Hour: 18, Count: 5},
				{Hour: 8, Count: 3},
				{Hour: 12, Count: 3},
				{Hour: 0, Count: 0},
				{Hour: 1, Count: 0},
				{Hour: 2, Count: 0},
			},
		},
		{
			name: "no bookings yields zero-count buckets",
			rows: nil,
			expected: []repository.HourCount{
				{Hour: 0}, {Hour: 1}, {Hour: 2}, {Hour: 3}, {Hour: 4}, {Hour: 5},
			},
		},
		{
			name: "out of range hours ignored",
			rows: []repository.HourCount{
				{Hour: 30, Count: 9},
				{Hour: 7, Count: 1},
			},
			expected: []repository.HourCount{
				{Hour: 7, Count: 1},
				{Hour: 0}, {Hour: 1}, {Hour: 2}, {Hour: 3}, {Hour: 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, topPeakHours(tt.rows, 6))
		})
	}
}
