package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"evrental/internal/model"
)

func TestStatsService_Dashboard(t *testing.T) {
	now := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

	mockBookings := new(MockBookingRepository)
	mockBookings.On("Count", mock.Anything).Return(int64(42), nil)
	mockBookings.On("CompletedRevenueForMonth", mock.Anything, now).Return(decimal.NewFromFloat(1234.50), nil)

	mockRenters := new(MockRenterRepository)
	mockRenters.On("Count", mock.Anything).Return(int64(12), nil)

	mockVehicles := new(MockVehicleRepository)
	mockVehicles.On("Count", mock.Anything).Return(int64(8), nil)

	mockReports := new(MockReportRepository)
	mockReports.On("CountByStatus", mock.Anything, model.ReportStatusOpen).Return(int64(3), nil)
	mockReports.On("CountHighRisk", mock.Anything).Return(int64(1), nil)

	// nil cache behaves as a permanent miss.
	service := NewStatsService(mockBookings, mockRenters, mockVehicles, mockReports, nil).(*statsService)
	service.now = func() time.Time { return now }

	stats, err := service.Dashboard(context.Background())

	assert.NoError(t, err)
	if assert.NotNil(t, stats) {
		assert.Equal(t, int64(42), stats.TotalBookings)
		assert.Equal(t, 1234.50, stats.TotalRevenue)
		assert.Equal(t, int64(12), stats.ActiveRenters)
		assert.Equal(t, int64(8), stats.TotalVehicles)
		assert.Equal(t, int64(3), stats.PendingReports)
		assert.Equal(t, int64(1), stats.HighRiskRenters)
	}
	mockBookings.AssertExpectations(t)
	mockRenters.AssertExpectations(t)
	mockVehicles.AssertExpectations(t)
	mockReports.AssertExpectations(t)
}

func TestStatsService_Dashboard_QueryFailure(t *testing.T) {
	mockBookings := new(MockBookingRepository)
	mockBookings.On("Count", mock.Anything).Return(int64(0), assert.AnError)

	service := NewStatsService(mockBookings, new(MockRenterRepository), new(MockVehicleRepository), new(MockReportRepository), nil)

	stats, err := service.Dashboard(context.Background())
	assert.Error(t, err)
	assert.Nil(t, stats)
	mockBookings.AssertExpectations(t)
}
