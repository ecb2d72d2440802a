package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"evrental/internal/cache"
	"evrental/internal/model"
	"evrental/internal/repository"
)

const (
	statsCacheKey = "dashboard:stats"
	statsCacheTTL = 30 * time.Second
)

// DashboardStats is the admin dashboard aggregate payload. The component
// queries run without a shared snapshot; slight skew between the numbers is
// tolerated, the data is informational.
type DashboardStats struct {
	TotalBookings   int64   `json:"totalBookings"`
	TotalRevenue    float64 `json:"totalRevenue"`
	ActiveRenters   int64   `json:"activeRenters"`
	TotalVehicles   int64   `json:"totalVehicles"`
	PendingReports  int64   `json:"pendingReports"`
	HighRiskRenters int64   `json:"highRiskRenters"`
}

// StatsService computes admin dashboard aggregates.
type StatsService interface {
	Dashboard(ctx context.Context) (*DashboardStats, error)
}

type statsService struct {
	bookings repository.BookingRepository
	renters  repository.RenterRepository
	vehicles repository.VehicleRepository
	reports  repository.ReportRepository
	cache    *cache.Client
	now      func() time.Time
}

// NewStatsService creates a new stats service.
func NewStatsService(
	bookings repository.BookingRepository,
	renters repository.RenterRepository,
	vehicles repository.VehicleRepository,
	reports repository.ReportRepository,
	cacheClient *cache.Client,
) StatsService {
	return &statsService{
		bookings: bookings,
		renters:  renters,
		vehicles: vehicles,
		reports:  reports,
		cache:    cacheClient,
		now:      time.Now,
	}
}

// Dashboard returns the point-in-time dashboard aggregates, cached briefly.
// Any constituent query failing fails the whole request.
func (s *statsService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	if data, _ := s.cache.Get(ctx, statsCacheKey); data != nil {
		var cached DashboardStats
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	totalBookings, err := s.bookings.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count bookings: %w", err)
	}
	revenue, err := s.bookings.CompletedRevenueForMonth(ctx, s.now())
	if err != nil {
		return nil, fmt.Errorf("monthly revenue: %w", err)
	}
	totalRenters, err := s.renters.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count renters: %w", err)
	}
	totalVehicles, err := s.vehicles.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count vehicles: %w", err)
	}
	openReports, err := s.reports.CountByStatus(ctx, model.ReportStatusOpen)
	if err != nil {
		return nil, fmt.Errorf("count open reports: %w", err)
	}
	highRisk, err := s.reports.CountHighRisk(ctx)
	if err != nil {
		return nil, fmt.Errorf("count high risk reports: %w", err)
	}

	stats := &DashboardStats{
		TotalBookings:   totalBookings,
		TotalRevenue:    revenue.InexactFloat64(),
		ActiveRenters:   totalRenters,
		TotalVehicles:   totalVehicles,
		PendingReports:  openReports,
		HighRiskRenters: highRisk,
	}

	if payload, err := json.Marshal(stats); err == nil {
		_ = s.cache.Set(ctx, statsCacheKey, payload, statsCacheTTL)
	}
	return stats, nil
}
