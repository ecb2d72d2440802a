package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"

	"evrental/internal/repository"
)

// RiskLevel buckets a renter by how worrying their report history is.
type RiskLevel string

const (
	RiskLevelHigh   RiskLevel = "High"
	RiskLevelMedium RiskLevel = "Medium"
	RiskLevelLow    RiskLevel = "Low"
)

// RiskyRenterView is one row of the risky-renter listing.
type RiskyRenterView struct {
	RenterID        uuid.UUID `json:"RenterID"`
	FullName        string    `json:"FullName"`
	Email           string    `json:"Email"`
	TotalReports    int64     `json:"TotalReports"`
	HighRiskReports int64     `json:"HighRiskReports"`
	RiskLevel       RiskLevel `json:"RiskLevel"`
}

// RiskService flags renters that keep showing up in reports.
type RiskService interface {
	RiskyRenters(ctx context.Context) ([]RiskyRenterView, error)
}

type riskService struct {
	reports repository.ReportRepository
	renters repository.RenterRepository
}

// NewRiskService creates a new risk service.
func NewRiskService(reports repository.ReportRepository, renters repository.RenterRepository) RiskService {
	return &riskService{reports: reports, renters: renters}
}

// RiskyRenters returns renters with at least two reports or any high-risk
// report, most reported first.
func (s *riskService) RiskyRenters(ctx context.Context) ([]RiskyRenterView, error) {
	counts, err := s.reports.RiskCountsByRenter(ctx)
	if err != nil {
		return nil, fmt.Errorf("risk counts: %w", err)
	}
	if len(counts) == 0 {
		return []RiskyRenterView{}, nil
	}

	byRenter := make(map[uuid.UUID]repository.RenterRiskCount, len(counts))
	ids := make([]uuid.UUID, 0, len(counts))
	for _, row := range counts {
		id, err := uuid.Parse(row.RenterID)
		if err != nil {
			continue
		}
		byRenter[id] = row
		ids = append(ids, id)
	}

	renters, err := s.renters.FindByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load renters: %w", err)
	}

	views := make([]RiskyRenterView, 0, len(renters))
	for _, renter := range renters {
		stats := byRenter[renter.ID]
		view := RiskyRenterView{
			RenterID:        renter.ID,
			FullName:        placeholderName,
			Email:           placeholderNA,
			TotalReports:    stats.TotalReports,
			HighRiskReports: stats.HighRiskCount,
			RiskLevel:       classifyRisk(stats),
		}
		if renter.Account != nil {
			view.FullName = renter.Account.FullName
			view.Email = renter.Account.Email
		}
		views = append(views, view)
	}

	sort.SliceStable(views, func(i, j int) bool {
		return views[i].TotalReports > views[j].TotalReports
	})
	return views, nil
}

func classifyRisk(stats repository.RenterRiskCount) RiskLevel {
	switch {
	case stats.HighRiskCount > 0:
		return RiskLevelHigh
	case stats.TotalReports >= 3:
		return RiskLevelMedium
	default:
		return RiskLevelLow
	}
}
