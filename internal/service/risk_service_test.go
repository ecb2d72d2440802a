package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"evrental/internal/model"
	"evrental/internal/repository"
)

func TestRiskService_RiskyRenters(t *testing.T) {
	highID := uuid.New()
	mediumID := uuid.New()
	lowID := uuid.New()

	mockReports := new(MockReportRepository)
	mockReports.On("RiskCountsByRenter", mock.Anything).Return([]repository.RenterRiskCount{
		{RenterID: lowID.String(), TotalReports: 2, HighRiskCount: 0},
		{RenterID: highID.String(), TotalReports: 1, HighRiskCount: 1},
		{RenterID: mediumID.String(), TotalReports: 4, HighRiskCount: 0},
		{RenterID: "not-a-uuid", TotalReports: 9, HighRiskCount: 9},
	}, nil)

	mockRenters := new(MockRenterRepository)
	mockRenters.On("FindByIDs", mock.Anything, mock.AnythingOfType("[]uuid.UUID")).Return([]model.Renter{
		{ID: highID, Account: &model.Account{FullName: "High Risk", Email: "high@example.com"}},
		{ID: mediumID, Account: &model.Account{FullName: "Medium Risk", Email: "medium@example.com"}},
		{ID: lowID},
	}, nil)

	service := NewRiskService(mockReports, mockRenters)
	views, err := service.RiskyRenters(context.Background())

	assert.NoError(t, err)
	if assert.Len(t, views, 3) {
		// Most reported first.
		assert.Equal(t, mediumID, views[0].RenterID)
		assert.Equal(t, RiskLevelMedium, views[0].RiskLevel)

		assert.Equal(t, lowID, views[1].RenterID)
		assert.Equal(t, RiskLevelLow, views[1].RiskLevel)
		// Renter without an account row keeps placeholders.
		assert.Equal(t, "Unknown", views[1].FullName)
		assert.Equal(t, "N/A", views[1].Email)

		assert.Equal(t, highID, views[2].RenterID)
		assert.Equal(t, RiskLevelHigh, views[2].RiskLevel)
	}
	mockReports.AssertExpectations(t)
	mockRenters.AssertExpectations(t)
}

func TestRiskService_RiskyRenters_Empty(t *testing.T) {
	mockReports := new(MockReportRepository)
	mockReports.On("RiskCountsByRenter", mock.Anything).Return([]repository.RenterRiskCount{}, nil)

	mockRenters := new(MockRenterRepository)

	service := NewRiskService(mockReports, mockRenters)
	views, err := service.RiskyRenters(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, views)
	mockReports.AssertExpectations(t)
	mockRenters.AssertExpectations(t)
}

func TestClassifyRisk(t *testing.T) {
	tests := []struct {
		name     string
		stats    repository.RenterRiskCount
		expected RiskLevel
	}{
		{name: "any high risk report", stats: repository.RenterRiskCount{TotalReports: 1, HighRiskCount: 1}, expected: RiskLevelHigh},
		{name: "three reports", stats: repository.RenterRiskCount{TotalReports: 3}, expected: RiskLevelMedium},
		{name: "two reports", stats: repository.RenterRiskCount{TotalReports: 2}, expected: RiskLevelLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, classifyRisk(tt.stats))
		})
	}
}
