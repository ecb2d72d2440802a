package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apierrors "evrental/internal/errors"
	"evrental/internal/model"
	"evrental/internal/repository"
)

// CreateReportInput carries a new report. StaffID comes from the caller's
// token, never the request body.
type CreateReportInput struct {
	ReportType model.ReportType
	RenterID   *uuid.UUID
	VehicleID  *uuid.UUID
	Details    string
	IsHighRisk bool
	StaffID    *uuid.UUID
}

// ReportRenterView is the renter slice of a report listing row.
type ReportRenterView struct {
	RenterID uuid.UUID         `json:"RenterID"`
	Account  ReportAccountView `json:"Account"`
}

// ReportAccountView is the account slice nested under renter/staff.
type ReportAccountView struct {
	FullName string `json:"FullName"`
	Email    string `json:"Email,omitempty"`
}

// ReportStaffView is the authoring staff slice of a report listing row.
type ReportStaffView struct {
	StaffID uuid.UUID         `json:"StaffID"`
	Account ReportAccountView `json:"Account"`
}

// ReportVehicleView is the vehicle slice of a report listing row.
type ReportVehicleView struct {
	LicensePlate string `json:"LicensePlate"`
}

// ReportView is a report listing row. Related slices are nil when the
// referenced row is gone.
type ReportView struct {
	ReportID      int                `json:"ReportID"`
	ReportType    model.ReportType   `json:"ReportType"`
	ReportDetails string             `json:"ReportDetails"`
	Status        model.ReportStatus `json:"Status"`
	IsHighRisk    bool               `json:"IsHighRisk"`
	CreatedAt     time.Time          `json:"CreatedAt"`
	ResolvedAt    *time.Time         `json:"ResolvedAt"`
	Renter        *ReportRenterView  `json:"Renter"`
	Staff         *ReportStaffView   `json:"Staff"`
	Vehicle       *ReportVehicleView `json:"Vehicle"`
}

// ReportService handles report creation, listing and the status machine.
type ReportService interface {
	Create(ctx context.Context, input CreateReportInput) (*model.Report, error)
	List(ctx context.Context, f repository.ReportFilter) ([]ReportView, int64, error)
	Recent(ctx context.Context) ([]model.Report, error)
	UpdateStatus(ctx context.Context, id int, status model.ReportStatus) error
}

type reportService struct {
	reports repository.ReportRepository
	now     func() time.Time
}

// NewReportService creates a new report service.
func NewReportService(reports repository.ReportRepository) ReportService {
	return &reportService{reports: reports, now: time.Now}
}

// Create opens a new report authored by the caller's staff profile.
func (s *reportService) Create(ctx context.Context, input CreateReportInput) (*model.Report, error) {
	if input.StaffID == nil {
		return nil, apierrors.ErrNoStaffProfile
	}

	reportType := input.ReportType
	if reportType == "" {
		reportType = model.ReportTypeIncident
	}

	report := &model.Report{
		ReportType:    reportType,
		RenterID:      input.RenterID,
		StaffID:       *input.StaffID,
		VehicleID:     input.VehicleID,
		ReportDetails: input.Details,
		IsHighRisk:    input.IsHighRisk,
		Status:        model.ReportStatusOpen,
	}
	if err := s.reports.Create(ctx, report); err != nil {
		return nil, fmt.Errorf("create report: %w", err)
	}
	return report, nil
}

// List returns one page of enriched reports.
func (s *reportService) List(ctx context.Context, f repository.ReportFilter) ([]ReportView, int64, error) {
	reports, total, err := s.reports.List(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("list reports: %w", err)
	}

	views := make([]ReportView, 0, len(reports))
	for _, report := range reports {
		views = append(views, toReportView(&report))
	}
	return views, total, nil
}

// Recent returns the latest reports for the dashboard widget.
func (s *reportService) Recent(ctx context.Context) ([]model.Report, error) {
	reports, err := s.reports.Recent(ctx, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("recent reports: %w", err)
	}
	return reports, nil
}

// UpdateStatus applies a report status transition. Allowed: Open to Pending,
// Open to Closed, Pending to Closed. Closed is terminal; entering it stamps
// the resolution time.
func (s *reportService) UpdateStatus(ctx context.Context, id int, status model.ReportStatus) error {
	report, err := s.reports.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierrors.ErrReportNotFound
		}
		return fmt.Errorf("find report: %w", err)
	}

	if !validReportTransition(report.Status, status) {
		return apierrors.ErrReportTransition
	}

	var resolvedAt *time.Time
	if status == model.ReportStatusClosed {
		now := s.now()
		resolvedAt = &now
	}
	return s.reports.SetStatus(ctx, id, status, resolvedAt)
}

func validReportTransition(from, to model.ReportStatus) bool {
	switch from {
	case model.ReportStatusOpen:
		return to == model.ReportStatusPending || to == model.ReportStatusClosed
	case model.ReportStatusPending:
		return to == model.ReportStatusClosed
	default:
		return false
	}
}

func toReportView(report *model.Report) ReportView {
	view := ReportView{
		ReportID:      report.ID,
		ReportType:    report.ReportType,
		ReportDetails: report.ReportDetails,
		Status:        report.Status,
		IsHighRisk:    report.IsHighRisk,
		CreatedAt:     report.CreatedAt,
		ResolvedAt:    report.ResolvedAt,
	}
	if report.Renter != nil && report.Renter.Account != nil {
		view.Renter = &ReportRenterView{
			RenterID: report.Renter.ID,
			Account: ReportAccountView{
				FullName: report.Renter.Account.FullName,
				Email:    report.Renter.Account.Email,
			},
		}
	}
	if report.Staff != nil && report.Staff.Account != nil {
		view.Staff = &ReportStaffView{
			StaffID: report.Staff.ID,
			Account: ReportAccountView{
				FullName: report.Staff.Account.FullName,
			},
		}
	}
	if report.Vehicle != nil {
		view.Vehicle = &ReportVehicleView{LicensePlate: report.Vehicle.LicensePlate}
	}
	return view
}
