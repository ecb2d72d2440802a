package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"evrental/internal/model"
)

// ReportFilter is the report listing filter set. Unlike the shared ListQuery
// the dashboard filters reports on several independent axes.
type ReportFilter struct {
	Page          int
	Limit         int
	SearchDetails string
	ReportID      int
	RenterName    string
	IsHighRisk    *bool
	Status        string
}

// Normalize applies the shared paging defaults.
func (f ReportFilter) Normalize() ReportFilter {
	q := ListQuery{Page: f.Page, Limit: f.Limit}.Normalize()
	f.Page, f.Limit = q.Page, q.Limit
	return f
}

// RenterRiskCount aggregates report counts per renter.
type RenterRiskCount struct {
	RenterID      string `json:"RenterID"`
	TotalReports  int64  `json:"TotalReports"`
	HighRiskCount int64  `json:"HighRiskCount"`
}

// ReportRepository defines report persistence and aggregation operations.
type ReportRepository interface {
	Create(ctx context.Context, report *model.Report) error
	FindByID(ctx context.Context, id int) (*model.Report, error)
	SetStatus(ctx context.Context, id int, status model.ReportStatus, resolvedAt *time.Time) error
	List(ctx context.Context, f ReportFilter) ([]model.Report, int64, error)
	Recent(ctx context.Context, limit int) ([]model.Report, error)
	CountByStatus(ctx context.Context, status model.ReportStatus) (int64, error)
	CountHighRisk(ctx context.Context) (int64, error)
	RiskCountsByRenter(ctx context.Context) ([]RenterRiskCount, error)
}

type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository.
func NewReportRepository(db *gorm.DB) ReportRepository {
	return &reportRepository{db: db}
}

// Create creates a new report.
func (r *reportRepository) Create(ctx context.Context, report *model.Report) error {
	return r.db.WithContext(ctx).Create(report).Error
}

// FindByID finds a report by ID.
func (r *reportRepository) FindByID(ctx context.Context, id int) (*model.Report, error) {
	var report model.Report
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&report).Error; err != nil {
		return nil, err
	}
	return &report, nil
}

// SetStatus updates a report's status, and its resolution time when given.
func (r *reportRepository) SetStatus(ctx context.Context, id int, status model.ReportStatus, resolvedAt *time.Time) error {
	updates := map[string]interface{}{"status": status}
	if resolvedAt != nil {
		updates["resolved_at"] = resolvedAt
	}
	return r.db.WithContext(ctx).Model(&model.Report{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// List returns a page of reports with renter/staff/vehicle rows preloaded.
// Ordering is fixed: creation time descending.
func (r *reportRepository) List(ctx context.Context, f ReportFilter) ([]model.Report, int64, error) {
	f = f.Normalize()

	scope := func(db *gorm.DB) *gorm.DB {
		if f.SearchDetails != "" {
			db = db.Where("reports.report_details LIKE ?", "%"+f.SearchDetails+"%")
		}
		if f.ReportID > 0 {
			db = db.Where("reports.id = ?", f.ReportID)
		}
		if f.RenterName != "" {
			db = db.
				Joins("LEFT JOIN renters ON renters.id = reports.renter_id").
				Joins("LEFT JOIN accounts ON accounts.id = renters.account_id").
				Where("accounts.full_name LIKE ?", "%"+f.RenterName+"%")
		}
		if f.IsHighRisk != nil {
			db = db.Where("reports.is_high_risk = ?", *f.IsHighRisk)
		}
		if f.Status != "" && f.Status != StatusAll {
			db = db.Where("reports.status = ?", f.Status)
		}
		return db
	}

	var total int64
	if err := scope(r.db.WithContext(ctx).Model(&model.Report{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reports []model.Report
	err := scope(r.db.WithContext(ctx).Model(&model.Report{})).
		Preload("Renter.Account").
		Preload("Staff.Account").
		Preload("Vehicle").
		Order("reports.created_at DESC").
		Offset((f.Page - 1) * f.Limit).
		Limit(f.Limit).
		Find(&reports).Error
	if err != nil {
		return nil, 0, err
	}
	return reports, total, nil
}

// Recent returns the latest reports for the dashboard widget.
func (r *reportRepository) Recent(ctx context.Context, limit int) ([]model.Report, error) {
	var reports []model.Report
	err := r.db.WithContext(ctx).
		Preload("Renter.Account").
		Order("created_at DESC").
		Limit(limit).
		Find(&reports).Error
	return reports, err
}

// CountByStatus counts reports in a given status.
func (r *reportRepository) CountByStatus(ctx context.Context, status model.ReportStatus) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Report{}).
		Where("status = ?", status).
		Count(&total).Error
	return total, err
}

// CountHighRisk counts reports flagged high risk.
func (r *reportRepository) CountHighRisk(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Report{}).
		Where("is_high_risk = ?", true).
		Count(&total).Error
	return total, err
}

// RiskCountsByRenter aggregates report totals for renters that are worth a
// second look: at least two reports, or any high-risk one.
func (r *reportRepository) RiskCountsByRenter(ctx context.Context) ([]RenterRiskCount, error) {
	var rows []RenterRiskCount
	err := r.db.WithContext(ctx).Model(&model.Report{}).
		Select("renter_id AS renter_id, COUNT(*) AS total_reports, SUM(CASE WHEN is_high_risk THEN 1 ELSE 0 END) AS high_risk_count").
		Where("renter_id IS NOT NULL").
		Group("renter_id").
		Having("COUNT(*) >= 2 OR SUM(CASE WHEN is_high_risk THEN 1 ELSE 0 END) >= 1").
		Scan(&rows).Error
	return rows, err
}
