package handler

import (
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"evrental/internal/auth"
	"evrental/internal/model"
	"evrental/internal/repository"
	"evrental/internal/service"
)

// ReportHandler handles report endpoints.
type ReportHandler struct {
	reportService service.ReportService
}

// NewReportHandler creates a new report handler.
func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// CreateReportRequest represents a new report.
type CreateReportRequest struct {
	ReportType    string `json:"ReportType" validate:"omitempty,oneof=Incident Renter Handover"`
	RenterID      string `json:"RenterID" validate:"omitempty,uuid"`
	VehicleID     string `json:"VehicleID" validate:"omitempty,uuid"`
	ReportDetails string `json:"ReportDetails" validate:"required"`
	IsHighRisk    bool   `json:"IsHighRisk"`
}

// UpdateReportStatusRequest represents a status transition.
type UpdateReportStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=Open Pending Closed"`
}

// Create godoc
// @Summary Create a report
// @Tags reports
// @Accept json
// @Produce json
// @Param request body CreateReportRequest true "Report payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /reports [post]
func (h *ReportHandler) Create(c echo.Context) error {
	var req CreateReportRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	claims, err := auth.ClaimsFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}

	input := service.CreateReportInput{
		ReportType: model.ReportType(req.ReportType),
		Details:    req.ReportDetails,
		IsHighRisk: req.IsHighRisk,
		StaffID:    claims.StaffID,
	}
	if req.RenterID != "" {
		if id, err := uuid.Parse(req.RenterID); err == nil {
			input.RenterID = &id
		}
	}
	if req.VehicleID != "" {
		if id, err := uuid.Parse(req.VehicleID); err == nil {
			input.VehicleID = &id
		}
	}

	report, err := h.reportService.Create(c.Request().Context(), input)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "report created",
		"data":    report,
	})
}

// List godoc
// @Summary List reports
// @Tags reports
// @Produce json
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Param searchDetails query string false "Substring over report details"
// @Param reportId query int false "Exact report id"
// @Param renterName query string false "Substring over renter name"
// @Param isHighRisk query bool false "High risk flag"
// @Param status query string false "Report status filter, All disables"
// @Success 200 {object} PagedResponse
// @Security BearerAuth
// @Router /reports [get]
func (h *ReportHandler) List(c echo.Context) error {
	filter := parseReportFilter(c)
	reports, total, err := h.reportService.List(c.Request().Context(), filter)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, PagedResponse{
		Data:       reports,
		Total:      total,
		Page:       filter.Page,
		TotalPages: repository.TotalPages(total, filter.Limit),
	})
}

// Recent godoc
// @Summary Latest reports for the dashboard widget
// @Tags reports
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /reports/recent [get]
func (h *ReportHandler) Recent(c echo.Context) error {
	reports, err := h.reportService.Recent(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": reports})
}

// UpdateStatus godoc
// @Summary Transition a report's status
// @Tags reports
// @Accept json
// @Produce json
// @Param id path int true "Report ID"
// @Param request body UpdateReportStatusRequest true "Target status"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /reports/{id}/status [put]
func (h *ReportHandler) UpdateStatus(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid report id")
	}

	var req UpdateReportStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.reportService.UpdateStatus(c.Request().Context(), id, model.ReportStatus(req.Status)); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "status updated"})
}

func parseReportFilter(c echo.Context) repository.ReportFilter {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	reportID, _ := strconv.Atoi(c.QueryParam("reportId"))

	filter := repository.ReportFilter{
		Page:          page,
		Limit:         limit,
		SearchDetails: c.QueryParam("searchDetails"),
		ReportID:      reportID,
		RenterName:    c.QueryParam("renterName"),
		Status:        c.QueryParam("status"),
	}
	if raw := c.QueryParam("isHighRisk"); raw != "" {
		if v, err := strconv.ParseBool(raw); err == nil {
			filter.IsHighRisk = &v
		}
	}
	return filter.Normalize()
}
