package handler

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"evrental/internal/service"
)

// AdminHandler handles account lifecycle and dashboard endpoints.
type AdminHandler struct {
	accountService service.AccountService
	statsService   service.StatsService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(accountService service.AccountService, statsService service.StatsService) *AdminHandler {
	return &AdminHandler{
		accountService: accountService,
		statsService:   statsService,
	}
}

// Approve godoc
// @Summary Approve a pending account
// @Tags admin
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /admin/accounts/{id}/approve [put]
func (h *AdminHandler) Approve(c echo.Context) error {
	return h.transition(c, h.accountService.Approve, "account approved")
}

// Reactivate godoc
// @Summary Reactivate a deactivated account
// @Tags admin
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /admin/accounts/{id}/reactivate [put]
func (h *AdminHandler) Reactivate(c echo.Context) error {
	return h.transition(c, h.accountService.Reactivate, "account reactivated")
}

// Deactivate godoc
// @Summary Soft-delete an account
// @Tags admin
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /admin/accounts/{id} [delete]
func (h *AdminHandler) Deactivate(c echo.Context) error {
	return h.transition(c, h.accountService.Deactivate, "account deactivated")
}

// HardDelete godoc
// @Summary Irreversibly delete an account and its profiles
// @Tags admin
// @Produce json
// @Param id path string true "Account ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /admin/accounts/{id}/hard [delete]
func (h *AdminHandler) HardDelete(c echo.Context) error {
	return h.transition(c, h.accountService.HardDelete, "account deleted")
}

// Stats godoc
// @Summary Dashboard aggregates
// @Tags admin
// @Produce json
// @Success 200 {object} service.DashboardStats
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.statsService.Dashboard(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

func (h *AdminHandler) transition(c echo.Context, fn func(ctx context.Context, id uuid.UUID) error, message string) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid account id")
	}
	if err := fn(c.Request().Context(), id); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message":   message,
		"accountId": id.String(),
	})
}
