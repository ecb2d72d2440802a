package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"evrental/internal/service"
)

// RiskHandler handles the risky-renter listing.
type RiskHandler struct {
	riskService service.RiskService
}

// NewRiskHandler creates a new risk handler.
func NewRiskHandler(riskService service.RiskService) *RiskHandler {
	return &RiskHandler{riskService: riskService}
}

// List godoc
// @Summary Renters with repeated or high-risk reports
// @Tags risks
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /risks [get]
func (h *RiskHandler) List(c echo.Context) error {
	renters, err := h.riskService.RiskyRenters(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":  renters,
		"total": len(renters),
	})
}
