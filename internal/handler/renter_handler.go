package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"evrental/internal/auth"
	apierrors "evrental/internal/errors"
	"evrental/internal/service"
)

// RenterHandler handles renter listing, detail and self-service endpoints.
type RenterHandler struct {
	renterService service.RenterService
}

// NewRenterHandler creates a new renter handler.
func NewRenterHandler(renterService service.RenterService) *RenterHandler {
	return &RenterHandler{renterService: renterService}
}

// List godoc
// @Summary List renters
// @Tags renters
// @Produce json
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Param search query string false "Substring over name, email, identity number, phone"
// @Param status query string false "Account status filter, All disables"
// @Success 200 {object} PagedResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /renters [get]
func (h *RenterHandler) List(c echo.Context) error {
	q := parseListQuery(c)
	renters, total, err := h.renterService.List(c.Request().Context(), q)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, newPagedResponse(renters, total, q))
}

// GetByID godoc
// @Summary Get one renter
// @Tags renters
// @Produce json
// @Param id path string true "Renter ID"
// @Success 200 {object} model.Renter
// @Failure 404 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /renters/{id} [get]
func (h *RenterHandler) GetByID(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid renter id")
	}
	renter, err := h.renterService.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, renter)
}

// Licenses godoc
// @Summary List a renter's driver licenses
// @Tags renters
// @Produce json
// @Param id path string true "Renter ID"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /renters/{id}/driver-license [get]
func (h *RenterHandler) Licenses(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid renter id")
	}
	licenses, err := h.renterService.Licenses(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": licenses})
}

// History godoc
// @Summary Own booking history
// @Tags renters
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /renters/history [get]
func (h *RenterHandler) History(c echo.Context) error {
	renterID, err := renterIDFromContext(c)
	if err != nil {
		return err
	}
	bookings, err := h.renterService.History(c.Request().Context(), renterID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": bookings})
}

// Stats godoc
// @Summary Own trip statistics
// @Tags renters
// @Produce json
// @Success 200 {object} service.RenterStats
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /renters/stats [get]
func (h *RenterHandler) Stats(c echo.Context) error {
	renterID, err := renterIDFromContext(c)
	if err != nil {
		return err
	}
	stats, err := h.renterService.Stats(c.Request().Context(), renterID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, stats)
}

// renterIDFromContext pulls the renter profile id baked into the token. A
// renter token without one cannot be scoped, so the request is refused.
func renterIDFromContext(c echo.Context) (uuid.UUID, error) {
	claims, err := auth.ClaimsFromContext(c)
	if err != nil || claims.RenterID == nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusForbidden, apierrors.ErrorResponse{
			Message: "no renter profile linked to this account",
			Code:    "NO_RENTER_PROFILE",
		})
	}
	return *claims.RenterID, nil
}
