package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"evrental/internal/auth"
	"evrental/internal/service"
)

// ProfileHandler handles the caller's own profile.
type ProfileHandler struct {
	profileService service.ProfileService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// UpdateProfileRequest represents a partial profile update.
type UpdateProfileRequest struct {
	FullName       *string `json:"FullName"`
	PhoneNumber    *string `json:"PhoneNumber"`
	Address        *string `json:"Address"`
	DateOfBirth    *string `json:"DateOfBirth" validate:"omitempty,datetime=2006-01-02"`
	IdentityNumber *string `json:"IdentityNumber"`
}

// Get godoc
// @Summary Read own profile
// @Tags profile
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /profile [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	claims, err := auth.ClaimsFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}
	profile, err := h.profileService.Get(c.Request().Context(), claims.AccountID, claims.Role)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": profile})
}

// Update godoc
// @Summary Update own profile
// @Tags profile
// @Accept json
// @Produce json
// @Param request body UpdateProfileRequest true "Fields to update"
// @Success 200 {object} map[string]string
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /profile [put]
func (h *ProfileHandler) Update(c echo.Context) error {
	claims, err := auth.ClaimsFromContext(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "unauthenticated")
	}

	var req UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	input := service.UpdateProfileInput{
		FullName:       req.FullName,
		PhoneNumber:    req.PhoneNumber,
		Address:        req.Address,
		DateOfBirth:    req.DateOfBirth,
		IdentityNumber: req.IdentityNumber,
	}
	if err := h.profileService.Update(c.Request().Context(), claims.AccountID, claims.Role, input); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "profile updated"})
}
