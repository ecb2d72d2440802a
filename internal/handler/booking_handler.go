package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"evrental/internal/service"
)

// BookingHandler handles booking listing endpoints.
type BookingHandler struct {
	bookingService service.BookingService
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(bookingService service.BookingService) *BookingHandler {
	return &BookingHandler{bookingService: bookingService}
}

// List godoc
// @Summary List bookings
// @Tags bookings
// @Produce json
// @Param page query int false "Page (1-based)"
// @Param limit query int false "Page size"
// @Param search query string false "Substring over renter name and license plate"
// @Param status query string false "Booking status filter, All disables"
// @Success 200 {object} PagedResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /bookings [get]
func (h *BookingHandler) List(c echo.Context) error {
	q := parseListQuery(c)
	bookings, total, err := h.bookingService.List(c.Request().Context(), q)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, newPagedResponse(bookings, total, q))
}

// My godoc
// @Summary Own bookings with inline stats
// @Tags bookings
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 403 {object} errors.ErrorResponse
// @Security BearerAuth
// @Router /bookings/my [get]
func (h *BookingHandler) My(c echo.Context) error {
	renterID, err := renterIDFromContext(c)
	if err != nil {
		return err
	}
	bookings, stats, err := h.bookingService.MyBookings(c.Request().Context(), renterID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"data":  bookings,
		"stats": stats,
	})
}

// Recent godoc
// @Summary Latest bookings for the dashboard widget
// @Tags bookings
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /bookings/recent [get]
func (h *BookingHandler) Recent(c echo.Context) error {
	bookings, err := h.bookingService.Recent(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"data": bookings})
}
