package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"evrental/internal/auth"
	"evrental/internal/config"
	"evrental/internal/handler"
)

// Register wires routes and middleware. Role requirements live here, in one
// table, instead of inside the handlers.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	renterHandler *handler.RenterHandler,
	bookingHandler *handler.BookingHandler,
	reportHandler *handler.ReportHandler,
	profileHandler *handler.ProfileHandler,
	adminHandler *handler.AdminHandler,
	riskHandler *handler.RiskHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/login", authHandler.Login)

	// Secured routes: token verification first, then the role gate per route.
	secured := api.Group("", auth.Middleware(cfg.JWTSecret))

	admin := auth.RequireRoles(auth.AdminOnly...)
	renter := auth.RequireRoles(auth.RenterOnly...)
	staff := auth.RequireRoles(auth.StaffOrAdmin...)
	anyAuth := auth.RequireRoles(auth.AnyAuthenticated...)

	// Renter routes. Self-service paths come before the parameterized ones
	// so /renters/history does not bind as an id.
	secured.GET("/renters/history", renterHandler.History, renter)
	secured.GET("/renters/stats", renterHandler.Stats, renter)
	secured.GET("/renters", renterHandler.List, admin)
	secured.GET("/renters/:id/driver-license", renterHandler.Licenses, admin)
	secured.GET("/renters/:id", renterHandler.GetByID, admin)

	// Profile routes
	secured.GET("/profile", profileHandler.Get, anyAuth)
	secured.PUT("/profile", profileHandler.Update, anyAuth)

	// Booking routes
	secured.GET("/bookings", bookingHandler.List, admin)
	secured.GET("/bookings/my", bookingHandler.My, renter)
	secured.GET("/bookings/recent", bookingHandler.Recent, admin)

	// Report routes
	secured.POST("/reports", reportHandler.Create, staff)
	secured.GET("/reports", reportHandler.List, admin)
	secured.GET("/reports/recent", reportHandler.Recent, admin)
	secured.PUT("/reports/:id/status", reportHandler.UpdateStatus, admin)

	// Admin account lifecycle + dashboard
	secured.PUT("/admin/accounts/:id/approve", adminHandler.Approve, admin)
	secured.PUT("/admin/accounts/:id/reactivate", adminHandler.Reactivate, admin)
	secured.DELETE("/admin/accounts/:id", adminHandler.Deactivate, admin)
	secured.DELETE("/admin/accounts/:id/hard", adminHandler.HardDelete, admin)
	secured.GET("/admin/stats", adminHandler.Stats, admin)

	// Risk routes
	secured.GET("/risks", riskHandler.List, admin)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
