package main

import (
	"log"
	"net/http"

	"evrental/docs"

	"github.com/labstack/echo/v4"

	"evrental/internal/auth"
	"evrental/internal/cache"
	"evrental/internal/config"
	"evrental/internal/db"
	"evrental/internal/handler"
	"evrental/internal/model"
	"evrental/internal/repository"
	"evrental/internal/router"
	"evrental/internal/service"
)

// @title EV Rental Admin API
// @version 1.0
// @description EV rental administrative API with JWT authentication, role-gated listings and dashboard aggregates.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = cfg.SwaggerHost
	}

	e := echo.New()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.Account{},
		&model.Renter{},
		&model.Staff{},
		&model.Vehicle{},
		&model.Booking{},
		&model.Report{},
		&model.DriverLicense{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	accountRepo := repository.NewAccountRepository(gormDB)
	renterRepo := repository.NewRenterRepository(gormDB)
	staffRepo := repository.NewStaffRepository(gormDB)
	vehicleRepo := repository.NewVehicleRepository(gormDB)
	bookingRepo := repository.NewBookingRepository(gormDB)
	reportRepo := repository.NewReportRepository(gormDB)
	licenseRepo := repository.NewDriverLicenseRepository(gormDB)

	// Initialize auth components
	tokenService := auth.NewTokenService(cfg.JWTSecret)

	// Initialize services
	authService := service.NewAuthService(accountRepo, staffRepo, renterRepo, tokenService)
	accountService := service.NewAccountService(accountRepo)
	renterService := service.NewRenterService(renterRepo, bookingRepo, licenseRepo)
	bookingService := service.NewBookingService(bookingRepo)
	reportService := service.NewReportService(reportRepo)
	profileService := service.NewProfileService(accountRepo, renterRepo)
	statsService := service.NewStatsService(bookingRepo, renterRepo, vehicleRepo, reportRepo, cacheClient)
	riskService := service.NewRiskService(reportRepo, renterRepo)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authService)
	renterHandler := handler.NewRenterHandler(renterService)
	bookingHandler := handler.NewBookingHandler(bookingService)
	reportHandler := handler.NewReportHandler(reportService)
	profileHandler := handler.NewProfileHandler(profileService)
	adminHandler := handler.NewAdminHandler(accountService, statsService)
	riskHandler := handler.NewRiskHandler(riskService)

	// Register routes
	router.Register(
		e,
		cfg,
		authHandler,
		renterHandler,
		bookingHandler,
		reportHandler,
		profileHandler,
		adminHandler,
		riskHandler,
	)

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
