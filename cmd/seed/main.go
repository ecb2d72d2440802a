package main

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"evrental/internal/config"
	"evrental/internal/db"
	"evrental/internal/model"
	"evrental/internal/repository"
)

const bcryptCost = 10

type seedAccount struct {
	Email    string
	Password string
	FullName string
	Phone    string
	Role     model.Role
	Status   model.AccountStatus
}

var seedAccounts = []seedAccount{
	{"admin@evrental.local", "admin123", "System Administrator", "0900000001", model.RoleAdmin, model.AccountStatusActive},
	{"staff@evrental.local", "staff123", "Tran Van Binh", "0900000002", model.RoleStaff, model.AccountStatusActive},
	{"renter1@evrental.local", "renter123", "Nguyen Thi An", "0900000003", model.RoleRenter, model.AccountStatusActive},
	{"renter2@evrental.local", "renter123", "Le Minh Chau", "0900000004", model.RoleRenter, model.AccountStatusPending},
}

var seedVehicles = []model.Vehicle{
	{LicensePlate: "51K-123.45", Brand: "VinFast", Model: "VF e34"},
	{LicensePlate: "51K-678.90", Brand: "VinFast", Model: "VF 8"},
	{LicensePlate: "59X-111.22", Brand: "Yadea", Model: "G5"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()
	ctx := context.Background()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := gormDB.AutoMigrate(
		&model.Account{},
		&model.Renter{},
		&model.Staff{},
		&model.Vehicle{},
		&model.Booking{},
		&model.Report{},
		&model.DriverLicense{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	accounts := repository.NewAccountRepository(gormDB)
	renters := repository.NewRenterRepository(gormDB)
	staff := repository.NewStaffRepository(gormDB)
	vehicles := repository.NewVehicleRepository(gormDB)
	bookings := repository.NewBookingRepository(gormDB)
	reports := repository.NewReportRepository(gormDB)
	licenses := repository.NewDriverLicenseRepository(gormDB)

	var renterIDs []uuid.UUID
	var staffID uuid.UUID

	for _, seed := range seedAccounts {
		account, err := accounts.FindByEmail(ctx, seed.Email)
		if err == nil {
			log.Printf("Account %s already exists, skipping", seed.Email)
		} else if errors.Is(err, gorm.ErrRecordNotFound) {
			hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcryptCost)
			if err != nil {
				log.Fatalf("Failed to hash password: %v", err)
			}
			account = &model.Account{
				Email:        seed.Email,
				PasswordHash: string(hash),
				FullName:     seed.FullName,
				PhoneNumber:  seed.Phone,
				Role:         seed.Role,
				Status:       seed.Status,
			}
			if err := accounts.Create(ctx, account); err != nil {
				log.Fatalf("Failed to create account %s: %v", seed.Email, err)
			}
			log.Printf("Created account %s (%s)", seed.Email, seed.Role)
		} else {
			log.Fatalf("Failed to look up account %s: %v", seed.Email, err)
		}

		switch seed.Role {
		case model.RoleRenter:
			renter, err := renters.FindByAccountID(ctx, account.ID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				renter = &model.Renter{
					AccountID:      account.ID,
					Address:        "District 1, Ho Chi Minh City",
					IdentityNumber: "0790" + seed.Phone[4:],
				}
				if err := renters.Create(ctx, renter); err != nil {
					log.Fatalf("Failed to create renter profile: %v", err)
				}
			} else if err != nil {
				log.Fatalf("Failed to look up renter profile: %v", err)
			}
			renterIDs = append(renterIDs, renter.ID)
		case model.RoleStaff:
			profile, err := staff.FindByAccountID(ctx, account.ID)
			if errors.Is(err, gorm.ErrRecordNotFound) {
				profile = &model.Staff{AccountID: account.ID}
				if err := staff.Create(ctx, profile); err != nil {
					log.Fatalf("Failed to create staff profile: %v", err)
				}
			} else if err != nil {
				log.Fatalf("Failed to look up staff profile: %v", err)
			}
			staffID = profile.ID
		}
	}

	vehicleIDs := make([]uuid.UUID, 0, len(seedVehicles))
	for _, seed := range seedVehicles {
		vehicle, err := vehicles.FindByLicensePlate(ctx, seed.LicensePlate)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			vehicle = &seed
			if err := vehicles.Create(ctx, vehicle); err != nil {
				log.Fatalf("Failed to create vehicle %s: %v", seed.LicensePlate, err)
			}
			log.Printf("Created vehicle %s", seed.LicensePlate)
		} else if err != nil {
			log.Fatalf("Failed to look up vehicle %s: %v", seed.LicensePlate, err)
		}
		vehicleIDs = append(vehicleIDs, vehicle.ID)
	}

	if len(renterIDs) > 0 && len(vehicleIDs) > 0 {
		if total, err := bookings.Count(ctx); err == nil && total == 0 {
			now := time.Now()
			seedBookings := []model.Booking{
				{
					RenterID:      renterIDs[0],
					VehicleID:     vehicleIDs[0],
					StartTime:     now.AddDate(0, 0, -7).Truncate(time.Hour),
					EndTime:       now.AddDate(0, 0, -7).Truncate(time.Hour).Add(4 * time.Hour),
					DepositAmount: decimal.NewFromInt(100),
					Status:        model.BookingStatusCompleted,
				},
				{
					RenterID:      renterIDs[0],
					VehicleID:     vehicleIDs[1],
					StartTime:     now.AddDate(0, 0, -2).Truncate(time.Hour),
					EndTime:       now.AddDate(0, 0, -2).Truncate(time.Hour).Add(8 * time.Hour),
					DepositAmount: decimal.NewFromInt(250),
					Status:        model.BookingStatusCompleted,
				},
				{
					RenterID:      renterIDs[0],
					VehicleID:     vehicleIDs[2],
					StartTime:     now.AddDate(0, 0, 1).Truncate(time.Hour),
					EndTime:       now.AddDate(0, 0, 1).Truncate(time.Hour).Add(2 * time.Hour),
					DepositAmount: decimal.NewFromInt(50),
					Status:        model.BookingStatusPending,
				},
			}
			for i := range seedBookings {
				if err := bookings.Create(ctx, &seedBookings[i]); err != nil {
					log.Fatalf("Failed to create booking: %v", err)
				}
			}
			log.Printf("Created %d bookings", len(seedBookings))
		}

		if _, err := licenses.FindByNumber(ctx, "B2-0790-5533"); errors.Is(err, gorm.ErrRecordNotFound) {
			license := &model.DriverLicense{
				RenterID:       renterIDs[0],
				LicenseNumber:  "B2-0790-5533",
				IssuedDate:     time.Date(2021, 3, 15, 0, 0, 0, 0, time.UTC),
				ExpiryDate:     time.Date(2031, 3, 15, 0, 0, 0, 0, time.UTC),
				LicenseType:    model.LicenseTypeCar,
				IssuedBy:       "HCMC Department of Transport",
				VerifiedStatus: model.LicenseStatusVerified,
			}
			if err := licenses.Create(ctx, license); err != nil {
				log.Fatalf("Failed to create driver license: %v", err)
			}
			log.Println("Created driver license")
		}

		if staffID != uuid.Nil {
			if total, err := reports.CountByStatus(ctx, model.ReportStatusOpen); err == nil && total == 0 {
				report := &model.Report{
					ReportType:    model.ReportTypeIncident,
					RenterID:      &renterIDs[0],
					StaffID:       staffID,
					VehicleID:     &vehicleIDs[0],
					ReportDetails: "Scratch on the rear bumper found at handover.",
					Status:        model.ReportStatusOpen,
				}
				if err := reports.Create(ctx, report); err != nil {
					log.Fatalf("Failed to create report: %v", err)
				}
				log.Println("Created report")
			}
		}
	}

	log.Println("Seed completed")
}
