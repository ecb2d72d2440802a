package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// BookingStatus represents the status of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "Pending"
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCancelled BookingStatus = "Cancelled"
	BookingStatusExpired   BookingStatus = "Expired"
	BookingStatusCompleted BookingStatus = "Completed"
)

// Booking links a renter and a vehicle over a time interval.
type Booking struct {
	ID            uuid.UUID       `json:"BookingID" gorm:"type:char(36);primaryKey"`
	RenterID      uuid.UUID       `json:"RenterID" gorm:"type:char(36);not null;index"`
	VehicleID     uuid.UUID       `json:"VehicleID" gorm:"type:char(36);not null;index"`
	StartTime     time.Time       `json:"StartTime" gorm:"not null;index"`
	EndTime       time.Time       `json:"EndTime" gorm:"not null"`
	DepositAmount decimal.Decimal `json:"DepositAmount" gorm:"type:decimal(10,2);not null;default:0"`
	Status        BookingStatus   `json:"Status" gorm:"type:varchar(20);not null;default:'Pending';index"`
	CreatedAt     time.Time       `json:"CreatedAt"`
	CancelledAt   *time.Time      `json:"CancelledAt"`

	Renter  *Renter  `json:"Renter,omitempty" gorm:"foreignKey:RenterID"`
	Vehicle *Vehicle `json:"Vehicle,omitempty" gorm:"foreignKey:VehicleID"`
}

// BeforeCreate sets UUID before creating the record.
func (b *Booking) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

// DurationHours is the booking length in whole hours, rounded.
func (b *Booking) DurationHours() int {
	return int(b.EndTime.Sub(b.StartTime).Round(time.Hour) / time.Hour)
}

// TotalCost is derived; nothing beyond the deposit is charged today.
func (b *Booking) TotalCost() decimal.Decimal {
	return b.DepositAmount
}
