package model

import (
	"time"

	"github.com/google/uuid"
)

// LicenseType is the vehicle class a driver license covers.
type LicenseType string

const (
	LicenseTypeCar        LicenseType = "Car"
	LicenseTypeMotorcycle LicenseType = "Motorcycle"
)

// LicenseVerifiedStatus is the verification state of a driver license.
type LicenseVerifiedStatus string

const (
	LicenseStatusPending  LicenseVerifiedStatus = "Pending"
	LicenseStatusVerified LicenseVerifiedStatus = "Verified"
	LicenseStatusRejected LicenseVerifiedStatus = "Rejected"
)

// DriverLicense belongs to a renter.
type DriverLicense struct {
	ID              int64                 `json:"LicenseID" gorm:"primaryKey;autoIncrement"`
	RenterID        uuid.UUID             `json:"RenterID" gorm:"type:char(36);not null;index"`
	LicenseNumber   string                `json:"LicenseNumber" gorm:"uniqueIndex;size:50;not null"`
	IssuedDate      time.Time             `json:"IssuedDate" gorm:"type:date;not null"`
	ExpiryDate      time.Time             `json:"ExpiryDate" gorm:"type:date;not null"`
	LicenseType     LicenseType           `json:"LicenseType" gorm:"type:varchar(20);not null"`
	LicenseImageUrl string                `json:"LicenseImageUrl" gorm:"size:250"`
	IssuedBy        string                `json:"IssuedBy" gorm:"size:120"`
	VerifiedStatus  LicenseVerifiedStatus `json:"VerifiedStatus" gorm:"type:varchar(20);not null;default:'Pending'"`
	VerifiedAt      *time.Time            `json:"VerifiedAt"`

	Renter *Renter `json:"-" gorm:"foreignKey:RenterID"`
}
