package model

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vehicle is an immutable reference entity for bookings and reports.
type Vehicle struct {
	ID           uuid.UUID `json:"VehicleID" gorm:"type:char(36);primaryKey"`
	LicensePlate string    `json:"LicensePlate" gorm:"uniqueIndex;size:20;not null"`
	Brand        string    `json:"Brand" gorm:"size:100;not null"`
	Model        string    `json:"Model" gorm:"size:100;not null"`
}

// BeforeCreate sets UUID before creating the record.
func (v *Vehicle) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}
