package model

import (
	"time"

	"github.com/google/uuid"
)

// ReportType classifies what a report is about.
type ReportType string

const (
	ReportTypeIncident ReportType = "Incident"
	ReportTypeRenter   ReportType = "Renter"
	ReportTypeHandover ReportType = "Handover"
)

// ReportStatus represents the status of a report. Closed is terminal.
type ReportStatus string

const (
	ReportStatusOpen    ReportStatus = "Open"
	ReportStatusPending ReportStatus = "Pending"
	ReportStatusClosed  ReportStatus = "Closed"
)

// Report is a staff-authored record about a renter, a vehicle, or both.
type Report struct {
	ID            int          `json:"ReportID" gorm:"primaryKey;autoIncrement"`
	ReportType    ReportType   `json:"ReportType" gorm:"type:varchar(20);not null;default:'Incident'"`
	RenterID      *uuid.UUID   `json:"RenterID" gorm:"type:char(36);index"`
	StaffID       uuid.UUID    `json:"StaffID" gorm:"type:char(36);not null"`
	VehicleID     *uuid.UUID   `json:"VehicleID" gorm:"type:char(36)"`
	ReportDetails string       `json:"ReportDetails" gorm:"type:text"`
	CreatedAt     time.Time    `json:"CreatedAt"`
	ResolvedAt    *time.Time   `json:"ResolvedAt"`
	Status        ReportStatus `json:"Status" gorm:"type:varchar(20);not null;default:'Open';index"`
	IsHighRisk    bool         `json:"IsHighRisk" gorm:"not null;default:false;index"`

	Renter  *Renter  `json:"Renter,omitempty" gorm:"foreignKey:RenterID"`
	Staff   *Staff   `json:"Staff,omitempty" gorm:"foreignKey:StaffID"`
	Vehicle *Vehicle `json:"Vehicle,omitempty" gorm:"foreignKey:VehicleID"`
}
