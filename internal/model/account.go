package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role classifies what an account is allowed to do.
type Role string

const (
	RoleRenter Role = "Renter"
	RoleStaff  Role = "Staff"
	RoleAdmin  Role = "Admin"
)

// AccountStatus is the lifecycle state of an account.
type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "Active"
	AccountStatusInactive AccountStatus = "Inactive"
	AccountStatusLocked   AccountStatus = "Locked"
	AccountStatusPending  AccountStatus = "Pending"
)

// Account is the identity record behind every renter, staff member and admin.
type Account struct {
	ID           uuid.UUID     `json:"AccountID" gorm:"type:char(36);primaryKey"`
	Email        string        `json:"Email" gorm:"uniqueIndex;size:100;not null"`
	PasswordHash string        `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	PhoneNumber  string        `json:"PhoneNumber" gorm:"size:20"`
	FullName     string        `json:"FullName" gorm:"size:100;not null"`
	Role         Role          `json:"Role" gorm:"type:varchar(20);not null;default:'Renter';index"`
	Status       AccountStatus `json:"Status" gorm:"type:varchar(20);not null;default:'Pending';index"`
	CreatedAt    time.Time     `json:"CreatedAt"`
	UpdatedAt    time.Time     `json:"UpdatedAt"`
}

// BeforeCreate sets UUID before creating the record.
func (a *Account) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
