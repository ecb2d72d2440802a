package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Renter is the profile extension of a renter account.
type Renter struct {
	ID                    uuid.UUID  `json:"RenterID" gorm:"type:char(36);primaryKey"`
	AccountID             uuid.UUID  `json:"AccountID" gorm:"type:char(36);not null;index"`
	Address               string     `json:"Address" gorm:"size:255"`
	DateOfBirth           *time.Time `json:"DateOfBirth" gorm:"type:date"`
	IdentityNumber        string     `json:"IdentityNumber" gorm:"size:20"`
	FrontIdentityImageUrl string     `json:"FrontIdentityImageUrl" gorm:"size:255"`
	BackIdentityImageUrl  string     `json:"BackIdentityImageUrl" gorm:"size:255"`

	Account *Account `json:"Account,omitempty" gorm:"foreignKey:AccountID"`
}

// BeforeCreate sets UUID before creating the record.
func (r *Renter) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// Staff is the profile extension of a staff account. It carries no extra
// attributes beyond the linkage today.
type Staff struct {
	ID        uuid.UUID `json:"StaffID" gorm:"type:char(36);primaryKey"`
	AccountID uuid.UUID `json:"AccountID" gorm:"type:char(36);uniqueIndex;not null"`

	Account *Account `json:"Account,omitempty" gorm:"foreignKey:AccountID"`
}

// BeforeCreate sets UUID before creating the record.
func (s *Staff) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
