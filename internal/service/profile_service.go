package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apierrors "evrental/internal/errors"
	"evrental/internal/model"
	"evrental/internal/repository"
)

const dateLayout = "2006-01-02"

// ProfileView merges account fields with renter profile fields. Non-renter
// callers get empty renter fields.
type ProfileView struct {
	FullName       string `json:"FullName"`
	Email          string `json:"Email"`
	PhoneNumber    string `json:"PhoneNumber"`
	Address        string `json:"Address"`
	DateOfBirth    string `json:"DateOfBirth"`
	IdentityNumber string `json:"IdentityNumber"`
}

// UpdateProfileInput carries a partial profile update; nil fields are left
// untouched.
type UpdateProfileInput struct {
	FullName       *string
	PhoneNumber    *string
	Address        *string
	DateOfBirth    *string
	IdentityNumber *string
}

// ProfileService handles a caller's own profile.
type ProfileService interface {
	Get(ctx context.Context, accountID uuid.UUID, role model.Role) (*ProfileView, error)
	Update(ctx context.Context, accountID uuid.UUID, role model.Role, input UpdateProfileInput) error
}

type profileService struct {
	accounts repository.AccountRepository
	renters  repository.RenterRepository
}

// NewProfileService creates a new profile service.
func NewProfileService(accounts repository.AccountRepository, renters repository.RenterRepository) ProfileService {
	return &profileService{accounts: accounts, renters: renters}
}

// Get returns the caller's profile, merging renter fields for renters.
func (s *profileService) Get(ctx context.Context, accountID uuid.UUID, role model.Role) (*ProfileView, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}

	profile := &ProfileView{
		FullName:    account.FullName,
		Email:       account.Email,
		PhoneNumber: account.PhoneNumber,
	}

	if role == model.RoleRenter {
		renter, err := s.renters.FindByAccountID(ctx, accountID)
		if err == nil {
			profile.Address = renter.Address
			profile.IdentityNumber = renter.IdentityNumber
			if renter.DateOfBirth != nil {
				profile.DateOfBirth = renter.DateOfBirth.Format(dateLayout)
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("find renter profile: %w", err)
		}
	}

	return profile, nil
}

// Update applies a partial profile update, creating the renter row for a
// renter that has none yet.
func (s *profileService) Update(ctx context.Context, accountID uuid.UUID, role model.Role, input UpdateProfileInput) error {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierrors.ErrAccountNotFound
		}
		return fmt.Errorf("find account: %w", err)
	}

	if input.FullName != nil {
		account.FullName = *input.FullName
	}
	if input.PhoneNumber != nil {
		account.PhoneNumber = *input.PhoneNumber
	}
	if err := s.accounts.Update(ctx, account); err != nil {
		return fmt.Errorf("update account: %w", err)
	}

	if role != model.RoleRenter {
		return nil
	}

	renter, err := s.renters.FindByAccountID(ctx, accountID)
	newProfile := false
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("find renter profile: %w", err)
		}
		renter = &model.Renter{AccountID: accountID}
		newProfile = true
	}

	if input.Address != nil {
		renter.Address = *input.Address
	}
	if input.IdentityNumber != nil {
		renter.IdentityNumber = *input.IdentityNumber
	}
	if input.DateOfBirth != nil {
		dob, err := time.Parse(dateLayout, *input.DateOfBirth)
		if err != nil {
			return fmt.Errorf("parse date of birth: %w", err)
		}
		renter.DateOfBirth = &dob
	}

	if newProfile {
		if err := s.renters.Create(ctx, renter); err != nil {
			return fmt.Errorf("create renter profile: %w", err)
		}
		return nil
	}
	if err := s.renters.Update(ctx, renter); err != nil {
		return fmt.Errorf("update renter profile: %w", err)
	}
	return nil
}
