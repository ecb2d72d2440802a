package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"evrental/internal/auth"
	apierrors "evrental/internal/errors"
	"evrental/internal/model"
	"evrental/internal/repository"
)

// UserInfo is the identity payload echoed back on login, mirroring the
// claims baked into the token.
type UserInfo struct {
	AccountID uuid.UUID  `json:"AccountID"`
	Email     string     `json:"Email"`
	FullName  string     `json:"FullName"`
	Role      model.Role `json:"Role"`
	StaffID   *uuid.UUID `json:"StaffID"`
	RenterID  *uuid.UUID `json:"RenterID"`
}

// AuthService handles authentication operations.
type AuthService interface {
	Login(ctx context.Context, email, password string) (token string, user *UserInfo, err error)
}

type authService struct {
	accounts repository.AccountRepository
	staff    repository.StaffRepository
	renters  repository.RenterRepository
	tokens   *auth.TokenService
}

// NewAuthService creates a new authentication service.
func NewAuthService(
	accounts repository.AccountRepository,
	staff repository.StaffRepository,
	renters repository.RenterRepository,
	tokens *auth.TokenService,
) AuthService {
	return &authService{
		accounts: accounts,
		staff:    staff,
		renters:  renters,
		tokens:   tokens,
	}
}

// Login authenticates an account and returns a session token. Unknown email
// and wrong password fail identically.
func (s *authService) Login(ctx context.Context, email, password string) (string, *UserInfo, error) {
	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, apierrors.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("find account: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return "", nil, apierrors.ErrInvalidCredentials
	}

	if account.Status != model.AccountStatusActive {
		return "", nil, apierrors.ErrAccountNotActive
	}

	// Embed the profile id for the account's role so handlers can scope
	// queries without extra lookups.
	var staffID, renterID *uuid.UUID
	switch account.Role {
	case model.RoleStaff:
		if staff, err := s.staff.FindByAccountID(ctx, account.ID); err == nil {
			staffID = &staff.ID
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, fmt.Errorf("find staff profile: %w", err)
		}
	case model.RoleRenter:
		if renter, err := s.renters.FindByAccountID(ctx, account.ID); err == nil {
			renterID = &renter.ID
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return "", nil, fmt.Errorf("find renter profile: %w", err)
		}
	}

	token, err := s.tokens.Issue(account, staffID, renterID)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	return token, &UserInfo{
		AccountID: account.ID,
		Email:     account.Email,
		FullName:  account.FullName,
		Role:      account.Role,
		StaffID:   staffID,
		RenterID:  renterID,
	}, nil
}
