package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	apierrors "evrental/internal/errors"
	"evrental/internal/model"
	"evrental/internal/repository"
)

// AccountService handles admin account lifecycle transitions. Every
// transition checks the current state and fails instead of no-op-ing, so a
// redundant call surfaces as an error rather than a silent rewrite.
type AccountService interface {
	Approve(ctx context.Context, id uuid.UUID) error
	Reactivate(ctx context.Context, id uuid.UUID) error
	Deactivate(ctx context.Context, id uuid.UUID) error
	HardDelete(ctx context.Context, id uuid.UUID) error
}

type accountService struct {
	accounts repository.AccountRepository
}

// NewAccountService creates a new account service.
func NewAccountService(accounts repository.AccountRepository) AccountService {
	return &accountService{accounts: accounts}
}

func (s *accountService) find(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	account, err := s.accounts.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierrors.ErrAccountNotFound
		}
		return nil, fmt.Errorf("find account: %w", err)
	}
	return account, nil
}

// Approve moves a Pending account to Active.
func (s *accountService) Approve(ctx context.Context, id uuid.UUID) error {
	account, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if account.Status != model.AccountStatusPending {
		return apierrors.ErrAccountNotPending
	}
	return s.accounts.UpdateStatus(ctx, id, model.AccountStatusActive)
}

// Reactivate moves a deactivated account back to Active.
func (s *accountService) Reactivate(ctx context.Context, id uuid.UUID) error {
	account, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if account.Status == model.AccountStatusActive {
		return apierrors.ErrAccountAlreadyActive
	}
	return s.accounts.UpdateStatus(ctx, id, model.AccountStatusActive)
}

// Deactivate soft-deletes an account by marking it Inactive. Admin accounts
// are off limits.
func (s *accountService) Deactivate(ctx context.Context, id uuid.UUID) error {
	account, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if account.Role == model.RoleAdmin {
		return apierrors.ErrAdminProtected
	}
	return s.accounts.UpdateStatus(ctx, id, model.AccountStatusInactive)
}

// HardDelete irreversibly removes an account and its renter/staff rows.
func (s *accountService) HardDelete(ctx context.Context, id uuid.UUID) error {
	account, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if account.Role == model.RoleAdmin {
		return apierrors.ErrAdminProtected
	}
	return s.accounts.HardDelete(ctx, id)
}
