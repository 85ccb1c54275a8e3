package service

import (
	"context"
	"fmt"

	"github.com/tbeckert/admindash/internal/domain"
)

// UserService handles administrative account management.
type UserService struct {
	accounts domain.AccountRepository
}

// NewUserService creates a new UserService.
func NewUserService(accounts domain.AccountRepository) *UserService {
	return &UserService{accounts: accounts}
}

// List returns all accounts in join order.
func (s *UserService) List(ctx context.Context) ([]domain.Account, error) {
	return s.accounts.List(ctx)
}

// Get returns a single account by ID.
func (s *UserService) Get(ctx context.Context, id string) (*domain.Account, error) {
	return s.accounts.GetByID(ctx, id)
}

// UpdateParams holds the optional fields of an account update. Nil fields
// are left unchanged.
type UpdateParams struct {
	Name   *string
	Email  *string
	Role   *domain.Role
	Status *domain.Status
}

// Update applies a partial update to an account and returns the updated
// record.
func (s *UserService) Update(ctx context.Context, id string, params UpdateParams) (*domain.Account, error) {
	account, err := s.accounts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if params.Name != nil {
		account.Name = *params.Name
	}
	if params.Email != nil {
		account.Email = *params.Email
	}
	if params.Role != nil {
		if !params.Role.IsValid() {
			return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, *params.Role)
		}
		account.Role = *params.Role
	}
	if params.Status != nil {
		if !params.Status.IsValid() {
			return nil, fmt.Errorf("%w: unknown status %q", domain.ErrInvalidInput, *params.Status)
		}
		account.Status = *params.Status
	}

	if err := s.accounts.Update(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

// Delete removes an account.
func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.accounts.Delete(ctx, id)
}
