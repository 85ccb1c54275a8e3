package domain

import (
	"context"
	"time"
)

// Role is the access level granted to an account.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

// IsValid reports whether the role is one of the defined roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	default:
		return false
	}
}

// Status marks whether an account is currently in use.
type Status string

const (
	StatusActive   Status = "Active"
	StatusInactive Status = "Inactive"
)

// IsValid reports whether the status is one of the defined statuses.
func (s Status) IsValid() bool {
	switch s {
	case StatusActive, StatusInactive:
		return true
	default:
		return false
	}
}

// Account is a registered user's persisted identity and credentials.
// PasswordHash holds the bcrypt hash, never the plaintext.
type Account struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Status       Status
	JoinedAt     time.Time
}

// AccountRepository defines persistence operations for accounts.
// Email uniqueness is enforced by the store; Create and Update return
// ErrDuplicateEmail when violated.
type AccountRepository interface {
	Create(ctx context.Context, account *Account) error
	GetByID(ctx context.Context, id string) (*Account, error)
	GetByEmail(ctx context.Context, email string) (*Account, error)
	List(ctx context.Context) ([]Account, error)
	Update(ctx context.Context, account *Account) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context, status Status) (int64, error)
	CountJoinedSince(ctx context.Context, since time.Time) (int64, error)
}
