package ports

import (
	"context"

	"github.com/cse-motors/inventory-system/internal/core/domain"
)

// RegisterInput carries a validated registration form. Registration always
// creates a Client account; elevated roles are provisioned out of band.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// SecretChange carries an optional password rotation. The decision whether a
// password change is part of an update is made once at the form boundary: a
// nil *SecretChange means profile-only.
type SecretChange struct {
	NewPassword string
}

// UpdateAccountInput carries a validated account update form.
type UpdateAccountInput struct {
	AccountID string
	FirstName string
	LastName  string
	Email     string
	Secret    *SecretChange
}

// UpdateAccountResult reports the outcome of an account update, including
// the re-issued session token reflecting the new claims.
type UpdateAccountResult struct {
	Account         *domain.Account
	Token           string
	PasswordChanged bool
}

// AccountService defines use-case operations on accounts. Register and Login
// return the signed session token alongside the account.
type AccountService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.Account, string, error)
	Login(ctx context.Context, email, password string) (string, *domain.Account, error)
	GetAccount(ctx context.Context, id string) (*domain.Account, error)
	UpdateAccount(ctx context.Context, input UpdateAccountInput) (*UpdateAccountResult, error)
}
