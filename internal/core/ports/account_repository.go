package ports

import (
	"context"

	"github.com/cse-motors/inventory-system/internal/core/domain"
)

// AccountRepository defines the interface for account persistence.
type AccountRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	// EmailExists reports whether email is already taken. When excludeID is
	// non-empty, the account with that id is ignored (profile updates).
	EmailExists(ctx context.Context, email, excludeID string) (bool, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	UpdateProfile(ctx context.Context, id, firstName, lastName, email string) (*domain.Account, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) (*domain.Account, error)
}
