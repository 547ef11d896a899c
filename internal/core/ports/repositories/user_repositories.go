package repositories

import (
	"context"

	"github.com/freelanceledger/freelance_ledger_app/internal/core/domain"
)

// UserRepository defines persistence operations for user data.
type UserRepository interface {
	SaveUser(ctx context.Context, user domain.User) error
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email for credential checks.
	// Returns ErrNotFound when no user has the given email.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
}
