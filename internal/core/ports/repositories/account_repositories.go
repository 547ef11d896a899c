package repositories

import (
	"context"

	"github.com/freelanceledger/freelance_ledger_app/internal/core/domain"
)

// AccountRepository defines persistence operations for account data.
type AccountRepository interface {
	SaveAccount(ctx context.Context, account domain.Account) error
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	ListAccountsByUser(ctx context.Context, userID string) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, account domain.Account) error
	DeleteAccount(ctx context.Context, accountID string) error
}
