package services

import (
	"context"

	"github.com/freelanceledger/freelance_ledger_app/internal/core/domain"
	"github.com/freelanceledger/freelance_ledger_app/internal/dto"
)

// AccountSvc defines operations for account data.
type AccountSvc interface {
	CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error)
	GetAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error)
	ListAccounts(ctx context.Context, userID string) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, userID, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error)
	DeleteAccount(ctx context.Context, userID, accountID string) error
}
