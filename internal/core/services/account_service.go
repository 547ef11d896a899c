package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/freelanceledger/freelance_ledger_app/internal/apperrors"
	"github.com/freelanceledger/freelance_ledger_app/internal/core/domain"
	portsrepo "github.com/freelanceledger/freelance_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/freelanceledger/freelance_ledger_app/internal/core/ports/services"
	"github.com/freelanceledger/freelance_ledger_app/internal/dto"
	"github.com/google/uuid"
)

// accountService implements the AccountSvc interface.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepository
}

// NewAccountService creates a new account service.
func NewAccountService(repo portsrepo.AccountRepository) portssvc.AccountSvc {
	return &accountService{accountRepo: repo}
}

var _ portssvc.AccountSvc = (*accountService)(nil)

func (s *accountService) CreateAccount(ctx context.Context, userID string, req dto.CreateAccountRequest) (*domain.Account, error) {
	if err := s.RequirePrincipal(userID); err != nil {
		return nil, err
	}

	now := time.Now()
	account := domain.Account{
		AccountID: uuid.NewString(),
		UserID:    userID,
		Name:      req.Name,
		Balance:   req.Balance,
		Type:      req.Type,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		s.LogError(ctx, err, "Failed to save account", slog.String("account_name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID))
	return &account, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, userID, accountID string) (*domain.Account, error) {
	if err := s.RequirePrincipal(userID); err != nil {
		return nil, err
	}
	return s.findOwnedAccount(ctx, userID, accountID)
}

func (s *accountService) ListAccounts(ctx context.Context, userID string) ([]domain.Account, error) {
	if err := s.RequirePrincipal(userID); err != nil {
		return nil, err
	}
	accounts, err := s.accountRepo.ListAccountsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, err
	}
	return accounts, nil
}

func (s *accountService) UpdateAccount(ctx context.Context, userID, accountID string, req dto.UpdateAccountRequest) (*domain.Account, error) {
	if err := s.RequirePrincipal(userID); err != nil {
		return nil, err
	}

	account, err := s.findOwnedAccount(ctx, userID, accountID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		account.Name = *req.Name
	}
	if req.Balance != nil {
		account.Balance = *req.Balance
	}
	if req.Type != nil {
		account.Type = *req.Type
	}

	account.LastUpdatedAt = time.Now()
	account.LastUpdatedBy = userID

	if err := s.accountRepo.UpdateAccount(ctx, *account); err != nil {
		s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		return nil, err
	}

	s.LogInfo(ctx, "Account updated", slog.String("account_id", accountID))
	return account, nil
}

func (s *accountService) DeleteAccount(ctx context.Context, userID, accountID string) error {
	if err := s.RequirePrincipal(userID); err != nil {
		return err
	}

	if _, err := s.findOwnedAccount(ctx, userID, accountID); err != nil {
		return err
	}

	if err := s.accountRepo.DeleteAccount(ctx, accountID); err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		return err
	}

	s.LogInfo(ctx, "Account deleted", slog.String("account_id", accountID))
	return nil
}

func (s *accountService) findOwnedAccount(ctx context.Context, userID, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.UserID != userID {
		return nil, fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return account, nil
}
