package services

import (
	"context"

	"github.com/freelanceledger/freelance_ledger_app/internal/core/domain"
	"github.com/freelanceledger/freelance_ledger_app/internal/dto"
)

// BudgetSvc defines operations for budget data and budget progress.
type BudgetSvc interface {
	CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, error)
	GetBudgetByID(ctx context.Context, userID, budgetID string) (*domain.Budget, error)
	ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error)
	UpdateBudget(ctx context.Context, userID, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error)
	DeleteBudget(ctx context.Context, userID, budgetID string) error

	// GetProgress resolves the budget for an exact (category, period) pair
	// and aggregates the matching expenses into its window. Returns
	// (nil, nil) when the principal has no budget for the pair.
	GetProgress(ctx context.Context, userID, category string, period domain.BudgetPeriod) (*domain.BudgetProgress, error)
}
