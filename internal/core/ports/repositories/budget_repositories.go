package repositories

import (
	"context"

	"github.com/freelanceledger/freelance_ledger_app/internal/core/domain"
)

// BudgetRepository defines persistence operations for budget data.
type BudgetRepository interface {
	SaveBudget(ctx context.Context, budget domain.Budget) error
	FindBudgetByID(ctx context.Context, budgetID string) (*domain.Budget, error)

	// FindBudgetByCategoryAndPeriod retrieves the principal's budget for an
	// exact (category, period) pair, first match. Returns ErrNotFound when
	// no budget matches.
	FindBudgetByCategoryAndPeriod(ctx context.Context, userID, category string, period domain.BudgetPeriod) (*domain.Budget, error)

	ListBudgetsByUser(ctx context.Context, userID string) ([]domain.Budget, error)
	UpdateBudget(ctx context.Context, budget domain.Budget) error
	DeleteBudget(ctx context.Context, budgetID string) error
}
