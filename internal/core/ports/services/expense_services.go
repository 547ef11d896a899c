package services

import (
	"context"

	"github.com/freelanceledger/freelance_ledger_app/internal/core/domain"
	"github.com/freelanceledger/freelance_ledger_app/internal/dto"
)

// ExpenseSvc defines operations for expense data.
type ExpenseSvc interface {
	CreateExpense(ctx context.Context, userID string, req dto.CreateExpenseRequest) (*domain.Expense, error)
	GetExpenseByID(ctx context.Context, userID, expenseID string) (*domain.Expense, error)
	ListExpenses(ctx context.Context, userID string) ([]domain.Expense, error)
	UpdateExpense(ctx context.Context, userID, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, userID, expenseID string) error
}
