package repositories

import (
	"context"

	"github.com/freelanceledger/freelance_ledger_app/internal/core/domain"
)

// ExpenseRepository defines persistence operations for expense data.
type ExpenseRepository interface {
	SaveExpense(ctx context.Context, expense domain.Expense) error
	FindExpenseByID(ctx context.Context, expenseID string) (*domain.Expense, error)
	ListExpensesByUser(ctx context.Context, userID string) ([]domain.Expense, error)
	UpdateExpense(ctx context.Context, expense domain.Expense) error
	DeleteExpense(ctx context.Context, expenseID string) error
}
