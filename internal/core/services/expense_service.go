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
	"github.com/freelanceledger/freelance_ledger_app/internal/utils"
	"github.com/google/uuid"
)

// expenseService implements the ExpenseSvc interface.
type expenseService struct {
	BaseService
	expenseRepo portsrepo.ExpenseRepository
}

// NewExpenseService creates a new expense service.
func NewExpenseService(repo portsrepo.ExpenseRepository) portssvc.ExpenseSvc {
	return &expenseService{expenseRepo: repo}
}

var _ portssvc.ExpenseSvc = (*expenseService)(nil)

func (s *expenseService) CreateExpense(ctx context.Context, userID string, req dto.CreateExpenseRequest) (*domain.Expense, error) {
	if err := s.RequirePrincipal(userID); err != nil {
		return nil, err
	}

	date, err := utils.ParseDateOnly(req.Date)
	if err != nil {
		return nil, err
	}

	recurrence, err := recurrenceFromRequest(req.IsRecurring, req.RecurrencePattern, req.RecurrenceEndDate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	expense := domain.Expense{
		ExpenseID:  uuid.NewString(),
		UserID:     userID,
		Name:       req.Name,
		Amount:     req.Amount,
		Date:       date,
		Category:   req.Category,
		Account:    req.Account,
		Recurrence: recurrence,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.expenseRepo.SaveExpense(ctx, expense); err != nil {
		s.LogError(ctx, err, "Failed to save expense", slog.String("expense_name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Expense created", slog.String("expense_id", expense.ExpenseID))
	return &expense, nil
}

func (s *expenseService) GetExpenseByID(ctx context.Context, userID, expenseID string) (*domain.Expense, error) {
	if err := s.RequirePrincipal(userID); err != nil {
		return nil, err
	}
	return s.findOwnedExpense(ctx, userID, expenseID)
}

func (s *expenseService) ListExpenses(ctx context.Context, userID string) ([]domain.Expense, error) {
	if err := s.RequirePrincipal(userID); err != nil {
		return nil, err
	}
	expenses, err := s.expenseRepo.ListExpensesByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses")
		return nil, err
	}
	return expenses, nil
}

func (s *expenseService) UpdateExpense(ctx context.Context, userID, expenseID string, req dto.UpdateExpenseRequest) (*domain.Expense, error) {
	if err := s.RequirePrincipal(userID); err != nil {
		return nil, err
	}

	expense, err := s.findOwnedExpense(ctx, userID, expenseID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		expense.Name = *req.Name
	}
	if req.Amount != nil {
		expense.Amount = *req.Amount
	}
	if req.Date != nil {
		date, err := utils.ParseDateOnly(*req.Date)
		if err != nil {
			return nil, err
		}
		expense.Date = date
	}
	if req.Category != nil {
		expense.Category = *req.Category
	}
	if req.Account != nil {
		expense.Account = *req.Account
	}
	if req.IsRecurring != nil || req.RecurrencePattern != nil || req.RecurrenceEndDate != nil {
		isRecurring := expense.Recurrence != nil
		if req.IsRecurring != nil {
			isRecurring = *req.IsRecurring
		}
		recurrence, err := recurrenceFromRequest(isRecurring, req.RecurrencePattern, req.RecurrenceEndDate)
		if err != nil {
			return nil, err
		}
		if recurrence == nil && isRecurring {
			// Pattern unchanged; keep the existing descriptor.
			recurrence = expense.Recurrence
		}
		expense.Recurrence = recurrence
	}

	expense.LastUpdatedAt = time.Now()
	expense.LastUpdatedBy = userID

	if err := s.expenseRepo.UpdateExpense(ctx, *expense); err != nil {
		s.LogError(ctx, err, "Failed to update expense", slog.String("expense_id", expenseID))
		return nil, err
	}

	s.LogInfo(ctx, "Expense updated", slog.String("expense_id", expenseID))
	return expense, nil
}

func (s *expenseService) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	if err := s.RequirePrincipal(userID); err != nil {
		return err
	}

	if _, err := s.findOwnedExpense(ctx, userID, expenseID); err != nil {
		return err
	}

	if err := s.expenseRepo.DeleteExpense(ctx, expenseID); err != nil {
		s.LogError(ctx, err, "Failed to delete expense", slog.String("expense_id", expenseID))
		return err
	}

	s.LogInfo(ctx, "Expense deleted", slog.String("expense_id", expenseID))
	return nil
}

func (s *expenseService) findOwnedExpense(ctx context.Context, userID, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.FindExpenseByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}
	if expense.UserID != userID {
		return nil, fmt.Errorf("%w: expense %s", apperrors.ErrNotFound, expenseID)
	}
	return expense, nil
}

// recurrenceFromRequest builds the recurrence descriptor. A recurring
// expense needs a pattern; a non-recurring one carries no descriptor at
// all, whatever else was provided.
func recurrenceFromRequest(isRecurring bool, pattern *domain.RecurrencePattern, endDate *string) (*domain.Recurrence, error) {
	if !isRecurring {
		return nil, nil
	}
	if pattern == nil {
		return nil, nil
	}

	recurrence := &domain.Recurrence{Pattern: *pattern}
	if endDate != nil {
		parsed, err := utils.ParseDateOnly(*endDate)
		if err != nil {
			return nil, err
		}
		recurrence.EndDate = &parsed
	}
	return recurrence, nil
}
