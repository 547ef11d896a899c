package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/freelanceledger/freelance_ledger_app/internal/apperrors"
	"github.com/freelanceledger/freelance_ledger_app/internal/core/domain"
	"github.com/freelanceledger/freelance_ledger_app/internal/core/finance"
	portsrepo "github.com/freelanceledger/freelance_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/freelanceledger/freelance_ledger_app/internal/core/ports/services"
	"github.com/freelanceledger/freelance_ledger_app/internal/dto"
	"github.com/freelanceledger/freelance_ledger_app/internal/utils"
	"github.com/google/uuid"
)

// budgetService implements the BudgetSvc interface. Progress is derived
// from the budget and the expense snapshot on every call.
type budgetService struct {
	BaseService
	budgetRepo  portsrepo.BudgetRepository
	expenseRepo portsrepo.ExpenseRepository
}

// NewBudgetService creates a new budget service.
func NewBudgetService(budgetRepo portsrepo.BudgetRepository, expenseRepo portsrepo.ExpenseRepository) portssvc.BudgetSvc {
	return &budgetService{budgetRepo: budgetRepo, expenseRepo: expenseRepo}
}

var _ portssvc.BudgetSvc = (*budgetService)(nil)

func (s *budgetService) CreateBudget(ctx context.Context, userID string, req dto.CreateBudgetRequest) (*domain.Budget, error) {
	if err := s.RequirePrincipal(userID); err != nil {
		return nil, err
	}

	startDate, err := utils.ParseDateOnly(req.StartDate)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	budget := domain.Budget{
		BudgetID:  uuid.NewString(),
		UserID:    userID,
		Category:  req.Category,
		Amount:    req.Amount,
		Period:    req.Period,
		StartDate: startDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.budgetRepo.SaveBudget(ctx, budget); err != nil {
		s.LogError(ctx, err, "Failed to save budget", slog.String("category", req.Category))
		return nil, err
	}

	s.LogInfo(ctx, "Budget created",
		slog.String("budget_id", budget.BudgetID),
		slog.String("category", budget.Category),
		slog.String("period", string(budget.Period)))
	return &budget, nil
}

func (s *budgetService) GetBudgetByID(ctx context.Context, userID, budgetID string) (*domain.Budget, error) {
	if err := s.RequirePrincipal(userID); err != nil {
		return nil, err
	}
	return s.findOwnedBudget(ctx, userID, budgetID)
}

func (s *budgetService) ListBudgets(ctx context.Context, userID string) ([]domain.Budget, error) {
	if err := s.RequirePrincipal(userID); err != nil {
		return nil, err
	}
	budgets, err := s.budgetRepo.ListBudgetsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list budgets")
		return nil, err
	}
	return budgets, nil
}

func (s *budgetService) UpdateBudget(ctx context.Context, userID, budgetID string, req dto.UpdateBudgetRequest) (*domain.Budget, error) {
	if err := s.RequirePrincipal(userID); err != nil {
		return nil, err
	}

	budget, err := s.findOwnedBudget(ctx, userID, budgetID)
	if err != nil {
		return nil, err
	}

	if req.Category != nil {
		budget.Category = *req.Category
	}
	if req.Amount != nil {
		budget.Amount = *req.Amount
	}
	if req.Period != nil {
		budget.Period = *req.Period
	}
	if req.StartDate != nil {
		startDate, err := utils.ParseDateOnly(*req.StartDate)
		if err != nil {
			return nil, err
		}
		budget.StartDate = startDate
	}

	budget.LastUpdatedAt = time.Now()
	budget.LastUpdatedBy = userID

	if err := s.budgetRepo.UpdateBudget(ctx, *budget); err != nil {
		s.LogError(ctx, err, "Failed to update budget", slog.String("budget_id", budgetID))
		return nil, err
	}

	s.LogInfo(ctx, "Budget updated", slog.String("budget_id", budgetID))
	return budget, nil
}

func (s *budgetService) DeleteBudget(ctx context.Context, userID, budgetID string) error {
	if err := s.RequirePrincipal(userID); err != nil {
		return err
	}

	if _, err := s.findOwnedBudget(ctx, userID, budgetID); err != nil {
		return err
	}

	if err := s.budgetRepo.DeleteBudget(ctx, budgetID); err != nil {
		s.LogError(ctx, err, "Failed to delete budget", slog.String("budget_id", budgetID))
		return err
	}

	s.LogInfo(ctx, "Budget deleted", slog.String("budget_id", budgetID))
	return nil
}

// GetProgress resolves the principal's budget for the (category, period)
// pair and folds the matching expenses into its window. No matching budget
// is not an error; the caller gets nil.
func (s *budgetService) GetProgress(ctx context.Context, userID, category string, period domain.BudgetPeriod) (*domain.BudgetProgress, error) {
	if err := s.RequirePrincipal(userID); err != nil {
		return nil, err
	}

	budget, err := s.budgetRepo.FindBudgetByCategoryAndPeriod(ctx, userID, category, period)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		s.LogError(ctx, err, "Failed to look up budget",
			slog.String("category", category),
			slog.String("period", string(period)))
		return nil, err
	}

	expenses, err := s.expenseRepo.ListExpensesByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load expenses for budget progress")
		return nil, err
	}

	progress, err := finance.ComputeProgress(*budget, expenses)
	if err != nil {
		return nil, err
	}
	return progress, nil
}

func (s *budgetService) findOwnedBudget(ctx context.Context, userID, budgetID string) (*domain.Budget, error) {
	budget, err := s.budgetRepo.FindBudgetByID(ctx, budgetID)
	if err != nil {
		return nil, err
	}
	if budget.UserID != userID {
		return nil, fmt.Errorf("%w: budget %s", apperrors.ErrNotFound, budgetID)
	}
	return budget, nil
}
