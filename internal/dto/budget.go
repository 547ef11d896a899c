package dto

import (
	"time"

	"github.com/freelanceledger/freelance_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateBudgetRequest defines the data needed to create a budget.
type CreateBudgetRequest struct {
	Category  string              `json:"category" binding:"required"`
	Amount    decimal.Decimal     `json:"amount" binding:"required"`
	Period    domain.BudgetPeriod `json:"period" binding:"required,oneof=monthly quarterly yearly"`
	StartDate string              `json:"startDate" binding:"required,datetime=2006-01-02"`
}

// UpdateBudgetRequest defines the data allowed for updating a budget.
type UpdateBudgetRequest struct {
	Category  *string              `json:"category"`
	Amount    *decimal.Decimal     `json:"amount"`
	Period    *domain.BudgetPeriod `json:"period" binding:"omitempty,oneof=monthly quarterly yearly"`
	StartDate *string              `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
}

// BudgetResponse defines the data returned for a budget.
type BudgetResponse struct {
	BudgetID      string              `json:"budgetID"`
	Category      string              `json:"category"`
	Amount        decimal.Decimal     `json:"amount"`
	Period        domain.BudgetPeriod `json:"period"`
	StartDate     string              `json:"startDate"`
	CreatedAt     time.Time           `json:"createdAt"`
	LastUpdatedAt time.Time           `json:"lastUpdatedAt"`
}

// BudgetProgressResponse reports spending against a budget inside its
// active window.
type BudgetProgressResponse struct {
	Budget      decimal.Decimal `json:"budget"`
	Spent       decimal.Decimal `json:"spent"`
	Remaining   decimal.Decimal `json:"remaining"`
	Percentage  decimal.Decimal `json:"percentage"`
	WindowStart string          `json:"windowStart"`
	WindowEnd   string          `json:"windowEnd"`
}

// ToBudgetResponse converts a domain.Budget to a BudgetResponse DTO.
func ToBudgetResponse(b *domain.Budget) BudgetResponse {
	return BudgetResponse{
		BudgetID:      b.BudgetID,
		Category:      b.Category,
		Amount:        b.Amount,
		Period:        b.Period,
		StartDate:     b.StartDate.Format(time.DateOnly),
		CreatedAt:     b.CreatedAt,
		LastUpdatedAt: b.LastUpdatedAt,
	}
}

// ToBudgetProgressResponse converts a domain.BudgetProgress to its DTO.
func ToBudgetProgressResponse(p *domain.BudgetProgress) BudgetProgressResponse {
	return BudgetProgressResponse{
		Budget:      p.Budget,
		Spent:       p.Spent,
		Remaining:   p.Remaining,
		Percentage:  p.Percentage,
		WindowStart: p.WindowStart.Format(time.DateOnly),
		WindowEnd:   p.WindowEnd.Format(time.DateOnly),
	}
}
