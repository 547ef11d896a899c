package dto

import (
	"time"

	"github.com/freelanceledger/freelance_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest defines the data needed to record an expense.
type CreateExpenseRequest struct {
	Name              string                    `json:"name" binding:"required"`
	Amount            decimal.Decimal           `json:"amount" binding:"required"`
	Date              string                    `json:"date" binding:"required,datetime=2006-01-02"`
	Category          string                    `json:"category" binding:"required"`
	Account           string                    `json:"account"`
	IsRecurring       bool                      `json:"isRecurring"`
	RecurrencePattern *domain.RecurrencePattern `json:"recurrencePattern" binding:"omitempty,oneof=daily weekly monthly yearly"`
	RecurrenceEndDate *string                   `json:"recurrenceEndDate" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateExpenseRequest defines the data allowed for updating an expense.
type UpdateExpenseRequest struct {
	Name              *string                   `json:"name"`
	Amount            *decimal.Decimal          `json:"amount"`
	Date              *string                   `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Category          *string                   `json:"category"`
	Account           *string                   `json:"account"`
	IsRecurring       *bool                     `json:"isRecurring"`
	RecurrencePattern *domain.RecurrencePattern `json:"recurrencePattern" binding:"omitempty,oneof=daily weekly monthly yearly"`
	RecurrenceEndDate *string                   `json:"recurrenceEndDate" binding:"omitempty,datetime=2006-01-02"`
}

// ExpenseResponse defines the data returned for an expense.
type ExpenseResponse struct {
	ExpenseID         string                    `json:"expenseID"`
	Name              string                    `json:"name"`
	Amount            decimal.Decimal           `json:"amount"`
	Date              string                    `json:"date"`
	Category          string                    `json:"category"`
	Account           string                    `json:"account"`
	IsRecurring       bool                      `json:"isRecurring"`
	RecurrencePattern *domain.RecurrencePattern `json:"recurrencePattern"`
	RecurrenceEndDate *string                   `json:"recurrenceEndDate"`
	CreatedAt         time.Time                 `json:"createdAt"`
	LastUpdatedAt     time.Time                 `json:"lastUpdatedAt"`
}

// ToExpenseResponse converts a domain.Expense to an ExpenseResponse DTO.
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	resp := ExpenseResponse{
		ExpenseID:     e.ExpenseID,
		Name:          e.Name,
		Amount:        e.Amount,
		Date:          e.Date.Format(time.DateOnly),
		Category:      e.Category,
		Account:       e.Account,
		CreatedAt:     e.CreatedAt,
		LastUpdatedAt: e.LastUpdatedAt,
	}

	if e.Recurrence != nil {
		resp.IsRecurring = true
		pattern := e.Recurrence.Pattern
		resp.RecurrencePattern = &pattern
		if e.Recurrence.EndDate != nil {
			endDate := e.Recurrence.EndDate.Format(time.DateOnly)
			resp.RecurrenceEndDate = &endDate
		}
	}

	return resp
}
