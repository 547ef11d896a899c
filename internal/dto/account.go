package dto

import (
	"time"

	"github.com/freelanceledger/freelance_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to create a new account.
type CreateAccountRequest struct {
	Name    string             `json:"name" binding:"required"`
	Balance decimal.Decimal    `json:"balance"`
	Type    domain.AccountType `json:"type" binding:"required,oneof=Checking Savings Credit Investment Other"`
}

// UpdateAccountRequest defines the data allowed for updating an account.
type UpdateAccountRequest struct {
	Name    *string             `json:"name"`
	Balance *decimal.Decimal    `json:"balance"`
	Type    *domain.AccountType `json:"type" binding:"omitempty,oneof=Checking Savings Credit Investment Other"`
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID     string             `json:"accountID"`
	Name          string             `json:"name"`
	Balance       decimal.Decimal    `json:"balance"`
	Type          domain.AccountType `json:"type"`
	CreatedAt     time.Time          `json:"createdAt"`
	LastUpdatedAt time.Time          `json:"lastUpdatedAt"`
}

// ToAccountResponse converts a domain.Account to an AccountResponse DTO.
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:     a.AccountID,
		Name:          a.Name,
		Balance:       a.Balance,
		Type:          a.Type,
		CreatedAt:     a.CreatedAt,
		LastUpdatedAt: a.LastUpdatedAt,
	}
}
