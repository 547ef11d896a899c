package dto

import (
	"github.com/freelanceledger/freelance_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// StatsResponse carries the headline dashboard totals.
type StatsResponse struct {
	TotalEarned    decimal.Decimal `json:"totalEarned"`
	TotalPending   decimal.Decimal `json:"totalPending"`
	TotalExpenses  decimal.Decimal `json:"totalExpenses"`
	NetBalance     decimal.Decimal `json:"netBalance"`
	AccountsTotal  decimal.Decimal `json:"accountsTotal"`
	ProjectCount   int             `json:"projectCount"`
	ActiveProjects int             `json:"activeProjects"`
}

// ToStatsResponse converts domain.Stats to a StatsResponse DTO.
func ToStatsResponse(s domain.Stats) StatsResponse {
	return StatsResponse{
		TotalEarned:    s.TotalEarned,
		TotalPending:   s.TotalPending,
		TotalExpenses:  s.TotalExpenses,
		NetBalance:     s.NetBalance,
		AccountsTotal:  s.AccountsTotal,
		ProjectCount:   s.ProjectCount,
		ActiveProjects: s.ActiveProjects,
	}
}
