package dto

import (
	"time"

	"github.com/freelanceledger/freelance_ledger_app/internal/core/domain"
)

// ExportResponse is the downloadable snapshot artifact: a plain
// serialization of the user's data at the moment of export. No derivation
// happens here.
type ExportResponse struct {
	Projects   []ProjectResponse `json:"projects"`
	Expenses   []ExpenseResponse `json:"expenses"`
	Accounts   []AccountResponse `json:"accounts"`
	ExportedAt time.Time         `json:"exportedAt"`
}

// ToExportResponse converts a domain.Snapshot into the export artifact.
func ToExportResponse(snapshot domain.Snapshot, exportedAt time.Time) ExportResponse {
	resp := ExportResponse{
		Projects:   make([]ProjectResponse, len(snapshot.Projects)),
		Expenses:   make([]ExpenseResponse, len(snapshot.Expenses)),
		Accounts:   make([]AccountResponse, len(snapshot.Accounts)),
		ExportedAt: exportedAt,
	}
	for i := range snapshot.Projects {
		resp.Projects[i] = ToProjectResponse(&snapshot.Projects[i])
	}
	for i := range snapshot.Expenses {
		resp.Expenses[i] = ToExpenseResponse(&snapshot.Expenses[i])
	}
	for i := range snapshot.Accounts {
		resp.Accounts[i] = ToAccountResponse(&snapshot.Accounts[i])
	}
	return resp
}
