package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Project is the DB representation of a project row. The contract terms
// variant is flattened into nullable rate columns; contract_type says which
// of them are meaningful.
type Project struct {
	ProjectID             string           `db:"project_id"`
	UserID                string           `db:"user_id"`
	Name                  string           `db:"name"`
	Client                string           `db:"client"`
	Status                string           `db:"status"`
	PaymentTerms          string           `db:"payment_terms"`
	ContractType          string           `db:"contract_type"`
	StartDate             time.Time        `db:"start_date"`
	EndDate               *time.Time       `db:"end_date"`               // Nullable
	ContractDurationWeeks *int             `db:"contract_duration_weeks"` // Nullable
	HourlyRate            *decimal.Decimal `db:"hourly_rate"`             // Nullable, hourly only
	HoursLogged           *decimal.Decimal `db:"hours_logged"`            // Nullable, hourly only
	MonthlyRate           *decimal.Decimal `db:"monthly_rate"`            // Nullable, monthly only
	TotalAmount           decimal.Decimal  `db:"total_amount"`
	PaidAmount            decimal.Decimal  `db:"paid_amount"`
	AuditFields
}

// Payment is the DB representation of a payment row.
type Payment struct {
	PaymentID   string          `db:"payment_id"`
	ProjectID   string          `db:"project_id"`
	Amount      decimal.Decimal `db:"amount"`
	Date        time.Time       `db:"date"`
	Description string          `db:"description"`
	AuditFields
}
