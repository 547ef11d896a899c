package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ContractType identifies the billing model of a project.
type ContractType string

const (
	ContractFixed   ContractType = "fixed"
	ContractHourly  ContractType = "hourly"
	ContractMonthly ContractType = "monthly"
)

// ProjectStatus tracks where a project is in its lifecycle.
type ProjectStatus string

const (
	StatusPending    ProjectStatus = "pending"
	StatusInProgress ProjectStatus = "in_progress"
	StatusCompleted  ProjectStatus = "completed"
)

// PaymentTerms is a descriptive label for the agreed payment cadence.
// It carries no computation.
type PaymentTerms string

const (
	TermsMilestone      PaymentTerms = "milestone"
	TermsWeekly         PaymentTerms = "weekly"
	TermsBiweekly       PaymentTerms = "biweekly"
	TermsMonthly        PaymentTerms = "monthly"
	TermsHalfUpfront    PaymentTerms = "half-upfront"
	TermsFullUpfront    PaymentTerms = "full-upfront"
	TermsUponCompletion PaymentTerms = "upon-completion"
)

// ContractTerms is the billing arrangement of a project. Exactly one variant
// is active at a time; changing the contract type replaces the variant
// wholesale, which is what discards fields irrelevant to the new type.
type ContractTerms interface {
	ContractType() ContractType
}

// FixedTerms bills a single agreed amount.
type FixedTerms struct {
	TotalAmount decimal.Decimal `json:"totalAmount"`
}

func (FixedTerms) ContractType() ContractType { return ContractFixed }

// HourlyTerms bills per hour worked.
type HourlyTerms struct {
	HourlyRate  decimal.Decimal `json:"hourlyRate"`
	HoursLogged decimal.Decimal `json:"hoursLogged"`
}

func (HourlyTerms) ContractType() ContractType { return ContractHourly }

// MonthlyTerms bills a flat monthly rate over the contract duration.
type MonthlyTerms struct {
	MonthlyRate decimal.Decimal `json:"monthlyRate"`
}

func (MonthlyTerms) ContractType() ContractType { return ContractMonthly }

// Project is a client engagement with a contract and its payment history.
// ContractDurationWeeks lives on the project rather than inside the terms
// variant because end-date derivation uses it for every contract type;
// nil means unset.
type Project struct {
	ProjectID             string          `json:"projectID"`
	UserID                string          `json:"userID"` // Owning principal
	Name                  string          `json:"name"`
	Client                string          `json:"client"`
	Status                ProjectStatus   `json:"status"`
	PaymentTerms          PaymentTerms    `json:"paymentTerms"`
	Terms                 ContractTerms   `json:"terms"`
	StartDate             time.Time       `json:"startDate"`
	EndDate               *time.Time      `json:"endDate"`
	ContractDurationWeeks *int            `json:"contractDurationWeeks"`
	TotalAmount           decimal.Decimal `json:"totalAmount"` // Derived from Terms
	PaidAmount            decimal.Decimal `json:"paidAmount"`
	Payments              []Payment       `json:"payments"` // Insertion order
	AuditFields
}

// Payment is a single money-in event against a project. Payments are
// immutable once recorded; the ledger is append-only.
type Payment struct {
	PaymentID   string          `json:"paymentID"`
	ProjectID   string          `json:"projectID"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description string          `json:"description"`
	AuditFields
}
