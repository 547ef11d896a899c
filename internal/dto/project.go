package dto

import (
	"time"

	"github.com/freelanceledger/freelance_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateProjectRequest defines the data needed to create a new project.
// The rate fields are pointers so that "not provided" is distinguishable
// from an explicit zero; which ones are required depends on the contract
// type and is enforced by a struct-level validation.
type CreateProjectRequest struct {
	Name                  string               `json:"name" binding:"required"`
	Client                string               `json:"client" binding:"required"`
	ContractType          domain.ContractType  `json:"contractType" binding:"required,oneof=fixed hourly monthly"`
	PaymentTerms          domain.PaymentTerms  `json:"paymentTerms" binding:"omitempty,oneof=milestone weekly biweekly monthly half-upfront full-upfront upon-completion"`
	Status                domain.ProjectStatus `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
	StartDate             string               `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate               *string              `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	ContractDurationWeeks *int                 `json:"contractDurationWeeks" binding:"omitempty,min=0"`
	TotalAmount           *decimal.Decimal     `json:"totalAmount"`
	HourlyRate            *decimal.Decimal     `json:"hourlyRate"`
	HoursLogged           *decimal.Decimal     `json:"hoursLogged"`
	MonthlyRate           *decimal.Decimal     `json:"monthlyRate"`
}

// UpdateProjectRequest defines the data allowed for updating a project.
// Pointers distinguish fields not provided from zero-value updates; the
// service derives the dependent date fields from whichever of the three
// date fields is present.
type UpdateProjectRequest struct {
	Name                  *string               `json:"name"`
	Client                *string               `json:"client"`
	ContractType          *domain.ContractType  `json:"contractType" binding:"omitempty,oneof=fixed hourly monthly"`
	PaymentTerms          *domain.PaymentTerms  `json:"paymentTerms" binding:"omitempty,oneof=milestone weekly biweekly monthly half-upfront full-upfront upon-completion"`
	Status                *domain.ProjectStatus `json:"status" binding:"omitempty,oneof=pending in_progress completed"`
	StartDate             *string               `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate               *string               `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	ContractDurationWeeks *int                  `json:"contractDurationWeeks" binding:"omitempty,min=0"`
	TotalAmount           *decimal.Decimal      `json:"totalAmount"`
	HourlyRate            *decimal.Decimal      `json:"hourlyRate"`
	HoursLogged           *decimal.Decimal      `json:"hoursLogged"`
	MonthlyRate           *decimal.Decimal      `json:"monthlyRate"`
}

// CreatePaymentRequest defines the data needed to record a payment against
// a project.
type CreatePaymentRequest struct {
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Date        string          `json:"date" binding:"required,datetime=2006-01-02"`
	Description string          `json:"description"`
}

// LogHoursRequest sets the cumulative hours logged on an hourly project.
type LogHoursRequest struct {
	Hours decimal.Decimal `json:"hours" binding:"required"`
}

// PaymentResponse defines the data returned for a recorded payment.
type PaymentResponse struct {
	PaymentID   string          `json:"paymentID"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
	Description string          `json:"description"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// ProjectResponse defines the data returned for a project. The contract
// terms are flattened: only the fields relevant to the contract type are
// populated.
type ProjectResponse struct {
	ProjectID             string               `json:"projectID"`
	Name                  string               `json:"name"`
	Client                string               `json:"client"`
	ContractType          domain.ContractType  `json:"contractType"`
	PaymentTerms          domain.PaymentTerms  `json:"paymentTerms"`
	Status                domain.ProjectStatus `json:"status"`
	StartDate             string               `json:"startDate"`
	EndDate               *string              `json:"endDate"`
	ContractDurationWeeks *int                 `json:"contractDurationWeeks"`
	HourlyRate            *decimal.Decimal     `json:"hourlyRate"`
	HoursLogged           *decimal.Decimal     `json:"hoursLogged"`
	MonthlyRate           *decimal.Decimal     `json:"monthlyRate"`
	TotalAmount           decimal.Decimal      `json:"totalAmount"`
	PaidAmount            decimal.Decimal      `json:"paidAmount"`
	Payments              []PaymentResponse    `json:"payments"`
	CreatedAt             time.Time            `json:"createdAt"`
	LastUpdatedAt         time.Time            `json:"lastUpdatedAt"`
}

// ToPaymentResponse converts a domain.Payment to a PaymentResponse DTO.
func ToPaymentResponse(p domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:   p.PaymentID,
		Amount:      p.Amount,
		Date:        p.Date.Format(time.DateOnly),
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
	}
}

// ToProjectResponse converts a domain.Project to a ProjectResponse DTO.
func ToProjectResponse(p *domain.Project) ProjectResponse {
	resp := ProjectResponse{
		ProjectID:             p.ProjectID,
		Name:                  p.Name,
		Client:                p.Client,
		PaymentTerms:          p.PaymentTerms,
		Status:                p.Status,
		StartDate:             p.StartDate.Format(time.DateOnly),
		ContractDurationWeeks: p.ContractDurationWeeks,
		TotalAmount:           p.TotalAmount,
		PaidAmount:            p.PaidAmount,
		Payments:              make([]PaymentResponse, len(p.Payments)),
		CreatedAt:             p.CreatedAt,
		LastUpdatedAt:         p.LastUpdatedAt,
	}

	if p.EndDate != nil {
		endDate := p.EndDate.Format(time.DateOnly)
		resp.EndDate = &endDate
	}

	switch terms := p.Terms.(type) {
	case domain.FixedTerms:
		resp.ContractType = domain.ContractFixed
	case domain.HourlyTerms:
		resp.ContractType = domain.ContractHourly
		rate, hours := terms.HourlyRate, terms.HoursLogged
		resp.HourlyRate = &rate
		resp.HoursLogged = &hours
	case domain.MonthlyTerms:
		resp.ContractType = domain.ContractMonthly
		rate := terms.MonthlyRate
		resp.MonthlyRate = &rate
	}

	for i, payment := range p.Payments {
		resp.Payments[i] = ToPaymentResponse(payment)
	}

	return resp
}
