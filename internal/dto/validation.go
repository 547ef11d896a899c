package dto

import (
	"github.com/freelanceledger/freelance_ledger_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidations wires struct-level checks into gin's validator engine.
// Called once at startup.
func RegisterValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterStructValidation(createProjectStructLevel, CreateProjectRequest{})
	}
}

// createProjectStructLevel enforces that the rate fields required by the
// chosen contract type are present. Cross-field requirements like these
// can't be expressed with plain field tags.
func createProjectStructLevel(sl validator.StructLevel) {
	req := sl.Current().Interface().(CreateProjectRequest)

	switch req.ContractType {
	case domain.ContractFixed:
		if req.TotalAmount == nil {
			sl.ReportError(req.TotalAmount, "totalAmount", "TotalAmount", "required_for_fixed", "")
		}
	case domain.ContractHourly:
		if req.HourlyRate == nil {
			sl.ReportError(req.HourlyRate, "hourlyRate", "HourlyRate", "required_for_hourly", "")
		}
	case domain.ContractMonthly:
		if req.MonthlyRate == nil {
			sl.ReportError(req.MonthlyRate, "monthlyRate", "MonthlyRate", "required_for_monthly", "")
		}
		if req.ContractDurationWeeks == nil {
			sl.ReportError(req.ContractDurationWeeks, "contractDurationWeeks", "ContractDurationWeeks", "required_for_monthly", "")
		}
	}
}
