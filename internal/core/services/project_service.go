package services

import (
	"context"
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
	"github.com/shopspring/decimal"
)

// projectService implements the ProjectSvcFacade interface. Every mutation
// follows the same sequence: load, derive through the finance package,
// persist, and only return the derived state once the store confirmed the
// write.
type projectService struct {
	BaseService
	projectRepo portsrepo.ProjectRepositoryFacade
}

// NewProjectService creates a new project service.
func NewProjectService(repo portsrepo.ProjectRepositoryFacade) portssvc.ProjectSvcFacade {
	return &projectService{projectRepo: repo}
}

// Ensure projectService implements the ProjectSvcFacade interface
var _ portssvc.ProjectSvcFacade = (*projectService)(nil)

func (s *projectService) CreateProject(ctx context.Context, userID string, req dto.CreateProjectRequest) (*domain.Project, error) {
	if err := s.RequirePrincipal(userID); err != nil {
		return nil, err
	}

	startDate, err := utils.ParseDateOnly(req.StartDate)
	if err != nil {
		return nil, err
	}

	terms, err := termsFromCreateRequest(req)
	if err != nil {
		return nil, err
	}

	var endDate *time.Time
	if req.EndDate != nil {
		parsed, err := utils.ParseDateOnly(*req.EndDate)
		if err != nil {
			return nil, err
		}
		endDate = &parsed
	}

	// A provided duration wins over a provided end date: the end date is
	// rederived from it, mirroring the duration-was-edited-last rule.
	edited := finance.FieldEndDate
	if req.ContractDurationWeeks != nil || endDate == nil {
		edited = finance.FieldDuration
	}
	durationWeeks := req.ContractDurationWeeks
	if edited == finance.FieldEndDate {
		endDate, durationWeeks, err = finance.DeriveDates(finance.FieldEndDate, startDate, endDate, durationWeeks)
	} else {
		endDate, durationWeeks, err = finance.DeriveDates(finance.FieldDuration, startDate, endDate, durationWeeks)
	}
	if err != nil {
		return nil, err
	}

	totalAmount, err := finance.DeriveAmount(terms, durationWeeks)
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = domain.StatusPending
	}

	now := time.Now()
	project := domain.Project{
		ProjectID:             uuid.NewString(),
		UserID:                userID,
		Name:                  req.Name,
		Client:                req.Client,
		Status:                status,
		PaymentTerms:          req.PaymentTerms,
		Terms:                 terms,
		StartDate:             startDate,
		EndDate:               endDate,
		ContractDurationWeeks: durationWeeks,
		TotalAmount:           totalAmount,
		PaidAmount:            decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.projectRepo.SaveProject(ctx, project); err != nil {
		s.LogError(ctx, err, "Failed to save project", slog.String("project_name", req.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Project created", slog.String("project_id", project.ProjectID))
	return &project, nil
}

func (s *projectService) GetProjectByID(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	if err := s.RequirePrincipal(userID); err != nil {
		return nil, err
	}
	return s.findOwnedProject(ctx, userID, projectID)
}

func (s *projectService) ListProjects(ctx context.Context, userID string) ([]domain.Project, error) {
	if err := s.RequirePrincipal(userID); err != nil {
		return nil, err
	}
	projects, err := s.projectRepo.ListProjectsByUser(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list projects")
		return nil, err
	}
	return projects, nil
}

func (s *projectService) UpdateProject(ctx context.Context, userID, projectID string, req dto.UpdateProjectRequest) (*domain.Project, error) {
	if err := s.RequirePrincipal(userID); err != nil {
		return nil, err
	}

	project, err := s.findOwnedProject(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		project.Name = *req.Name
	}
	if req.Client != nil {
		project.Client = *req.Client
	}
	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.PaymentTerms != nil {
		project.PaymentTerms = *req.PaymentTerms
	}

	if err := applyTermsUpdate(project, req); err != nil {
		return nil, err
	}

	if err := s.reconcileDates(project, req); err != nil {
		return nil, err
	}

	totalAmount, err := finance.DeriveAmount(project.Terms, project.ContractDurationWeeks)
	if err != nil {
		return nil, err
	}
	project.TotalAmount = totalAmount

	project.LastUpdatedAt = time.Now()
	project.LastUpdatedBy = userID

	if err := s.projectRepo.UpdateProject(ctx, *project); err != nil {
		s.LogError(ctx, err, "Failed to update project", slog.String("project_id", projectID))
		return nil, err
	}

	s.LogInfo(ctx, "Project updated", slog.String("project_id", projectID))
	return project, nil
}

func (s *projectService) DeleteProject(ctx context.Context, userID, projectID string) error {
	if err := s.RequirePrincipal(userID); err != nil {
		return err
	}

	if _, err := s.findOwnedProject(ctx, userID, projectID); err != nil {
		return err
	}

	if err := s.projectRepo.DeleteProject(ctx, projectID); err != nil {
		s.LogError(ctx, err, "Failed to delete project", slog.String("project_id", projectID))
		return err
	}

	s.LogInfo(ctx, "Project deleted", slog.String("project_id", projectID))
	return nil
}

func (s *projectService) AddPayment(ctx context.Context, userID, projectID string, req dto.CreatePaymentRequest) (*domain.Project, error) {
	if err := s.RequirePrincipal(userID); err != nil {
		return nil, err
	}

	project, err := s.findOwnedProject(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}

	paymentDate, err := utils.ParseDateOnly(req.Date)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		ProjectID:   projectID,
		Amount:      req.Amount,
		Date:        paymentDate,
		Description: req.Description,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	updated := finance.AppendPayment(*project, payment)
	updated.LastUpdatedAt = now
	updated.LastUpdatedBy = userID

	// Payment row and the moved paid total land in one transaction; if the
	// store rejects it, the caller sees the old project state.
	if err := s.projectRepo.SavePaymentAndProject(ctx, payment, updated); err != nil {
		s.LogError(ctx, err, "Failed to record payment",
			slog.String("project_id", projectID),
			slog.String("amount", req.Amount.String()))
		return nil, err
	}

	s.LogInfo(ctx, "Payment recorded",
		slog.String("project_id", projectID),
		slog.String("payment_id", payment.PaymentID),
		slog.String("amount", payment.Amount.String()))
	return &updated, nil
}

func (s *projectService) LogHours(ctx context.Context, userID, projectID string, hours decimal.Decimal) (*domain.Project, error) {
	if err := s.RequirePrincipal(userID); err != nil {
		return nil, err
	}

	project, err := s.findOwnedProject(ctx, userID, projectID)
	if err != nil {
		return nil, err
	}

	updated, err := finance.SetHoursLogged(*project, hours)
	if err != nil {
		s.LogError(ctx, err, "Rejected hours update", slog.String("project_id", projectID))
		return nil, err
	}
	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = userID

	if err := s.projectRepo.UpdateProject(ctx, updated); err != nil {
		s.LogError(ctx, err, "Failed to persist hours update", slog.String("project_id", projectID))
		return nil, err
	}

	s.LogInfo(ctx, "Hours logged",
		slog.String("project_id", projectID),
		slog.String("hours", hours.String()),
		slog.String("total_amount", updated.TotalAmount.String()))
	return &updated, nil
}

// findOwnedProject loads a project and verifies it belongs to the principal.
// Other users' projects are reported as not found rather than forbidden.
func (s *projectService) findOwnedProject(ctx context.Context, userID, projectID string) (*domain.Project, error) {
	project, err := s.projectRepo.FindProjectByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project.UserID != userID {
		return nil, fmt.Errorf("%w: project %s", apperrors.ErrNotFound, projectID)
	}
	return project, nil
}

// reconcileDates re-derives the dependent date fields from whichever date
// field the request edited. A start-date or duration edit recomputes the
// end date; an end-date edit recomputes the duration.
func (s *projectService) reconcileDates(project *domain.Project, req dto.UpdateProjectRequest) error {
	if req.StartDate != nil {
		startDate, err := utils.ParseDateOnly(*req.StartDate)
		if err != nil {
			return err
		}
		project.StartDate = startDate
	}
	if req.ContractDurationWeeks != nil {
		project.ContractDurationWeeks = req.ContractDurationWeeks
	}

	switch {
	case req.StartDate != nil || req.ContractDurationWeeks != nil:
		endDate, weeks, err := finance.DeriveDates(finance.FieldDuration, project.StartDate, project.EndDate, project.ContractDurationWeeks)
		if err != nil {
			return err
		}
		project.EndDate = endDate
		project.ContractDurationWeeks = weeks
	case req.EndDate != nil:
		endDate, err := utils.ParseDateOnly(*req.EndDate)
		if err != nil {
			return err
		}
		_, weeks, err := finance.DeriveDates(finance.FieldEndDate, project.StartDate, &endDate, project.ContractDurationWeeks)
		if err != nil {
			return err
		}
		project.EndDate = &endDate
		project.ContractDurationWeeks = weeks
	}
	return nil
}

// termsFromCreateRequest builds the contract terms variant for a new
// project. The struct-level DTO validation has already checked that the
// fields required by the contract type are present.
func termsFromCreateRequest(req dto.CreateProjectRequest) (domain.ContractTerms, error) {
	switch req.ContractType {
	case domain.ContractFixed:
		return domain.FixedTerms{TotalAmount: derefDecimal(req.TotalAmount)}, nil
	case domain.ContractHourly:
		return domain.HourlyTerms{
			HourlyRate:  derefDecimal(req.HourlyRate),
			HoursLogged: derefDecimal(req.HoursLogged),
		}, nil
	case domain.ContractMonthly:
		return domain.MonthlyTerms{MonthlyRate: derefDecimal(req.MonthlyRate)}, nil
	default:
		return nil, fmt.Errorf("%w: unknown contract type %q", apperrors.ErrValidation, req.ContractType)
	}
}

// applyTermsUpdate mutates the project's contract terms from an update
// request. Switching the contract type replaces the variant wholesale,
// which discards the fields the new type has no use for; without a type
// switch only the fields of the current variant are touched.
func applyTermsUpdate(project *domain.Project, req dto.UpdateProjectRequest) error {
	newType := project.Terms.ContractType()
	if req.ContractType != nil {
		newType = *req.ContractType
	}

	if newType != project.Terms.ContractType() {
		switch newType {
		case domain.ContractFixed:
			amount := project.TotalAmount
			if req.TotalAmount != nil {
				amount = *req.TotalAmount
			}
			project.Terms = domain.FixedTerms{TotalAmount: amount}
		case domain.ContractHourly:
			project.Terms = domain.HourlyTerms{
				HourlyRate:  derefDecimal(req.HourlyRate),
				HoursLogged: derefDecimal(req.HoursLogged),
			}
		case domain.ContractMonthly:
			project.Terms = domain.MonthlyTerms{MonthlyRate: derefDecimal(req.MonthlyRate)}
		default:
			return fmt.Errorf("%w: unknown contract type %q", apperrors.ErrValidation, newType)
		}
		return nil
	}

	switch terms := project.Terms.(type) {
	case domain.FixedTerms:
		if req.TotalAmount != nil {
			terms.TotalAmount = *req.TotalAmount
		}
		project.Terms = terms
	case domain.HourlyTerms:
		if req.HourlyRate != nil {
			terms.HourlyRate = *req.HourlyRate
		}
		if req.HoursLogged != nil {
			terms.HoursLogged = *req.HoursLogged
		}
		project.Terms = terms
	case domain.MonthlyTerms:
		if req.MonthlyRate != nil {
			terms.MonthlyRate = *req.MonthlyRate
		}
		project.Terms = terms
	}
	return nil
}

func derefDecimal(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
