package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/yukikurage/erp-api/internal/identity"
	"github.com/yukikurage/erp-api/internal/models"
	"github.com/yukikurage/erp-api/internal/repository"
	"github.com/yukikurage/erp-api/internal/utils"
)

var ErrDuplicateEmployee = errors.New("an employee with this email already exists")

// HRService handles employee roster business logic.
type HRService struct {
	employeeRepo repository.EmployeeRepository
}

// NewHRService creates a new HRService.
func NewHRService(employeeRepo repository.EmployeeRepository) *HRService {
	return &HRService{employeeRepo: employeeRepo}
}

// CreateEmployeeInput represents input for onboarding an employee
type CreateEmployeeInput struct {
	FirstName  string          `json:"first_name" validate:"required,max=255"`
	LastName   string          `json:"last_name" validate:"required,max=255"`
	Email      string          `json:"email" validate:"required,email,max=255"`
	Role       string          `json:"role" validate:"required,max=255"`
	Department string          `json:"department" validate:"required,max=255"`
	Salary     decimal.Decimal `json:"salary" validate:"gte=0"`
	JoinedAt   *time.Time      `json:"joined_at"`
}

func (in CreateEmployeeInput) validate() (*models.Employee, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = identity.NormalizeEmail(in.Email)
	in.Role = strings.TrimSpace(in.Role)
	in.Department = strings.TrimSpace(in.Department)

	if err := validateStruct(in); err != nil {
		return nil, err
	}

	employee := &models.Employee{
		FirstName:  in.FirstName,
		LastName:   in.LastName,
		Email:      in.Email,
		Role:       in.Role,
		Department: in.Department,
		Salary:     in.Salary,
	}
	if in.JoinedAt != nil {
		employee.JoinedAt = *in.JoinedAt
	}
	return employee, nil
}

// ListEmployees returns the caller's roster; empty without a session.
func (s *HRService) ListEmployees(ctx context.Context, actor *TenantUser, params utils.PaginationParams) ([]models.Employee, int64, error) {
	if actor == nil {
		return []models.Employee{}, 0, nil
	}

	employees, total, err := s.employeeRepo.ListByOrganization(ctx, actor.OrganizationID(), params)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, total, nil
}

// CreateEmployee onboards a person into the caller's organization. When that
// person later signs in with the same email they join this organization.
func (s *HRService) CreateEmployee(ctx context.Context, actor *TenantUser, input CreateEmployeeInput) (*models.Employee, error) {
	if err := requireTenant(actor); err != nil {
		return nil, err
	}
	if actor.HasRole(models.RoleEmployee) {
		return nil, ErrInsufficientRole
	}

	employee, err := input.validate()
	if err != nil {
		return nil, err
	}
	employee.OrganizationID = actor.OrganizationID()

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrDuplicateEmployee
		}
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	zerolog.Ctx(ctx).Info().
		Str("organization_id", employee.OrganizationID).
		Str("employee_id", employee.ID).
		Msg("employee onboarded")
	return employee, nil
}
