package services

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/erp-api/internal/models"
	"github.com/yukikurage/erp-api/internal/repository"
	"github.com/yukikurage/erp-api/internal/utils"
)

func validEmployeeInput() CreateEmployeeInput {
	return CreateEmployeeInput{
		FirstName:  "Bea",
		LastName:   "Lee",
		Email:      " Bea.Lee@Example.com ",
		Role:       "Accountant",
		Department: "Finance",
		Salary:     decimal.RequireFromString("52000.50"),
	}
}

func TestHRService_CreateEmployee(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHRService(repository.NewEmployeeRepository(db))
	manager := seedTenant(t, db, "acme", models.RoleManager)

	employee, err := svc.CreateEmployee(testContext(), manager, validEmployeeInput())
	require.NoError(t, err)

	assert.Equal(t, "bea.lee@example.com", employee.Email)
	assert.Equal(t, manager.OrganizationID(), employee.OrganizationID)
	assert.False(t, employee.JoinedAt.IsZero())

	employees, total, err := svc.ListEmployees(testContext(), manager, utils.NewPaginationParams(1, 20))
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, employees, 1)
	assert.True(t, decimal.RequireFromString("52000.50").Equal(employees[0].Salary))
}

func TestHRService_CreateEmployee_EmployeeRoleRejected(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHRService(repository.NewEmployeeRepository(db))
	employee := seedTenant(t, db, "acme", models.RoleEmployee)

	_, err := svc.CreateEmployee(testContext(), employee, validEmployeeInput())
	assert.ErrorIs(t, err, ErrInsufficientRole)
	assert.Zero(t, countRows(t, db, &models.Employee{}))
}

func TestHRService_CreateEmployee_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHRService(repository.NewEmployeeRepository(db))
	owner := seedTenant(t, db, "acme", models.RoleOwner)

	_, err := svc.CreateEmployee(testContext(), owner, validEmployeeInput())
	require.NoError(t, err)

	input := validEmployeeInput()
	input.Email = "bea.lee@example.com"
	_, err = svc.CreateEmployee(testContext(), owner, input)
	assert.ErrorIs(t, err, ErrDuplicateEmployee)
}

func TestHRService_CreateEmployee_Validation(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHRService(repository.NewEmployeeRepository(db))
	owner := seedTenant(t, db, "acme", models.RoleOwner)

	joined := time.Date(2023, 5, 1, 0, 0, 0, 0, time.UTC)
	_, err := svc.CreateEmployee(testContext(), owner, CreateEmployeeInput{
		FirstName: "Bea",
		Email:     "not-an-email",
		Salary:    decimal.NewFromInt(-1),
		JoinedAt:  &joined,
	})

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	fields := map[string]bool{}
	for _, e := range verrs {
		fields[e.Field] = true
	}
	assert.Equal(t, map[string]bool{
		"last_name":  true,
		"email":      true,
		"role":       true,
		"department": true,
		"salary":     true,
	}, fields)
}

func TestHRService_WithoutSession(t *testing.T) {
	db := setupTestDB(t)
	svc := NewHRService(repository.NewEmployeeRepository(db))

	employees, total, err := svc.ListEmployees(testContext(), nil, utils.NewPaginationParams(1, 20))
	require.NoError(t, err)
	assert.Empty(t, employees)
	assert.Zero(t, total)

	_, err = svc.CreateEmployee(testContext(), nil, validEmployeeInput())
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
