package repository

import (
	"context"

	"github.com/yukikurage/erp-api/internal/database"
	"github.com/yukikurage/erp-api/internal/models"
	"github.com/yukikurage/erp-api/internal/utils"
	"gorm.io/gorm"
)

// GormEmployeeRepository is a GORM implementation of EmployeeRepository
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new EmployeeRepository
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// FindByEmail searches every organization. When several tenants list the same
// email the earliest roster entry wins so the result is stable.
func (r *GormEmployeeRepository) FindByEmail(ctx context.Context, email string) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.WithContext(ctx).
		Where("email = ?", email).
		Order("joined_at ASC").
		Order("id ASC").
		First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// ListByOrganization lists employees, newest joined first
func (r *GormEmployeeRepository) ListByOrganization(ctx context.Context, orgID string, params utils.PaginationParams) ([]models.Employee, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Employee{}).Scopes(database.ForOrganization(orgID))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var employees []models.Employee
	if err := query.
		Order("joined_at DESC").
		Scopes(database.Paginate(params)).
		Find(&employees).Error; err != nil {
		return nil, 0, err
	}

	return employees, total, nil
}

// Create creates an employee
func (r *GormEmployeeRepository) Create(ctx context.Context, employee *models.Employee) error {
	return mapWriteError(r.db.WithContext(ctx).Create(employee).Error)
}
