package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/yukikurage/erp-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	// ErrCreateOrganization is returned when creating an organization fails inside the provisioning transaction.
	ErrCreateOrganization = errors.New("organization repository: create organization failed")
	// ErrCreateOwner is returned when creating the owning user fails inside the provisioning transaction.
	ErrCreateOwner = errors.New("organization repository: create owner failed")
)

// GormOrganizationRepository is a GORM implementation of OrganizationRepository
type GormOrganizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new OrganizationRepository
func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &GormOrganizationRepository{db: db}
}

// FindByID finds an organization by ID
func (r *GormOrganizationRepository) FindByID(ctx context.Context, id string) (*models.Organization, error) {
	var org models.Organization
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&org).Error; err != nil {
		return nil, err
	}
	return &org, nil
}

// CreateWithOwner creates an organization and its owner atomically.
func (r *GormOrganizationRepository) CreateWithOwner(ctx context.Context, org *models.Organization, owner *models.User) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(org).Error; err != nil {
			return fmt.Errorf("%w: %w", ErrCreateOrganization, mapWriteError(err))
		}

		owner.OrganizationID = org.ID
		owner.Role = models.RoleOwner

		if err := tx.Omit(clause.Associations).Create(owner).Error; err != nil {
			return fmt.Errorf("%w: %w", ErrCreateOwner, mapWriteError(err))
		}

		return nil
	})
}

// UpdateSettings updates an organization's name, brand symbol and currency.
func (r *GormOrganizationRepository) UpdateSettings(ctx context.Context, orgID string, settings OrganizationSettings) error {
	result := r.db.WithContext(ctx).
		Model(&models.Organization{}).
		Where("id = ?", orgID).
		Updates(map[string]interface{}{
			"name":         settings.Name,
			"brand_symbol": settings.BrandSymbol,
			"currency":     settings.Currency,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
