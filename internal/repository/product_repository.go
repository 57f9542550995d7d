package repository

import (
	"context"

	"github.com/yukikurage/erp-api/internal/database"
	"github.com/yukikurage/erp-api/internal/models"
	"github.com/yukikurage/erp-api/internal/utils"
	"gorm.io/gorm"
)

// GormProductRepository is a GORM implementation of ProductRepository
type GormProductRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new ProductRepository
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &GormProductRepository{db: db}
}

// ListByOrganization lists products, newest first
func (r *GormProductRepository) ListByOrganization(ctx context.Context, orgID string, params utils.PaginationParams) ([]models.Product, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Product{}).Scopes(database.ForOrganization(orgID))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	if err := query.
		Order("created_at DESC").
		Scopes(database.Paginate(params)).
		Find(&products).Error; err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

// ListAll lists every product of an organization
func (r *GormProductRepository) ListAll(ctx context.Context, orgID string) ([]models.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).
		Scopes(database.ForOrganization(orgID)).
		Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Create creates a product
func (r *GormProductRepository) Create(ctx context.Context, product *models.Product) error {
	return mapWriteError(r.db.WithContext(ctx).Create(product).Error)
}

// Delete deletes a product. A product of another organization is reported as
// not found.
func (r *GormProductRepository) Delete(ctx context.Context, orgID, id string) error {
	result := r.db.WithContext(ctx).
		Scopes(database.ForOrganization(orgID)).
		Where("id = ?", id).
		Delete(&models.Product{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Count counts an organization's products
func (r *GormProductRepository) Count(ctx context.Context, orgID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Scopes(database.ForOrganization(orgID)).
		Count(&count).Error
	return count, err
}

// CountBelowQuantity counts products whose quantity is below threshold
func (r *GormProductRepository) CountBelowQuantity(ctx context.Context, orgID string, threshold int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Product{}).
		Scopes(database.ForOrganization(orgID)).
		Where("quantity < ?", threshold).
		Count(&count).Error
	return count, err
}
