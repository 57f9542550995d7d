package repository

import (
	"context"

	"github.com/yukikurage/erp-api/internal/models"
	"gorm.io/gorm"
)

// GormCredentialRepository is a GORM implementation of CredentialRepository
type GormCredentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository creates a new CredentialRepository
func NewCredentialRepository(db *gorm.DB) CredentialRepository {
	return &GormCredentialRepository{db: db}
}

// Create creates a credential
func (r *GormCredentialRepository) Create(ctx context.Context, cred *models.Credential) error {
	return mapWriteError(r.db.WithContext(ctx).Create(cred).Error)
}

// FindByEmail finds a credential by email
func (r *GormCredentialRepository) FindByEmail(ctx context.Context, email string) (*models.Credential, error) {
	var cred models.Credential
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&cred).Error; err != nil {
		return nil, err
	}
	return &cred, nil
}
