package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/yukikurage/erp-api/internal/constants"
	"github.com/yukikurage/erp-api/internal/models"
	"github.com/yukikurage/erp-api/internal/repository"
	"gorm.io/gorm"
)

var ErrOrganizationNotFound = errors.New("organization not found")

// SettingsService manages the caller's own organization.
type SettingsService struct {
	orgRepo repository.OrganizationRepository
}

// NewSettingsService creates a new SettingsService.
func NewSettingsService(orgRepo repository.OrganizationRepository) *SettingsService {
	return &SettingsService{orgRepo: orgRepo}
}

// UpdateSettingsInput holds a settings form submission. Every field is
// written; an empty brand symbol clears it and an empty currency means USD.
type UpdateSettingsInput struct {
	Name        string `json:"name" validate:"required,max=255"`
	BrandSymbol string `json:"brand_symbol" validate:"omitempty,max=3"`
	Currency    string `json:"currency" validate:"required,currency"`
}

func (in UpdateSettingsInput) validate() (repository.OrganizationSettings, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.BrandSymbol = strings.TrimSpace(in.BrandSymbol)
	in.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))
	if in.Currency == "" {
		in.Currency = constants.DefaultCurrency
	}

	if err := validateStruct(in); err != nil {
		return repository.OrganizationSettings{}, err
	}

	settings := repository.OrganizationSettings{
		Name:     in.Name,
		Currency: models.Currency(in.Currency),
	}
	if in.BrandSymbol != "" {
		settings.BrandSymbol = &in.BrandSymbol
	}
	return settings, nil
}

// GetOrganization returns the caller's organization, or nil without a session.
func (s *SettingsService) GetOrganization(ctx context.Context, actor *TenantUser) (*models.Organization, error) {
	if actor == nil {
		return nil, nil
	}

	org, err := s.orgRepo.FindByID(ctx, actor.OrganizationID())
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to find organization: %w", err)
	}
	return org, nil
}

// UpdateSettings replaces the caller's organization settings. Any member may
// change them; the organization is always the actor's own and no
// client-supplied id is accepted.
func (s *SettingsService) UpdateSettings(ctx context.Context, actor *TenantUser, input UpdateSettingsInput) (*models.Organization, error) {
	if err := requireTenant(actor); err != nil {
		return nil, err
	}
	settings, err := input.validate()
	if err != nil {
		return nil, err
	}

	orgID := actor.OrganizationID()
	if err := s.orgRepo.UpdateSettings(ctx, orgID, settings); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrganizationNotFound
		}
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	zerolog.Ctx(ctx).Info().Str("organization_id", orgID).Msg("organization settings updated")

	return s.GetOrganization(ctx, actor)
}
