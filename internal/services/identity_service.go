package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yukikurage/erp-api/internal/constants"
	"github.com/yukikurage/erp-api/internal/identity"
	"github.com/yukikurage/erp-api/internal/models"
	"github.com/yukikurage/erp-api/internal/repository"
	"github.com/yukikurage/erp-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrInvalidIdentity        = errors.New("identity has no id or email")
	ErrIdentityConflict       = errors.New("identity conflicts with an existing user")
	ErrProvisioningExhausted  = errors.New("could not allocate a unique organization slug")
	ErrIdentityNotPersisted   = errors.New("user missing after creation")
	ErrOrganizationNameFailed = errors.New("failed to generate organization name")
)

// TenantUser is the resolved caller of every tenant-scoped action: the
// application user together with its organization.
type TenantUser struct {
	User         models.User
	Organization models.Organization
}

// OrganizationID is the only organization the caller may read or write.
func (t *TenantUser) OrganizationID() string {
	return t.User.OrganizationID
}

// HasRole reports whether the caller holds one of roles.
func (t *TenantUser) HasRole(roles ...models.Role) bool {
	for _, r := range roles {
		if t.User.Role == r {
			return true
		}
	}
	return false
}

func newTenantUser(u *models.User) *TenantUser {
	return &TenantUser{User: *u, Organization: u.Organization}
}

// OrganizationNamer returns a display name and slug for a new organization.
type OrganizationNamer func() (name, slug string, err error)

// IdentityService maps authenticated external identities onto tenant users,
// creating the user (and, for strangers, an organization) on first sight.
type IdentityService struct {
	userRepo     repository.UserRepository
	orgRepo      repository.OrganizationRepository
	employeeRepo repository.EmployeeRepository
	namer        OrganizationNamer
	maxAttempts  int
}

// NewIdentityService creates a new IdentityService.
func NewIdentityService(
	userRepo repository.UserRepository,
	orgRepo repository.OrganizationRepository,
	employeeRepo repository.EmployeeRepository,
) *IdentityService {
	return &IdentityService{
		userRepo:     userRepo,
		orgRepo:      orgRepo,
		employeeRepo: employeeRepo,
		namer:        utils.GenerateOrganizationIdentity,
		maxAttempts:  constants.ProvisioningAttempts,
	}
}

// WithNamer replaces the organization name generator.
func (s *IdentityService) WithNamer(namer OrganizationNamer) *IdentityService {
	s.namer = namer
	return s
}

// WithMaxAttempts bounds how many slugs provisioning tries before giving up.
func (s *IdentityService) WithMaxAttempts(n int) *IdentityService {
	if n > 0 {
		s.maxAttempts = n
	}
	return s
}

// Resolve returns the tenant user for ident. A nil identity means no session
// and yields nil, nil. Safe to call concurrently for the same identity: the
// store's unique constraints decide the single winner.
func (s *IdentityService) Resolve(ctx context.Context, ident *identity.ExternalIdentity) (*TenantUser, error) {
	if ident == nil {
		return nil, nil
	}

	email := identity.NormalizeEmail(ident.Email)
	if ident.ID == "" || email == "" {
		return nil, ErrInvalidIdentity
	}
	ident = &identity.ExternalIdentity{ID: ident.ID, Email: email}

	log := zerolog.Ctx(ctx).With().Str("identity_id", ident.ID).Logger()

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err == nil {
		return newTenantUser(user), nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to find user by email: %w", err)
	}

	// Known identity under a new address
	user, err = s.userRepo.FindByID(ctx, ident.ID)
	if err == nil {
		return s.followEmailChange(ctx, user, email, log)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to find user by id: %w", err)
	}

	employee, err := s.employeeRepo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		log.Info().Str("organization_id", employee.OrganizationID).Msg("linking identity to existing employee record")
		return s.linkEmployee(ctx, ident, employee)
	case errors.Is(err, gorm.ErrRecordNotFound):
		return s.provision(ctx, ident, log)
	default:
		return nil, fmt.Errorf("failed to find employee by email: %w", err)
	}
}

// followEmailChange stores the address the identity provider now reports.
// If another user took that address meanwhile, the stored one is kept.
func (s *IdentityService) followEmailChange(ctx context.Context, user *models.User, email string, log zerolog.Logger) (*TenantUser, error) {
	if err := s.userRepo.UpdateEmail(ctx, user.ID, email); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			log.Warn().Msg("identity email already belongs to another user, keeping stored email")
			return newTenantUser(user), nil
		}
		return nil, fmt.Errorf("failed to update user email: %w", err)
	}

	log.Info().Str("organization_id", user.OrganizationID).Msg("identity email changed")
	user.Email = email
	return newTenantUser(user), nil
}

func (s *IdentityService) linkEmployee(ctx context.Context, ident *identity.ExternalIdentity, employee *models.Employee) (*TenantUser, error) {
	user := &models.User{
		ID:             ident.ID,
		Email:          ident.Email,
		OrganizationID: employee.OrganizationID,
		Role:           models.RoleEmployee,
	}

	existing, outcome, err := s.createOrFetch(ctx, ident, func() error {
		return s.userRepo.Create(ctx, user)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create employee user: %w", err)
	}

	switch outcome {
	case outcomeRaceLost:
		return newTenantUser(existing), nil
	case outcomeKeyCollision:
		return nil, ErrIdentityConflict
	}
	return s.reload(ctx, ident.ID)
}

func (s *IdentityService) provision(ctx context.Context, ident *identity.ExternalIdentity, log zerolog.Logger) (*TenantUser, error) {
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		name, slug, err := s.namer()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrOrganizationNameFailed, err)
		}

		org := &models.Organization{
			Name:     name,
			Slug:     slug,
			Currency: models.Currency(constants.DefaultCurrency),
		}
		owner := &models.User{
			ID:    ident.ID,
			Email: ident.Email,
			Role:  models.RoleOwner,
		}

		existing, outcome, err := s.createOrFetch(ctx, ident, func() error {
			return s.orgRepo.CreateWithOwner(ctx, org, owner)
		})
		if err != nil {
			return nil, fmt.Errorf("failed to provision organization: %w", err)
		}

		switch outcome {
		case outcomeCreated:
			log.Info().
				Str("organization_id", org.ID).
				Str("slug", org.Slug).
				Msg("provisioned organization for new identity")
			return s.reload(ctx, ident.ID)
		case outcomeRaceLost:
			return newTenantUser(existing), nil
		case outcomeKeyCollision:
			log.Warn().Str("slug", slug).Int("attempt", attempt).Msg("organization slug taken, regenerating")
		}
	}

	return nil, ErrProvisioningExhausted
}

// reload re-reads a user right after creating it so callers always get the
// stored row with its organization.
func (s *IdentityService) reload(ctx context.Context, id string) (*TenantUser, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrIdentityNotPersisted
		}
		return nil, fmt.Errorf("failed to reload user: %w", err)
	}
	return newTenantUser(user), nil
}
