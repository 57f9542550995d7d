package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yukikurage/erp-api/internal/identity"
	"github.com/yukikurage/erp-api/internal/models"
	"github.com/yukikurage/erp-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken           = errors.New("email already registered")
	ErrInvalidCredentials   = errors.New("invalid email or password")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService is the built-in email/password identity provider. It only
// issues identities; turning them into tenant users is IdentityService's job.
type AuthService struct {
	credRepo repository.CredentialRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(credRepo repository.CredentialRepository) *AuthService {
	return &AuthService{
		credRepo: credRepo,
	}
}

// SignupInput represents the required information to register an identity.
type SignupInput struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

func (in SignupInput) validate() (string, error) {
	in.Email = identity.NormalizeEmail(in.Email)
	if err := validateStruct(in); err != nil {
		return "", err
	}
	return in.Email, nil
}

// Signup registers a new identity.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*identity.ExternalIdentity, error) {
	email, err := input.validate()
	if err != nil {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	cred := &models.Credential{
		Email:        email,
		PasswordHash: string(hashedPassword),
	}
	if err := s.credRepo.Create(ctx, cred); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("failed to create credential: %w", err)
	}

	zerolog.Ctx(ctx).Info().Str("identity_id", cred.IdentityID).Msg("local identity registered")
	return &identity.ExternalIdentity{ID: cred.IdentityID, Email: cred.Email}, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Email    string
	Password string
}

// Login verifies credentials and returns the authenticated identity.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*identity.ExternalIdentity, error) {
	cred, err := s.credRepo.FindByEmail(ctx, identity.NormalizeEmail(input.Email))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find credential: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &identity.ExternalIdentity{ID: cred.IdentityID, Email: cred.Email}, nil
}
