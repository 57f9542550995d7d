package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/yukikurage/erp-api/internal/identity"
	"github.com/yukikurage/erp-api/internal/models"
	"github.com/yukikurage/erp-api/internal/repository"
	"gorm.io/gorm"
)

type createOutcome int

const (
	// outcomeCreated: our write committed.
	outcomeCreated createOutcome = iota
	// outcomeRaceLost: a concurrent request created this identity's user first.
	outcomeRaceLost
	// outcomeKeyCollision: a unique key clashed but no user exists for this
	// identity, so the clash was on a generated key such as the slug.
	outcomeKeyCollision
)

func (o createOutcome) String() string {
	switch o {
	case outcomeCreated:
		return "created"
	case outcomeRaceLost:
		return "race_lost"
	case outcomeKeyCollision:
		return "key_collision"
	}
	return fmt.Sprintf("createOutcome(%d)", int(o))
}

// createOrFetch runs create. A duplicate-key failure is resolved by looking
// the identity up by id and then by email; any other failure is returned.
// The returned user is only set for outcomeRaceLost.
func (s *IdentityService) createOrFetch(ctx context.Context, ident *identity.ExternalIdentity, create func() error) (*models.User, createOutcome, error) {
	err := create()
	if err == nil {
		return nil, outcomeCreated, nil
	}
	if !errors.Is(err, repository.ErrDuplicateKey) {
		return nil, outcomeCreated, err
	}

	winner, err := s.findExisting(ctx, ident)
	if err != nil {
		return nil, outcomeCreated, err
	}
	if winner == nil {
		return nil, outcomeKeyCollision, nil
	}

	zerolog.Ctx(ctx).Warn().
		Str("identity_id", ident.ID).
		Str("organization_id", winner.OrganizationID).
		Msg("concurrent request created user first, using its row")
	return winner, outcomeRaceLost, nil
}

func (s *IdentityService) findExisting(ctx context.Context, ident *identity.ExternalIdentity) (*models.User, error) {
	user, err := s.userRepo.FindByID(ctx, ident.ID)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to re-read user by id: %w", err)
	}

	user, err = s.userRepo.FindByEmail(ctx, ident.Email)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to re-read user by email: %w", err)
	}
	return nil, nil
}
