package middleware

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/yukikurage/erp-api/internal/constants"
	apierrors "github.com/yukikurage/erp-api/internal/errors"
	"github.com/yukikurage/erp-api/internal/identity"
	"github.com/yukikurage/erp-api/internal/services"
)

// IdentityResolver maps an external identity onto a tenant user.
type IdentityResolver interface {
	Resolve(ctx context.Context, ident *identity.ExternalIdentity) (*services.TenantUser, error)
}

// ResolveTenant identifies the caller and stores the reconciled tenant user in
// the context. A request without a session passes through with no tenant user.
func ResolveTenant(provider identity.Provider, resolver IdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		log := zerolog.Ctx(ctx)

		ident, err := provider.Identify(c)
		if err != nil {
			log.Error().Err(err).Msg("identity provider failed")
			if errors.Is(err, identity.ErrProviderUnavailable) {
				apierrors.ServiceUnavailable(c, "Identity provider unavailable")
			} else {
				apierrors.InternalError(c, "")
			}
			c.Abort()
			return
		}

		tenant, err := resolver.Resolve(ctx, ident)
		if err != nil {
			log.Error().Err(err).Msg("failed to resolve tenant user")
			apierrors.InternalError(c, "Failed to resolve user")
			c.Abort()
			return
		}

		if tenant != nil {
			c.Set(constants.ContextKeyTenantUser, tenant)
			c.Request = c.Request.WithContext(log.With().
				Str("user_id", tenant.User.ID).
				Str("organization_id", tenant.OrganizationID()).
				Logger().WithContext(ctx))
		}
		c.Next()
	}
}

// GetTenantUser retrieves the resolved caller, or nil without a session.
func GetTenantUser(c *gin.Context) *services.TenantUser {
	v, exists := c.Get(constants.ContextKeyTenantUser)
	if !exists {
		return nil
	}
	tenant, _ := v.(*services.TenantUser)
	return tenant
}

// RequireTenant rejects requests without a resolved tenant user.
func RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetTenantUser(c) == nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}
		c.Next()
	}
}
