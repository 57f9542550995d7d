package middleware

import (
	"github.com/gin-gonic/gin"
	apierrors "github.com/yukikurage/erp-api/internal/errors"
	"github.com/yukikurage/erp-api/internal/models"
)

// RequireRole allows the request only when the caller holds one of roles.
// Must run after ResolveTenant.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		tenant := GetTenantUser(c)
		if tenant == nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		if !tenant.HasRole(roles...) {
			apierrors.InsufficientPermissions(c, "")
			c.Abort()
			return
		}

		c.Next()
	}
}
