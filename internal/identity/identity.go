// Package identity turns an incoming request into the external identity that
// authenticated it. Providers never create application users; that is the
// job of services.IdentityService.
package identity

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
)

// ErrProviderUnavailable wraps transport-level failures talking to an identity
// provider. It is distinct from "no session", which is reported as a nil
// identity and a nil error.
var ErrProviderUnavailable = errors.New("identity provider unavailable")

// ExternalIdentity is what an identity provider knows about the caller.
type ExternalIdentity struct {
	ID    string
	Email string
}

// Provider identifies the caller of a request.
type Provider interface {
	// Identify returns nil, nil when the request carries no session.
	Identify(c *gin.Context) (*ExternalIdentity, error)
}

// NormalizeEmail is the canonical form used for every email lookup and write.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
