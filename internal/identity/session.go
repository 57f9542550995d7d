package identity

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/yukikurage/erp-api/internal/constants"
)

// SessionProvider reads the identity stored by the built-in login handler.
type SessionProvider struct{}

func NewSessionProvider() *SessionProvider {
	return &SessionProvider{}
}

func (p *SessionProvider) Identify(c *gin.Context) (*ExternalIdentity, error) {
	session := sessions.Default(c)

	id, _ := session.Get(constants.SessionKeyIdentityID).(string)
	email, _ := session.Get(constants.SessionKeyIdentityEmail).(string)
	if id == "" || email == "" {
		return nil, nil
	}

	return &ExternalIdentity{ID: id, Email: email}, nil
}

// StartSession stores an identity in the request's session.
func StartSession(c *gin.Context, ident *ExternalIdentity) error {
	session := sessions.Default(c)
	session.Set(constants.SessionKeyIdentityID, ident.ID)
	session.Set(constants.SessionKeyIdentityEmail, ident.Email)
	return session.Save()
}

// EndSession clears the request's session.
func EndSession(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	return session.Save()
}
