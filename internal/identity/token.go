package identity

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

// TokenConfig holds bearer token verification settings.
type TokenConfig struct {
	Secret   string
	Issuer   string
	Audience string
}

type tokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenProvider authenticates `Authorization: Bearer <jwt>` requests signed
// with HS256, the format hosted auth services hand to browser clients.
type TokenProvider struct {
	cfg    TokenConfig
	parser *jwt.Parser
}

func NewTokenProvider(cfg TokenConfig) *TokenProvider {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	if cfg.Audience != "" {
		opts = append(opts, jwt.WithAudience(cfg.Audience))
	}

	return &TokenProvider{
		cfg:    cfg,
		parser: jwt.NewParser(opts...),
	}
}

// Identify treats a missing, malformed or expired token as no session.
func (p *TokenProvider) Identify(c *gin.Context) (*ExternalIdentity, error) {
	raw, ok := bearerToken(c.GetHeader("Authorization"))
	if !ok {
		return nil, nil
	}

	claims := &tokenClaims{}
	_, err := p.parser.ParseWithClaims(raw, claims, func(token *jwt.Token) (any, error) {
		return []byte(p.cfg.Secret), nil
	})
	if err != nil {
		zerolog.Ctx(c.Request.Context()).Debug().Err(err).Msg("rejected bearer token")
		return nil, nil
	}

	if claims.Subject == "" || claims.Email == "" {
		return nil, nil
	}

	return &ExternalIdentity{ID: claims.Subject, Email: claims.Email}, nil
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(prefix):]), true
}
