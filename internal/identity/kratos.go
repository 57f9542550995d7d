package identity

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	kratos "github.com/ory/kratos-client-go"
)

// KratosProvider resolves browser sessions against Ory Kratos.
type KratosProvider struct {
	client *kratos.APIClient
}

// NewKratosProvider creates a provider talking to the Kratos public API.
func NewKratosProvider(baseURL string, timeout time.Duration) *KratosProvider {
	configuration := kratos.NewConfiguration()
	configuration.Servers = []kratos.ServerConfiguration{
		{
			URL: baseURL,
		},
	}
	configuration.HTTPClient = &http.Client{
		Timeout: timeout,
	}

	return &KratosProvider{
		client: kratos.NewAPIClient(configuration),
	}
}

func (p *KratosProvider) Identify(c *gin.Context) (*ExternalIdentity, error) {
	cookie := c.GetHeader("Cookie")
	if cookie == "" {
		return nil, nil
	}

	session, resp, err := p.client.FrontendAPI.ToSession(c.Request.Context()).Cookie(cookie).Execute()
	if err != nil {
		if resp != nil {
			if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
				return nil, nil
			}
			return nil, fmt.Errorf("%w: kratos returned status %d: %v", ErrProviderUnavailable, resp.StatusCode, err)
		}
		return nil, fmt.Errorf("%w: failed to call kratos: %v", ErrProviderUnavailable, err)
	}

	if session.Active != nil && !*session.Active {
		return nil, nil
	}
	if session.Identity == nil {
		return nil, fmt.Errorf("%w: missing identity in kratos session", ErrProviderUnavailable)
	}

	email := ""
	if traits, ok := session.Identity.Traits.(map[string]interface{}); ok {
		if emailVal, ok := traits["email"].(string); ok {
			email = emailVal
		}
	}
	if email == "" {
		return nil, fmt.Errorf("%w: kratos identity %s has no email trait", ErrProviderUnavailable, session.Identity.Id)
	}

	return &ExternalIdentity{ID: session.Identity.Id, Email: email}, nil
}
