package identity

import "github.com/gin-gonic/gin"

// Chain asks each provider in turn; the first identity found wins and the
// first error aborts.
type Chain []Provider

func (ch Chain) Identify(c *gin.Context) (*ExternalIdentity, error) {
	for _, p := range ch {
		ident, err := p.Identify(c)
		if err != nil {
			return nil, err
		}
		if ident != nil {
			return ident, nil
		}
	}
	return nil, nil
}
