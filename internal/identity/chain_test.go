package identity

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/erp-api/internal/constants"
)

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) Identify(c *gin.Context) (*ExternalIdentity, error) {
	args := m.Called(c)
	ident, _ := args.Get(0).(*ExternalIdentity)
	return ident, args.Error(1)
}

func TestChain_FirstIdentityWins(t *testing.T) {
	c := contextWithHeader("", "")

	empty := new(mockProvider)
	empty.On("Identify", c).Return(nil, nil).Once()
	found := new(mockProvider)
	found.On("Identify", c).Return(&ExternalIdentity{ID: "u1", Email: "a@x.com"}, nil).Once()
	unused := new(mockProvider)

	ident, err := Chain{empty, found, unused}.Identify(c)
	require.NoError(t, err)
	assert.Equal(t, "u1", ident.ID)

	empty.AssertExpectations(t)
	found.AssertExpectations(t)
	unused.AssertNotCalled(t, "Identify", mock.Anything)
}

func TestChain_ErrorAborts(t *testing.T) {
	c := contextWithHeader("", "")

	failing := new(mockProvider)
	failing.On("Identify", c).Return(nil, ErrProviderUnavailable).Once()
	unused := new(mockProvider)

	_, err := Chain{failing, unused}.Identify(c)
	assert.True(t, errors.Is(err, ErrProviderUnavailable))
	unused.AssertNotCalled(t, "Identify", mock.Anything)
}

func TestChain_Empty(t *testing.T) {
	ident, err := Chain{}.Identify(contextWithHeader("", ""))
	require.NoError(t, err)
	assert.Nil(t, ident)
}

func TestSessionProvider_RoundTrip(t *testing.T) {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(sessions.Sessions(constants.SessionCookieName, cookie.NewStore([]byte("secret"))))
	r.POST("/login", func(c *gin.Context) {
		require.NoError(t, StartSession(c, &ExternalIdentity{ID: "u1", Email: "a@x.com"}))
		c.Status(http.StatusNoContent)
	})
	r.POST("/logout", func(c *gin.Context) {
		require.NoError(t, EndSession(c))
		c.Status(http.StatusNoContent)
	})
	r.GET("/whoami", func(c *gin.Context) {
		ident, err := NewSessionProvider().Identify(c)
		require.NoError(t, err)
		c.JSON(http.StatusOK, ident)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/login", nil))
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.JSONEq(t, `{"ID":"u1","Email":"a@x.com"}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
	assert.Equal(t, "null", w.Body.String())
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@x.com", NormalizeEmail("  A@X.Com\t"))
	assert.Equal(t, "", NormalizeEmail("   "))
}
