package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/erp-api/internal/database"
	"github.com/yukikurage/erp-api/internal/identity"
	"github.com/yukikurage/erp-api/internal/repository"
	"github.com/yukikurage/erp-api/internal/services"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	headerTestUser  = "X-Test-User"
	headerTestEmail = "X-Test-Email"
)

// headerProvider trusts identity headers; tests use it to act as any identity.
type headerProvider struct{}

func (headerProvider) Identify(c *gin.Context) (*identity.ExternalIdentity, error) {
	id := c.GetHeader(headerTestUser)
	if id == "" {
		return nil, nil
	}
	return &identity.ExternalIdentity{ID: id, Email: c.GetHeader(headerTestEmail)}, nil
}

type testEnv struct {
	db     *gorm.DB
	router *gin.Engine
}

func setupTestEnv(t *testing.T) testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Open(sqlite.Open(":memory:"), zerolog.Nop(), gormlogger.Silent)
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() {
		sqlDB.Close()
	})
	require.NoError(t, database.Migrate(db, zerolog.Nop()))

	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	productRepo := repository.NewProductRepository(db)
	txRepo := repository.NewTransactionRepository(db)

	router := NewRouter(RouterConfig{
		Log:          zerolog.Nop(),
		SessionStore: cookie.NewStore([]byte("secret")),
		Provider:     identity.Chain{identity.NewSessionProvider(), headerProvider{}},
	}, Services{
		Identity:  services.NewIdentityService(userRepo, orgRepo, employeeRepo),
		Auth:      services.NewAuthService(repository.NewCredentialRepository(db)),
		Settings:  services.NewSettingsService(orgRepo),
		Inventory: services.NewInventoryService(productRepo),
		HR:        services.NewHRService(employeeRepo),
		Finance:   services.NewFinanceService(txRepo),
		Reports:   services.NewReportService(productRepo, userRepo, txRepo),
	})

	return testEnv{db: db, router: router}
}

type caller struct {
	id      string
	email   string
	cookies []*http.Cookie
}

var anonymous = caller{}

func (e testEnv) do(t *testing.T, who caller, method, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if who.id != "" {
		req.Header.Set(headerTestUser, who.id)
		req.Header.Set(headerTestEmail, who.email)
	}
	for _, ck := range who.cookies {
		req.AddCookie(ck)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}
