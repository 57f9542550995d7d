package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/erp-api/internal/dto"
	apierrors "github.com/yukikurage/erp-api/internal/errors"
	"github.com/yukikurage/erp-api/internal/models"
)

var (
	alice = caller{id: "alice", email: "alice@a.com"}
	bob   = caller{id: "bob", email: "bob@b.com"}
)

func TestHealth(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, anonymous, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRequestID(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, anonymous, http.MethodGet, "/health", nil)
	assert.Len(t, w.Header().Get("X-Request-ID"), 36)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w = httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
}

func TestAnonymousReadsAreEmpty(t *testing.T) {
	env := setupTestEnv(t)

	for _, path := range []string{"/api/products", "/api/employees", "/api/transactions"} {
		w := env.do(t, anonymous, http.MethodGet, path, nil)
		require.Equal(t, http.StatusOK, w.Code, path)
		assert.Equal(t, "no-store, no-cache, must-revalidate, private", w.Header().Get("Cache-Control"))

		list := decode[dto.ListResponse[map[string]any]](t, w)
		assert.Empty(t, list.Items, path)
		assert.Zero(t, list.Pagination.Total, path)
	}

	w := env.do(t, anonymous, http.MethodGet, "/api/settings", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())

	stats := decode[dto.DashboardStatsDTO](t, env.do(t, anonymous, http.MethodGet, "/api/dashboard", nil))
	assert.Zero(t, stats.TotalProducts)

	reports := decode[dto.ReportsDTO](t, env.do(t, anonymous, http.MethodGet, "/api/reports", nil))
	assert.Empty(t, reports.Transactions)

	// reads never provision anything
	var orgs int64
	require.NoError(t, env.db.Model(&models.Organization{}).Count(&orgs).Error)
	assert.Zero(t, orgs)
}

func TestAnonymousWritesAreUnauthorized(t *testing.T) {
	env := setupTestEnv(t)

	for _, tc := range []struct {
		method, path string
		body         any
	}{
		{http.MethodPut, "/api/settings", map[string]any{"name": "x"}},
		{http.MethodPost, "/api/products", map[string]any{"name": "x", "sku": "x", "quantity": 1, "price": "1"}},
		{http.MethodDelete, "/api/products/some-id", nil},
		{http.MethodPost, "/api/employees", map[string]any{"salary": "1"}},
		{http.MethodPost, "/api/transactions", map[string]any{"amount": "1"}},
	} {
		w := env.do(t, anonymous, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", tc.method, tc.path)
	}
}

func TestSettingsFlow(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, alice, http.MethodPut, "/api/settings", map[string]any{
		"name":         "Alice Trading",
		"brand_symbol": "AT",
		"currency":     "GBP",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	org := decode[dto.OrganizationDTO](t, env.do(t, alice, http.MethodGet, "/api/settings", nil))
	assert.Equal(t, "Alice Trading", org.Name)
	assert.Equal(t, models.CurrencyGBP, org.Currency)

	w = env.do(t, alice, http.MethodPut, "/api/settings", map[string]any{
		"name":         "Alice Trading",
		"brand_symbol": "ENTERPRISE",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, apierrors.ErrCodeInvalidInput, decode[apierrors.APIError](t, w).Code)
	assert.Contains(t, w.Body.String(), `"field":"brand_symbol"`)

	org = decode[dto.OrganizationDTO](t, env.do(t, alice, http.MethodGet, "/api/settings", nil))
	require.NotNil(t, org.BrandSymbol)
	assert.Equal(t, "AT", *org.BrandSymbol)

	// the form is submitted whole, so a missing symbol clears it
	w = env.do(t, alice, http.MethodPut, "/api/settings", map[string]any{"name": "Alice Trading", "currency": "GBP"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Nil(t, decode[dto.OrganizationDTO](t, w).BrandSymbol)
}

func TestInventoryFlowAndTenantIsolation(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, bob, http.MethodPost, "/api/products", map[string]any{
		"name": "Bolt", "sku": "B-1", "quantity": 4, "price": "2.50",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	bobsProduct := decode[dto.ProductDTO](t, w)
	assert.True(t, decimal.RequireFromString("2.5").Equal(bobsProduct.Price))

	w = env.do(t, bob, http.MethodPost, "/api/products", map[string]any{
		"name": "Bolt again", "sku": "B-1", "quantity": 1, "price": 1,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = env.do(t, alice, http.MethodPost, "/api/products", map[string]any{"name": "Nut", "sku": "N-1", "price": 1})
	assert.Equal(t, http.StatusBadRequest, w.Code, "quantity is required")

	// alice cannot see or delete bob's product
	list := decode[dto.ListResponse[dto.ProductDTO]](t, env.do(t, alice, http.MethodGet, "/api/products", nil))
	assert.Empty(t, list.Items)

	w = env.do(t, alice, http.MethodDelete, "/api/products/"+bobsProduct.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	list = decode[dto.ListResponse[dto.ProductDTO]](t, env.do(t, bob, http.MethodGet, "/api/products", nil))
	require.Len(t, list.Items, 1)

	w = env.do(t, bob, http.MethodDelete, "/api/products/"+bobsProduct.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestEmployeeOnboardingAndLinkage(t *testing.T) {
	env := setupTestEnv(t)

	w := env.do(t, alice, http.MethodPost, "/api/employees", map[string]any{
		"first_name": "Carol",
		"last_name":  "Diaz",
		"email":      "carol@a.com",
		"role":       "Clerk",
		"department": "Sales",
		"salary":     "42000",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	aliceMe := decode[dto.MeDTO](t, env.do(t, alice, http.MethodGet, "/api/auth/me", nil))

	carol := caller{id: "carol", email: "Carol@a.com"}
	carolMe := decode[dto.MeDTO](t, env.do(t, carol, http.MethodGet, "/api/auth/me", nil))
	assert.Equal(t, models.RoleEmployee, carolMe.User.Role)
	assert.Equal(t, aliceMe.Organization.ID, carolMe.Organization.ID)

	employees := decode[dto.ListResponse[dto.EmployeeDTO]](t, env.do(t, carol, http.MethodGet, "/api/employees", nil))
	require.Len(t, employees.Items, 1)

	// employees cannot onboard staff
	w = env.do(t, carol, http.MethodPost, "/api/employees", map[string]any{
		"first_name": "Eve", "last_name": "F", "email": "eve@a.com", "role": "r", "department": "d", "salary": "1",
	})
	require.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, apierrors.ErrCodeInsufficientPermissions, decode[apierrors.APIError](t, w).Code)

	// but any member may edit their organization's settings
	w = env.do(t, carol, http.MethodPut, "/api/settings", map[string]any{"name": "Carol Inc", "currency": "EUR"})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	org := decode[dto.OrganizationDTO](t, env.do(t, alice, http.MethodGet, "/api/settings", nil))
	assert.Equal(t, "Carol Inc", org.Name)
	assert.Equal(t, models.CurrencyEUR, org.Currency)
}

func TestFinanceAndReports(t *testing.T) {
	env := setupTestEnv(t)

	for _, body := range []map[string]any{
		{"amount": "120", "type": "INCOME", "category": "Sales", "date": "2024-01-02T00:00:00Z"},
		{"amount": "20", "type": "EXPENSE", "category": "Rent", "date": "2024-01-01T00:00:00Z"},
	} {
		w := env.do(t, alice, http.MethodPost, "/api/transactions", body)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}
	w := env.do(t, alice, http.MethodPost, "/api/transactions", map[string]any{"amount": "-5", "type": "INCOME", "category": "x"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(t, alice, http.MethodPost, "/api/products", map[string]any{"name": "Bolt", "sku": "B-1", "quantity": 2, "price": "3"})
	require.Equal(t, http.StatusCreated, w.Code)

	summary := decode[dto.FinanceSummaryDTO](t, env.do(t, alice, http.MethodGet, "/api/transactions/summary", nil))
	assert.True(t, decimal.NewFromInt(100).Equal(summary.NetProfit), "net %s", summary.NetProfit)

	stats := decode[dto.DashboardStatsDTO](t, env.do(t, alice, http.MethodGet, "/api/dashboard", nil))
	assert.Equal(t, int64(1), stats.TotalProducts)
	assert.Equal(t, int64(1), stats.LowStockCount)
	assert.Equal(t, int64(1), stats.ActiveUsers)
	assert.True(t, decimal.NewFromInt(120).Equal(stats.Revenue))

	reports := decode[dto.ReportsDTO](t, env.do(t, alice, http.MethodGet, "/api/reports", nil))
	assert.True(t, decimal.NewFromInt(6).Equal(reports.TotalInventoryValue))
	require.Len(t, reports.Transactions, 2)
	assert.Equal(t, "Rent", reports.Transactions[0].Category)

	// bob sees none of it
	bobReports := decode[dto.ReportsDTO](t, env.do(t, bob, http.MethodGet, "/api/reports", nil))
	assert.Empty(t, bobReports.Transactions)
	assert.True(t, bobReports.TotalInventoryValue.IsZero())
}
