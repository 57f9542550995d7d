package constants

// Context and session keys
const (
	ContextKeyTenantUser = "tenant_user"
	ContextKeyRequestID  = "request_id"

	SessionCookieName       = "erp_session"
	SessionKeyIdentityID    = "identity_id"
	SessionKeyIdentityEmail = "identity_email"

	HeaderRequestID = "X-Request-ID"
)

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Business rules
const (
	LowStockThreshold     = 10
	DefaultCurrency       = "USD"
	RegistrationNumberMin = 100000
	RegistrationNumberMax = 999999
	ProvisioningAttempts  = 5
)
