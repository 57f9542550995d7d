package repository

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/yukikurage/erp-api/internal/models"
	"github.com/yukikurage/erp-api/internal/utils"
)

// Lookups return gorm.ErrRecordNotFound when nothing matches. Creates return an
// error wrapping ErrDuplicateKey when a unique constraint rejects the row.
// Every method on tenant data takes the organization id and filters by it.

// UserRepository defines the interface for user data access
type UserRepository interface {
	// FindByEmail finds a user by email, with its organization loaded
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// FindByID finds a user by external identity id, with its organization loaded
	FindByID(ctx context.Context, id string) (*models.User, error)

	// Create creates a user in an existing organization
	Create(ctx context.Context, user *models.User) error

	// UpdateEmail changes the stored email of a user
	UpdateEmail(ctx context.Context, id, email string) error

	// CountByOrganization counts the users of an organization
	CountByOrganization(ctx context.Context, orgID string) (int64, error)
}

// OrganizationRepository defines the interface for organization data access
type OrganizationRepository interface {
	// FindByID finds an organization by ID
	FindByID(ctx context.Context, id string) (*models.Organization, error)

	// CreateWithOwner creates an organization and its owning user in a single
	// transaction. Either both rows persist or neither does.
	CreateWithOwner(ctx context.Context, org *models.Organization, owner *models.User) error

	// UpdateSettings updates the mutable settings of one organization
	UpdateSettings(ctx context.Context, orgID string, settings OrganizationSettings) error
}

// OrganizationSettings holds the columns a settings update may change.
type OrganizationSettings struct {
	Name        string
	BrandSymbol *string
	Currency    models.Currency
}

// EmployeeRepository defines the interface for employee data access
type EmployeeRepository interface {
	// FindByEmail finds the earliest-joined employee with this email in any organization
	FindByEmail(ctx context.Context, email string) (*models.Employee, error)

	// ListByOrganization lists an organization's employees, newest joined first
	ListByOrganization(ctx context.Context, orgID string, params utils.PaginationParams) ([]models.Employee, int64, error)

	// Create creates an employee
	Create(ctx context.Context, employee *models.Employee) error
}

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	// ListByOrganization lists an organization's products, newest first
	ListByOrganization(ctx context.Context, orgID string, params utils.PaginationParams) ([]models.Product, int64, error)

	// ListAll lists every product of an organization
	ListAll(ctx context.Context, orgID string) ([]models.Product, error)

	// Create creates a product
	Create(ctx context.Context, product *models.Product) error


	// Delete deletes a product within an organization
	Delete(ctx context.Context, orgID, id string) error

	// Count counts an organization's products
	Count(ctx context.Context, orgID string) (int64, error)

	// CountBelowQuantity counts products whose quantity is below threshold
	CountBelowQuantity(ctx context.Context, orgID string, threshold int) (int64, error)
}

// TransactionRepository defines the interface for finance transaction data access
type TransactionRepository interface {
	// ListByOrganization lists an organization's transactions by date
	ListByOrganization(ctx context.Context, orgID string, params utils.PaginationParams) ([]models.FinanceTransaction, int64, error)

	// ListAllChronological lists every transaction of an organization, oldest first
	ListAllChronological(ctx context.Context, orgID string) ([]models.FinanceTransaction, error)

	// Create creates a transaction
	Create(ctx context.Context, tx *models.FinanceTransaction) error

	// SumByType totals the amounts of one transaction type
	SumByType(ctx context.Context, orgID string, txType models.TransactionType) (decimal.Decimal, error)
}

// CredentialRepository defines the interface for local identity credentials
type CredentialRepository interface {
	// Create creates a credential
	Create(ctx context.Context, cred *models.Credential) error

	// FindByEmail finds a credential by email
	FindByEmail(ctx context.Context, email string) (*models.Credential, error)
}
