package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/yukikurage/erp-api/internal/models"
)

// ProductDTO represents an inventory item in API responses
type ProductDTO struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	SKU       string          `json:"sku"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	CreatedAt time.Time       `json:"created_at"`
}

// EmployeeDTO represents an employee in API responses
type EmployeeDTO struct {
	ID         string          `json:"id"`
	FirstName  string          `json:"first_name"`
	LastName   string          `json:"last_name"`
	Email      string          `json:"email"`
	Role       string          `json:"role"`
	Department string          `json:"department"`
	Salary     decimal.Decimal `json:"salary"`
	JoinedAt   time.Time       `json:"joined_at"`
}

// TransactionDTO represents a finance transaction in API responses
type TransactionDTO struct {
	ID          string                 `json:"id"`
	Amount      decimal.Decimal        `json:"amount"`
	Type        models.TransactionType `json:"type"`
	Category    string                 `json:"category"`
	Description string                 `json:"description"`
	Date        time.Time              `json:"date"`
}

type FinanceSummaryDTO struct {
	Income    decimal.Decimal `json:"income"`
	Expenses  decimal.Decimal `json:"expenses"`
	NetProfit decimal.Decimal `json:"net_profit"`
}

type DashboardStatsDTO struct {
	TotalProducts int64           `json:"total_products"`
	LowStockCount int64           `json:"low_stock_count"`
	ActiveUsers   int64           `json:"active_users"`
	Revenue       decimal.Decimal `json:"revenue"`
}

type ReportsDTO struct {
	TotalInventoryValue decimal.Decimal  `json:"total_inventory_value"`
	Transactions        []TransactionDTO `json:"transactions"`
}

func ToProductDTO(p models.Product) ProductDTO {
	return ProductDTO{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Quantity:  p.Quantity,
		Price:     p.Price,
		CreatedAt: p.CreatedAt,
	}
}

func ToEmployeeDTO(e models.Employee) EmployeeDTO {
	return EmployeeDTO{
		ID:         e.ID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
		Email:      e.Email,
		Role:       e.Role,
		Department: e.Department,
		Salary:     e.Salary,
		JoinedAt:   e.JoinedAt,
	}
}

func ToTransactionDTO(tx models.FinanceTransaction) TransactionDTO {
	return TransactionDTO{
		ID:          tx.ID,
		Amount:      tx.Amount,
		Type:        tx.Type,
		Category:    tx.Category,
		Description: tx.Description,
		Date:        tx.Date,
	}
}

// ToTransactionDTOs converts a slice, never returning nil.
func ToTransactionDTOs(txs []models.FinanceTransaction) []TransactionDTO {
	out := make([]TransactionDTO, len(txs))
	for i, tx := range txs {
		out[i] = ToTransactionDTO(tx)
	}
	return out
}
