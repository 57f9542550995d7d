package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TransactionType string

const (
	TransactionIncome  TransactionType = "INCOME"
	TransactionExpense TransactionType = "EXPENSE"
)

// Valid reports whether t is INCOME or EXPENSE.
func (t TransactionType) Valid() bool {
	return t == TransactionIncome || t == TransactionExpense
}

type FinanceTransaction struct {
	ID             string          `gorm:"type:varchar(36);primarykey" json:"id"`
	Amount         decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"amount"`
	Type           TransactionType `gorm:"type:varchar(10);not null;index" json:"type"`
	Category       string          `gorm:"type:varchar(255);not null" json:"category"`
	Description    string          `gorm:"type:text" json:"description"`
	Date           time.Time       `gorm:"column:transaction_date;not null;index" json:"date"`
	OrganizationID string          `gorm:"type:varchar(36);not null;index" json:"organization_id"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (t *FinanceTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = newID()
	}
	if t.Date.IsZero() {
		t.Date = time.Now()
	}
	return nil
}
