package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Product struct {
	ID             string          `gorm:"type:varchar(36);primarykey" json:"id"`
	Name           string          `gorm:"type:varchar(255);not null" json:"name"`
	SKU            string          `gorm:"type:varchar(100);not null;uniqueIndex:idx_products_org_sku,priority:2" json:"sku"`
	Quantity       int             `gorm:"not null;default:0" json:"quantity"`
	Price          decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"price"`
	OrganizationID string          `gorm:"type:varchar(36);not null;uniqueIndex:idx_products_org_sku,priority:1" json:"organization_id"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = newID()
	}
	return nil
}
