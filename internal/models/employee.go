package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Employee is an HR roster entry. It may exist before the person ever signs
// in; the email is what links it to a User later.
type Employee struct {
	ID             string          `gorm:"type:varchar(36);primarykey" json:"id"`
	FirstName      string          `gorm:"type:varchar(255);not null" json:"first_name"`
	LastName       string          `gorm:"type:varchar(255);not null" json:"last_name"`
	Email          string          `gorm:"type:varchar(255);not null;index;uniqueIndex:idx_employees_org_email,priority:2" json:"email"`
	Role           string          `gorm:"type:varchar(255);not null" json:"role"`
	Department     string          `gorm:"type:varchar(255);not null" json:"department"`
	Salary         decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"salary"`
	OrganizationID string          `gorm:"type:varchar(36);not null;uniqueIndex:idx_employees_org_email,priority:1" json:"organization_id"`
	JoinedAt       time.Time       `gorm:"not null" json:"joined_at"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

func (e *Employee) BeforeCreate(tx *gorm.DB) error {
	if e.ID == "" {
		e.ID = newID()
	}
	if e.JoinedAt.IsZero() {
		e.JoinedAt = time.Now()
	}
	return nil
}
