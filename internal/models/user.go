package models

import (
	"time"
)

type Role string

const (
	RoleOwner    Role = "OWNER"
	RoleManager  Role = "MANAGER"
	RoleEmployee Role = "EMPLOYEE"
)

// User is the application account bound to one external identity. Its ID is
// the identity provider's subject and never changes.
type User struct {
	ID             string    `gorm:"type:varchar(64);primarykey" json:"id"`
	Email          string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	OrganizationID string    `gorm:"type:varchar(36);index;not null" json:"organization_id"`
	Role           Role      `gorm:"type:varchar(20);not null" json:"role"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	Organization Organization `gorm:"foreignKey:OrganizationID" json:"organization,omitempty"`
}
