package models

import (
	"time"

	"gorm.io/gorm"
)

// Credential backs the built-in email/password identity provider. It is an
// identity, not an application user: reconciliation turns it into a User.
type Credential struct {
	IdentityID   string    `gorm:"type:varchar(64);primarykey" json:"identity_id"`
	Email        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (c *Credential) BeforeCreate(tx *gorm.DB) error {
	if c.IdentityID == "" {
		c.IdentityID = newID()
	}
	return nil
}
