// Package models contains data structures for the application's domain models.
package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents an account that can author site content.
// The password field holds an opaque credential (stored as a bcrypt hash);
// it is never serialized into API responses.
type User struct {
	ID       string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
}

// BeforeCreate assigns a UUID primary key when none was provided.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
