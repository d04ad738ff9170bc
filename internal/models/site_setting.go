package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SiteSetting is a key/value pair driving site-wide presentation (social
// links, contact email). Keys are unique; writes use upsert semantics.
type SiteSetting struct {
	ID    string `gorm:"type:varchar(36);primaryKey" json:"id"`
	Key   string `gorm:"uniqueIndex;not null" json:"key"`
	Value string `gorm:"not null" json:"value"`
}

// BeforeCreate assigns a UUID primary key when none was provided.
func (s *SiteSetting) BeforeCreate(_ *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
