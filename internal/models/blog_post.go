package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BlogPost is a bilingual article. The slug is the public lookup key and is
// unique across all posts. Published gates visibility in public listings and,
// like Project.Featured, is stored as the text "true"/"false" to preserve the
// upstream wire contract.
type BlogPost struct {
	ID            string    `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title         string    `gorm:"not null" json:"title"`
	TitleHe       string    `gorm:"not null" json:"titleHe"`
	Slug          string    `gorm:"uniqueIndex;not null" json:"slug"`
	Excerpt       string    `gorm:"type:text;not null" json:"excerpt"`
	ExcerptHe     string    `gorm:"type:text;not null" json:"excerptHe"`
	Content       string    `gorm:"type:text;not null" json:"content"`
	ContentHe     string    `gorm:"type:text;not null" json:"contentHe"`
	CoverImageURL string    `json:"coverImageUrl"`
	Published     string    `gorm:"default:false" json:"published"`
	CreatedAt     time.Time `json:"createdAt"`
}

// BeforeCreate assigns a UUID primary key when none was provided.
func (p *BlogPost) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
