package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project is a portfolio entry shown in the projects section. Title and
// description are bilingual (English plus Hebrew). Featured is stored as the
// text "true"/"false" rather than a native boolean: the upstream schema
// defined it as a text column and existing clients depend on the string form,
// so the quirk is preserved on the wire.
type Project struct {
	ID            string     `gorm:"type:varchar(36);primaryKey" json:"id"`
	Title         string     `gorm:"not null" json:"title"`
	TitleHe       string     `gorm:"not null" json:"titleHe"`
	Description   string     `gorm:"type:text;not null" json:"description"`
	DescriptionHe string     `gorm:"type:text;not null" json:"descriptionHe"`
	Technologies  StringList `gorm:"type:text;not null" json:"technologies"`
	ImageURL      string     `json:"imageUrl"`
	GithubURL     string     `json:"githubUrl"`
	LiveURL       string     `json:"liveUrl"`
	Featured      string     `gorm:"default:false" json:"featured"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// BeforeCreate assigns a UUID primary key when none was provided.
func (p *Project) BeforeCreate(_ *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
