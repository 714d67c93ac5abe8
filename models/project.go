package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Project is a portfolio case study with markdown content, an optional
// thumbnail image and an optional category reference.
type Project struct {
	ID           uuid.UUID  `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title        string     `json:"title" db:"title" gorm:"type:text;not null"`
	Content      *string    `json:"content,omitempty" db:"content" gorm:"type:text"`
	CategoryID   *uuid.UUID `json:"category_id,omitempty" db:"category_id" gorm:"type:uuid;index"`
	ThumbnailURL *string    `json:"thumbnail_url,omitempty" db:"thumbnail_url" gorm:"type:text"`
	AuthorID     uuid.UUID  `json:"author_id" db:"author_id" gorm:"type:uuid;not null"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at" gorm:"type:timestamp;not null"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at" gorm:"type:timestamp;not null"`

	// No delete cascade: a soft-deleted category must still resolve here.
	Category *Category `json:"-" gorm:"foreignKey:CategoryID;references:ID"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
