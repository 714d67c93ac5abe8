package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category is a named grouping for projects, shown as a filter in the
// public gallery. Categories are never hard-deleted: IsActive is flipped
// off instead so projects referencing the category keep resolving it.
type Category struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name        string    `json:"name" db:"name" gorm:"type:text;not null"`
	Description *string   `json:"description,omitempty" db:"description" gorm:"type:text"`
	Color       string    `json:"color" db:"color" gorm:"type:text;not null;default:'#3b82f6'"`
	Icon        string    `json:"icon" db:"icon" gorm:"type:text;not null;default:'folder'"`
	SortOrder   int       `json:"sort_order" db:"sort_order" gorm:"type:integer;not null;default:0"`
	IsActive    bool      `json:"is_active" db:"is_active" gorm:"not null;default:true"`
	CreatedAt   time.Time `json:"created_at" db:"created_at" gorm:"type:timestamp;not null"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at" gorm:"type:timestamp;not null"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}
