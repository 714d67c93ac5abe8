package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Profile is an account that can sign in to the admin panel. Only profiles
// with RoleAdmin pass the admin route guard.
type Profile struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Email        string    `json:"email" db:"email" gorm:"type:text;not null;uniqueIndex"`
	Name         *string   `json:"name,omitempty" db:"name" gorm:"type:text"`
	AvatarURL    *string   `json:"avatar_url,omitempty" db:"avatar_url" gorm:"type:text"`
	Role         string    `json:"role" db:"role" gorm:"type:text;not null;default:'user'"`
	PasswordHash string    `json:"-" db:"password_hash" gorm:"type:text;not null"`
	CreatedAt    time.Time `json:"created_at" db:"created_at" gorm:"type:timestamp;not null"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at" gorm:"type:timestamp;not null"`
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
