package database

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"portfolio-backend/models"
)

type ProfileRepo struct {
	db *gorm.DB
}

func NewProfileRepo(db *gorm.DB) *ProfileRepo {
	return &ProfileRepo{db}
}

// FindByEmail returns the profile for the given email, or (nil, nil) when no
// account exists
func (r *ProfileRepo) FindByEmail(email string) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// FindByID returns a profile by its ID, or (nil, nil) when no row exists
func (r *ProfileRepo) FindByID(id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.First(&profile, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// Add inserts a new profile into the database
func (r *ProfileRepo) Add(profile *models.Profile) error {
	return r.db.Create(profile).Error
}

// UpdatePassword stores a new password hash for the profile
func (r *ProfileRepo) UpdatePassword(id uuid.UUID, passwordHash string) error {
	return r.db.Model(&models.Profile{}).Where("id = ?", id).Updates(map[string]any{
		"password_hash": passwordHash,
		"updated_at":    time.Now().UTC(),
	}).Error
}

// Count returns the number of profiles, used for first-run admin seeding
func (r *ProfileRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&models.Profile{}).Count(&count).Error
	return count, err
}
