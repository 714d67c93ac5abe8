package database

import (
	"gorm.io/gorm"
)

type Database struct {
	categoryRepo *CategoryRepo
	projectRepo  *ProjectRepo
	profileRepo  *ProfileRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		categoryRepo: NewCategoryRepo(db),
		projectRepo:  NewProjectRepo(db),
		profileRepo:  NewProfileRepo(db),
	}
}

// Accessor methods for each repository

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) ProfileRepo() *ProfileRepo {
	return d.profileRepo
}
