package database

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/models"
)

func addCategory(t *testing.T, db Database, name string, sortOrder int) *models.Category {
	t.Helper()
	category := &models.Category{
		Name:      name,
		Color:     "#3b82f6",
		Icon:      "folder",
		SortOrder: sortOrder,
		IsActive:  true,
	}
	require.NoError(t, db.CategoryRepo().Add(category))
	return category
}

func TestFindActiveExcludesDeactivated(t *testing.T) {
	db := openTestDB(t)

	addCategory(t, db, "Web", 2)
	addCategory(t, db, "Embedded", 1)
	hidden := addCategory(t, db, "Drafts", 3)

	require.NoError(t, db.CategoryRepo().SoftDelete(hidden.ID))

	active, err := db.CategoryRepo().FindActive()
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "Embedded", active[0].Name)
	assert.Equal(t, "Web", active[1].Name)

	all, err := db.CategoryRepo().FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestSoftDeleteKeepsRow(t *testing.T) {
	db := openTestDB(t)

	category := addCategory(t, db, "Web", 0)
	require.NoError(t, db.CategoryRepo().SoftDelete(category.ID))

	found, err := db.CategoryRepo().FindByID(category.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.False(t, found.IsActive)
	assert.Equal(t, "Web", found.Name)
}

func TestCategoryFindByIDMissing(t *testing.T) {
	db := openTestDB(t)

	found, err := db.CategoryRepo().FindByID(uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestCategoryUpdateMergesFields(t *testing.T) {
	db := openTestDB(t)

	category := addCategory(t, db, "Web", 0)
	before := category.UpdatedAt

	err := db.CategoryRepo().Update(category.ID, map[string]any{
		"name":  "Web Apps",
		"color": "#ff0000",
	})
	require.NoError(t, err)

	found, err := db.CategoryRepo().FindByID(category.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Web Apps", found.Name)
	assert.Equal(t, "#ff0000", found.Color)
	assert.Equal(t, "folder", found.Icon)
	assert.True(t, found.IsActive)
	assert.False(t, found.UpdatedAt.Before(before))
}

func TestReorder(t *testing.T) {
	db := openTestDB(t)

	first := addCategory(t, db, "Web", 0)
	second := addCategory(t, db, "Embedded", 1)
	third := addCategory(t, db, "Games", 2)

	err := db.CategoryRepo().Reorder(context.Background(), []SortOrderUpdate{
		{ID: first.ID, SortOrder: 2},
		{ID: second.ID, SortOrder: 0},
		{ID: third.ID, SortOrder: 1},
	})
	require.NoError(t, err)

	active, err := db.CategoryRepo().FindActive()
	require.NoError(t, err)
	require.Len(t, active, 3)
	assert.Equal(t, "Embedded", active[0].Name)
	assert.Equal(t, "Games", active[1].Name)
	assert.Equal(t, "Web", active[2].Name)
}

func TestReorderEmptyBatch(t *testing.T) {
	db := openTestDB(t)

	assert.NoError(t, db.CategoryRepo().Reorder(context.Background(), nil))
}

func TestCategoryUpdatedAtStamped(t *testing.T) {
	db := openTestDB(t)

	past := time.Now().UTC().Add(-24 * time.Hour)
	category := &models.Category{
		Name:      "Web",
		Color:     "#3b82f6",
		Icon:      "folder",
		IsActive:  true,
		CreatedAt: past,
		UpdatedAt: past,
	}
	require.NoError(t, db.CategoryRepo().Add(category))

	require.NoError(t, db.CategoryRepo().SoftDelete(category.ID))

	found, err := db.CategoryRepo().FindByID(category.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.True(t, found.UpdatedAt.After(past))
}
