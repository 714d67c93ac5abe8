package database

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"portfolio-backend/models"
)

func addProject(t *testing.T, db Database, title string, categoryID *uuid.UUID, createdAt time.Time) *models.Project {
	t.Helper()
	project := &models.Project{
		Title:      title,
		CategoryID: categoryID,
		AuthorID:   uuid.New(),
		CreatedAt:  createdAt,
		UpdatedAt:  createdAt,
	}
	require.NoError(t, db.ProjectRepo().Add(project))
	return project
}

func TestProjectsNewestFirst(t *testing.T) {
	db := openTestDB(t)

	now := time.Now().UTC()
	addProject(t, db, "oldest", nil, now.Add(-2*time.Hour))
	addProject(t, db, "newest", nil, now)
	addProject(t, db, "middle", nil, now.Add(-time.Hour))

	projects, err := db.ProjectRepo().FindAll()
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, "newest", projects[0].Title)
	assert.Equal(t, "middle", projects[1].Title)
	assert.Equal(t, "oldest", projects[2].Title)
}

func TestFindByCategory(t *testing.T) {
	db := openTestDB(t)

	web := addCategory(t, db, "Web", 0)
	games := addCategory(t, db, "Games", 1)

	now := time.Now().UTC()
	addProject(t, db, "site", &web.ID, now)
	addProject(t, db, "pong", &games.ID, now)
	addProject(t, db, "untagged", nil, now)

	projects, err := db.ProjectRepo().FindByCategory(web.ID)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, "site", projects[0].Title)
	require.NotNil(t, projects[0].Category)
	assert.Equal(t, "Web", projects[0].Category.Name)
}

func TestProjectFindByIDMissing(t *testing.T) {
	db := openTestDB(t)

	found, err := db.ProjectRepo().FindByID(uuid.New())
	assert.NoError(t, err)
	assert.Nil(t, found)
}

func TestProjectHardDelete(t *testing.T) {
	db := openTestDB(t)

	project := addProject(t, db, "doomed", nil, time.Now().UTC())
	require.NoError(t, db.ProjectRepo().Delete(project.ID))

	found, err := db.ProjectRepo().FindByID(project.ID)
	require.NoError(t, err)
	assert.Nil(t, found)

	all, err := db.ProjectRepo().FindAll()
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestProjectKeepsDeactivatedCategory(t *testing.T) {
	db := openTestDB(t)

	category := addCategory(t, db, "Web", 0)
	project := addProject(t, db, "site", &category.ID, time.Now().UTC())

	require.NoError(t, db.CategoryRepo().SoftDelete(category.ID))

	found, err := db.ProjectRepo().FindByID(project.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	require.NotNil(t, found.Category)
	assert.Equal(t, "Web", found.Category.Name)
	assert.False(t, found.Category.IsActive)
}

func TestProjectUpdateMergesFields(t *testing.T) {
	db := openTestDB(t)

	content := "original"
	project := addProject(t, db, "site", nil, time.Now().UTC())
	require.NoError(t, db.ProjectRepo().Update(project.ID, map[string]any{
		"content": content,
	}))

	err := db.ProjectRepo().Update(project.ID, map[string]any{
		"title": "renamed",
	})
	require.NoError(t, err)

	found, err := db.ProjectRepo().FindByID(project.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "renamed", found.Title)
	require.NotNil(t, found.Content)
	assert.Equal(t, content, *found.Content)
}

func TestCountByCategory(t *testing.T) {
	db := openTestDB(t)

	web := addCategory(t, db, "Web", 0)
	games := addCategory(t, db, "Games", 1)

	now := time.Now().UTC()
	addProject(t, db, "a", &web.ID, now)
	addProject(t, db, "b", &web.ID, now)
	addProject(t, db, "c", &games.ID, now)
	addProject(t, db, "d", nil, now)

	counts, err := db.ProjectRepo().CountByCategory()
	require.NoError(t, err)
	require.Len(t, counts, 3)

	byCategory := make(map[uuid.UUID]int64)
	var uncategorized int64
	for _, c := range counts {
		if c.CategoryID == nil {
			uncategorized = c.Count
			continue
		}
		byCategory[*c.CategoryID] = c.Count
	}
	assert.Equal(t, int64(2), byCategory[web.ID])
	assert.Equal(t, int64(1), byCategory[games.ID])
	assert.Equal(t, int64(1), uncategorized)
}
