package repository

import (
	"context"
	"testing"
	"time"

	"folio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectRepository_CreateDefaultsFeatured(t *testing.T) {
	t.Parallel()

	repo := NewProjectRepository(setupTestDB(t))
	ctx := context.Background()

	project := &models.Project{
		Title:         "Network Scanner",
		TitleHe:       "סורק רשתות",
		Description:   "Automated network scanning tool",
		DescriptionHe: "כלי סריקת רשתות אוטומטי",
		Technologies:  models.StringList{"Python", "Scapy", "Nmap"},
	}
	require.NoError(t, repo.Create(ctx, project))

	assert.NotEmpty(t, project.ID)
	assert.Equal(t, "false", project.Featured)

	stored, err := repo.GetByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "false", stored.Featured)
	assert.Equal(t, models.StringList{"Python", "Scapy", "Nmap"}, stored.Technologies)
}

func TestProjectRepository_FeaturedValuePreserved(t *testing.T) {
	t.Parallel()

	repo := NewProjectRepository(setupTestDB(t))
	ctx := context.Background()

	project := &models.Project{
		Title:         "Log Analyzer",
		TitleHe:       "מנתח לוגים",
		Description:   "Smart log analysis system",
		DescriptionHe: "מערכת ניתוח לוגים חכמה",
		Technologies:  models.StringList{},
		Featured:      "true",
	}
	require.NoError(t, repo.Create(ctx, project))

	stored, err := repo.GetByID(ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, "true", stored.Featured)
	assert.Equal(t, models.StringList{}, stored.Technologies)
}

func TestProjectRepository_ListNewestFirst(t *testing.T) {
	t.Parallel()

	repo := NewProjectRepository(setupTestDB(t))
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	for i, title := range []string{"old", "newer", "newest"} {
		project := &models.Project{
			Title:         title,
			TitleHe:       title,
			Description:   "d",
			DescriptionHe: "d",
			Technologies:  models.StringList{},
			CreatedAt:     base.Add(time.Duration(i) * time.Hour),
		}
		require.NoError(t, repo.Create(ctx, project))
	}

	projects, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 3)
	assert.Equal(t, "newest", projects[0].Title)
	assert.Equal(t, "old", projects[2].Title)
}
