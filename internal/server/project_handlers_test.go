package server

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"folio/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateProject(t *testing.T) {
	_, app, db := newTestServer(t)

	body, _ := json.Marshal(map[string]any{
		"title":         "Portfolio",
		"titleHe":       "תיק עבודות",
		"description":   "A personal portfolio site",
		"descriptionHe": "אתר תיק עבודות אישי",
		"technologies":  []string{"Go", "Fiber", "Postgres"},
		"imageUrl":      "https://example.com/p.png",
		"githubUrl":     "https://github.com/example/portfolio",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var result struct {
		Success bool           `json:"success"`
		Project models.Project `json:"project"`
	}
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.True(t, result.Success)
	assert.NotEmpty(t, result.Project.ID)
	assert.Equal(t, models.StringList{"Go", "Fiber", "Postgres"}, result.Project.Technologies)
	// Omitted featured flag defaults to the string "false".
	assert.Equal(t, "false", result.Project.Featured)

	var stored models.Project
	require.NoError(t, db.First(&stored, "id = ?", result.Project.ID).Error)
	assert.Equal(t, "Portfolio", stored.Title)
}

func TestCreateProjectFeaturedPreserved(t *testing.T) {
	_, app, _ := newTestServer(t)

	body, _ := json.Marshal(map[string]any{
		"title":         "Featured Work",
		"titleHe":       "עבודה מובחרת",
		"description":   "Something worth pinning",
		"descriptionHe": "משהו ששווה להצמיד",
		"technologies":  []string{"Go"},
		"featured":      "true",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var result struct {
		Project models.Project `json:"project"`
	}
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.Equal(t, "true", result.Project.Featured)
}

func TestCreateProjectMissingTechnologies(t *testing.T) {
	_, app, db := newTestServer(t)

	body, _ := json.Marshal(map[string]any{
		"title":         "No Stack",
		"titleHe":       "בלי מחסנית",
		"description":   "Missing its technology list",
		"descriptionHe": "חסרה רשימת טכנולוגיות",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var result models.ErrorResponse
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &result))
	require.Len(t, result.Details, 1)
	assert.Equal(t, "technologies", result.Details[0].Field)

	var count int64
	db.Model(&models.Project{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestCreateProjectEmptyTechnologiesAllowed(t *testing.T) {
	_, app, _ := newTestServer(t)

	// An explicitly empty list is valid; only an absent field is rejected.
	body, _ := json.Marshal(map[string]any{
		"title":         "Essay",
		"titleHe":       "מאמר",
		"description":   "Writing with no tooling",
		"descriptionHe": "כתיבה ללא כלים",
		"technologies":  []string{},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/projects", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
}

func TestGetProject(t *testing.T) {
	_, app, db := newTestServer(t)

	project := models.Project{
		Title: "Stored", TitleHe: "שמור",
		Description: "already persisted", DescriptionHe: "כבר שמור",
		Technologies: models.StringList{"Go"},
	}
	require.NoError(t, db.Create(&project).Error)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/projects/"+project.ID, nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result struct {
		Success bool           `json:"success"`
		Project models.Project `json:"project"`
	}
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.Equal(t, project.ID, result.Project.ID)
}

func TestGetProjectNotFound(t *testing.T) {
	_, app, _ := newTestServer(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/projects/missing-id", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var result models.ErrorResponse
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.False(t, result.Success)
	assert.Equal(t, "Project not found", result.Error)
}

func TestGetProjectsEmpty(t *testing.T) {
	_, app, _ := newTestServer(t)

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/projects", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var result map[string]json.RawMessage
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &result))
	assert.JSONEq(t, "[]", string(result["projects"]))
}
