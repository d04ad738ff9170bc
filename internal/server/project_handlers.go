package server

import (
	"errors"

	"folio/internal/models"
	"folio/internal/observability"
	"folio/internal/validation"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// GetProjects handles GET /api/projects
func (s *Server) GetProjects(c *fiber.Ctx) error {
	projects, err := s.projectRepo.List(c.Context())
	if err != nil {
		return s.respondInternalError(c, err)
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"projects": projects,
	})
}

// GetProject handles GET /api/projects/:id
func (s *Server) GetProject(c *fiber.Ctx) error {
	project, err := s.projectRepo.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RespondWithError(c, fiber.StatusNotFound,
				models.NewNotFoundError("Project"))
		}
		return s.respondInternalError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"project": project,
	})
}

// CreateProject handles POST /api/projects
func (s *Server) CreateProject(c *fiber.Ctx) error {
	var req struct {
		Title         string    `json:"title"`
		TitleHe       string    `json:"titleHe"`
		Description   string    `json:"description"`
		DescriptionHe string    `json:"descriptionHe"`
		Technologies  *[]string `json:"technologies"`
		ImageURL      string    `json:"imageUrl"`
		GithubURL     string    `json:"githubUrl"`
		LiveURL       string    `json:"liveUrl"`
		Featured      string    `json:"featured"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBadRequestError("Invalid request body"))
	}

	project := &models.Project{
		Title:         req.Title,
		TitleHe:       req.TitleHe,
		Description:   req.Description,
		DescriptionHe: req.DescriptionHe,
		ImageURL:      req.ImageURL,
		GithubURL:     req.GithubURL,
		LiveURL:       req.LiveURL,
		Featured:      req.Featured,
	}
	if req.Technologies != nil {
		project.Technologies = models.StringList(*req.Technologies)
	}
	if details := validation.ValidateProject(project, req.Technologies != nil); len(details) > 0 {
		return respondValidationError(c, details)
	}

	if err := s.projectRepo.Create(c.Context(), project); err != nil {
		return s.respondInternalError(c, err)
	}

	observability.ContentWritesTotal.WithLabelValues("project").Inc()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"project": project,
	})
}
