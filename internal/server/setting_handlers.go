package server

import (
	"folio/internal/models"
	"folio/internal/observability"
	"folio/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// GetSettings handles GET /api/settings. The response flattens the stored
// rows into a single key/value object, which is what the site templates
// consume directly.
func (s *Server) GetSettings(c *fiber.Ctx) error {
	settings, err := s.settingRepo.List(c.Context())
	if err != nil {
		return s.respondInternalError(c, err)
	}

	flattened := make(map[string]string, len(settings))
	for _, setting := range settings {
		flattened[setting.Key] = setting.Value
	}

	return c.JSON(fiber.Map{
		"success":  true,
		"settings": flattened,
	})
}

// SetSetting handles POST /api/settings. Writes upsert by key, so repeating
// a key updates its value in place.
func (s *Server) SetSetting(c *fiber.Ctx) error {
	var req struct {
		Key   string `json:"key"`
		Value string `json:"value"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewBadRequestError("Invalid request body"))
	}

	setting := &models.SiteSetting{Key: req.Key, Value: req.Value}
	if details := validation.ValidateSiteSetting(setting); len(details) > 0 {
		return respondValidationError(c, details)
	}

	persisted, err := s.settingRepo.Set(c.Context(), setting)
	if err != nil {
		return s.respondInternalError(c, err)
	}

	observability.ContentWritesTotal.WithLabelValues("site_setting").Inc()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"setting": persisted,
	})
}
