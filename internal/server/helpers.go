package server

import (
	"log/slog"

	"folio/internal/middleware"
	"folio/internal/models"

	"github.com/gofiber/fiber/v2"
)

// respondInternalError logs the cause server-side and returns the opaque 500
// envelope. Internal detail must never reach the client.
func (s *Server) respondInternalError(c *fiber.Ctx, err error) error {
	middleware.Logger.ErrorContext(c.UserContext(), "request error",
		slog.String("method", c.Method()),
		slog.String("path", c.Path()),
		slog.String("error", err.Error()),
	)
	return models.RespondWithError(c, fiber.StatusInternalServerError, models.NewInternalError(err))
}

// respondValidationError returns the 400 envelope listing every violated field.
func respondValidationError(c *fiber.Ctx, details []models.FieldError) error {
	return models.RespondWithError(c, fiber.StatusBadRequest, models.NewValidationError(details))
}
