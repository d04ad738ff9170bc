package server

import (
	"testing"

	"folio/internal/config"
	"folio/internal/database"
	"folio/internal/repository"

	"github.com/gofiber/fiber/v2"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// newTestServer builds a Server over an in-memory sqlite database with the
// full route table registered. The prometheus middleware is left nil so
// repeated setups across tests do not re-register collectors.
func newTestServer(t *testing.T) (*Server, *fiber.App, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}

	s := &Server{
		config:      &config.Config{},
		db:          db,
		userRepo:    repository.NewUserRepository(db),
		contactRepo: repository.NewContactRepository(db),
		projectRepo: repository.NewProjectRepository(db),
		blogRepo:    repository.NewBlogRepository(db),
		settingRepo: repository.NewSettingRepository(db),
	}

	app := fiber.New()
	s.SetupRoutes(app)

	return s, app, db
}
