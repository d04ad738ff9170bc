// Package bootstrap wires up runtime dependencies shared by the server and
// the maintenance commands.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"folio/internal/config"
	"folio/internal/database"
	"folio/internal/models"
	"folio/internal/repository"
	"folio/internal/seed"

	"gorm.io/gorm"
)

// Options control runtime initialization behavior.
type Options struct {
	// SeedStarter loads the fixed starter content after migration.
	SeedStarter bool
}

// InitRuntime connects to the database and optionally runs built-in seeding.
func InitRuntime(ctx context.Context, cfg *config.Config, opts Options) (*gorm.DB, error) {
	db, err := database.Connect(cfg)
	if err != nil {
		return nil, fmt.Errorf("database connection failed: %w", err)
	}

	if err := ensureAuthor(ctx, cfg, db); err != nil {
		return nil, fmt.Errorf("failed to bootstrap author account: %w", err)
	}

	if opts.SeedStarter {
		if err := seed.Run(ctx, db, seed.Options{}); err != nil {
			return nil, fmt.Errorf("failed to seed starter content: %w", err)
		}
	}

	return db, nil
}

// ensureAuthor creates the site author's account when bootstrap is enabled
// and no account with that username exists yet. Existing accounts are left
// untouched so a changed env password never silently rotates credentials.
func ensureAuthor(ctx context.Context, cfg *config.Config, db *gorm.DB) error {
	if cfg == nil || db == nil || !cfg.BootstrapAuthor {
		return nil
	}

	username := strings.TrimSpace(cfg.AuthorUsername)
	if username == "" {
		username = "author"
	}
	if cfg.AuthorPassword == "" {
		return fmt.Errorf("AUTHOR_PASSWORD must be set when BOOTSTRAP_AUTHOR is enabled")
	}

	users := repository.NewUserRepository(db)
	_, err := users.GetByUsername(ctx, username)
	switch {
	case err == nil:
		return nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return err
	}

	return users.Create(ctx, &models.User{
		Username: username,
		Password: cfg.AuthorPassword,
	})
}
