package repository

import (
	"context"

	"folio/internal/models"

	"gorm.io/gorm"
)

// ContactRepository defines the interface for contact message operations.
// Messages are append-only: there is no update or delete path.
type ContactRepository interface {
	Create(ctx context.Context, message *models.ContactMessage) error
	List(ctx context.Context) ([]*models.ContactMessage, error)
}

type contactRepository struct {
	db *gorm.DB
}

// NewContactRepository creates a new ContactRepository
func NewContactRepository(db *gorm.DB) ContactRepository {
	return &contactRepository{db: db}
}

func (r *contactRepository) Create(ctx context.Context, message *models.ContactMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

// List returns all messages, most recently created first.
func (r *contactRepository) List(ctx context.Context) ([]*models.ContactMessage, error) {
	messages := make([]*models.ContactMessage, 0)
	err := r.db.WithContext(ctx).Order("created_at desc").Find(&messages).Error
	return messages, err
}
