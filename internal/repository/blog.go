package repository

import (
	"context"

	"folio/internal/models"

	"gorm.io/gorm"
)

// BlogRepository defines the interface for blog post operations.
type BlogRepository interface {
	Create(ctx context.Context, post *models.BlogPost) error
	GetByID(ctx context.Context, id string) (*models.BlogPost, error)
	GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error)
	List(ctx context.Context, publishedOnly bool) ([]*models.BlogPost, error)
}

type blogRepository struct {
	db *gorm.DB
}

// NewBlogRepository creates a new BlogRepository
func NewBlogRepository(db *gorm.DB) BlogRepository {
	return &blogRepository{db: db}
}

// Create persists a new post, defaulting published to "false" when absent.
// A slug collision surfaces as gorm.ErrDuplicatedKey.
func (r *blogRepository) Create(ctx context.Context, post *models.BlogPost) error {
	if post.Published == "" {
		post.Published = "false"
	}
	return r.db.WithContext(ctx).Create(post).Error
}

func (r *blogRepository) GetByID(ctx context.Context, id string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *blogRepository) GetBySlug(ctx context.Context, slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// List returns posts, most recently created first. When publishedOnly is set,
// drafts (published != "true") are excluded.
func (r *blogRepository) List(ctx context.Context, publishedOnly bool) ([]*models.BlogPost, error) {
	query := r.db.WithContext(ctx).Order("created_at desc")
	if publishedOnly {
		query = query.Where("published = ?", "true")
	}

	posts := make([]*models.BlogPost, 0)
	err := query.Find(&posts).Error
	return posts, err
}
