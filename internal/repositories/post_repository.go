package repositories

import (
	"context"

	"lifefit/internal/models"
)

// PostRepository defines the interface for post data access.
type PostRepository interface {
	Create(ctx context.Context, post *models.Post) error
	FindByID(ctx context.Context, id uint) (*models.Post, error)
	ListByWriterID(ctx context.Context, writerID uint) ([]models.Post, error)
	DeleteByWriterID(ctx context.Context, writerID uint) (int64, error)
}
