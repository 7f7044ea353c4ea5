package repositories

import (
	"context"

	"lifefit/internal/models"
)

// CommentRepository defines the interface for comment data access.
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	ListByPostID(ctx context.Context, postID uint) ([]models.Comment, error)
	ListByWriterID(ctx context.Context, writerID uint) ([]models.Comment, error)
	DeleteByWriterID(ctx context.Context, writerID uint) (int64, error)
}
