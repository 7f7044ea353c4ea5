package repositories

import (
	"context"
	"fmt"

	"lifefit/internal/models"

	"gorm.io/gorm"
)

// GORMCommentRepository is a GORM implementation of CommentRepository.
type GORMCommentRepository struct {
	db *gorm.DB
}

// NewGORMCommentRepository creates a new instance of GORMCommentRepository.
func NewGORMCommentRepository(db *gorm.DB) *GORMCommentRepository {
	return &GORMCommentRepository{
		db: db,
	}
}

// Create creates a new comment in the database.
func (r *GORMCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}
	return nil
}

// ListByPostID returns the comments on a post, oldest first.
func (r *GORMCommentRepository) ListByPostID(ctx context.Context, postID uint) ([]models.Comment, error) {
	return r.list(ctx, "post_id = ?", postID)
}

// ListByWriterID returns the comments written by an account, oldest first.
func (r *GORMCommentRepository) ListByWriterID(ctx context.Context, writerID uint) ([]models.Comment, error) {
	return r.list(ctx, "writer_id = ?", writerID)
}

func (r *GORMCommentRepository) list(ctx context.Context, query string, id uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := r.db.WithContext(ctx).Where(query, id).Order("id").Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// DeleteByWriterID deletes every comment written by an account.
func (r *GORMCommentRepository) DeleteByWriterID(ctx context.Context, writerID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("writer_id = ?", writerID).Delete(&models.Comment{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete comments of writer %d: %w", writerID, res.Error)
	}
	return res.RowsAffected, nil
}
