package repositories

import (
	"context"
	"errors"
	"fmt"

	"lifefit/internal/models"

	"gorm.io/gorm"
)

// GORMPostRepository is a GORM implementation of PostRepository.
type GORMPostRepository struct {
	db *gorm.DB
}

// NewGORMPostRepository creates a new instance of GORMPostRepository.
func NewGORMPostRepository(db *gorm.DB) *GORMPostRepository {
	return &GORMPostRepository{
		db: db,
	}
}

// Create creates a new post in the database.
func (r *GORMPostRepository) Create(ctx context.Context, post *models.Post) error {
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("failed to create post: %w", err)
	}
	return nil
}

// FindByID retrieves a single post by its ID.
func (r *GORMPostRepository) FindByID(ctx context.Context, id uint) (*models.Post, error) {
	var post models.Post
	if err := r.db.WithContext(ctx).First(&post, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("post with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get post by ID %d: %w", id, err)
	}
	return &post, nil
}

// ListByWriterID returns the posts written by an account, oldest first.
func (r *GORMPostRepository) ListByWriterID(ctx context.Context, writerID uint) ([]models.Post, error) {
	var posts []models.Post
	if err := r.db.WithContext(ctx).Where("writer_id = ?", writerID).Order("id").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("failed to list posts of writer %d: %w", writerID, err)
	}
	return posts, nil
}

// DeleteByWriterID deletes every post written by an account.
func (r *GORMPostRepository) DeleteByWriterID(ctx context.Context, writerID uint) (int64, error) {
	res := r.db.WithContext(ctx).Where("writer_id = ?", writerID).Delete(&models.Post{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete posts of writer %d: %w", writerID, res.Error)
	}
	return res.RowsAffected, nil
}
