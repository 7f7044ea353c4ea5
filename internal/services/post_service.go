package services

import (
	"context"
	"errors"
	"fmt"

	"lifefit/internal/models"
	"lifefit/internal/repositories"

	"go.uber.org/zap"
)

// PostService handles business logic related to posts and their comments.
type PostService struct {
	store repositories.Store
	log   *zap.Logger
}

// NewPostService creates a new PostService.
func NewPostService(store repositories.Store, log *zap.Logger) *PostService {
	return &PostService{
		store: store,
		log:   log,
	}
}

// CreatePost stores a new post written by writerID.
func (s *PostService) CreatePost(ctx context.Context, writerID uint, title, content string) (*models.Post, error) {
	post := &models.Post{WriterID: writerID, Title: title, Content: content}
	if err := s.store.Posts().Create(ctx, post); err != nil {
		return nil, err
	}
	s.log.Debug("post created", zap.Uint("post_id", post.ID), zap.Uint("writer_id", writerID))
	return post, nil
}

// GetPost retrieves a single post by its ID.
func (s *PostService) GetPost(ctx context.Context, id uint) (*models.Post, error) {
	post, err := s.store.Posts().FindByID(ctx, id)
	if err != nil {
		return nil, postLookupError(err)
	}
	return post, nil
}

// ListPostsByWriter retrieves the posts written by an account.
func (s *PostService) ListPostsByWriter(ctx context.Context, writerID uint) ([]models.Post, error) {
	posts, err := s.store.Posts().ListByWriterID(ctx, writerID)
	if err != nil {
		return nil, err
	}
	if posts == nil {
		posts = []models.Post{}
	}
	return posts, nil
}

// AddComment attaches a comment by writerID to an existing post.
func (s *PostService) AddComment(ctx context.Context, postID, writerID uint, content string) (*models.Comment, error) {
	if _, err := s.GetPost(ctx, postID); err != nil {
		return nil, err
	}
	comment := &models.Comment{PostID: postID, WriterID: writerID, Content: content}
	if err := s.store.Comments().Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// ListComments retrieves the comments on an existing post.
func (s *PostService) ListComments(ctx context.Context, postID uint) ([]models.Comment, error) {
	if _, err := s.GetPost(ctx, postID); err != nil {
		return nil, err
	}
	comments, err := s.store.Comments().ListByPostID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if comments == nil {
		comments = []models.Comment{}
	}
	return comments, nil
}

func postLookupError(err error) error {
	if errors.Is(err, repositories.ErrNotFound) {
		return fmt.Errorf("%w: %v", ErrPostNotFound, err)
	}
	return err
}
