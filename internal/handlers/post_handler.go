package handlers

import (
	"lifefit/internal/middleware"
	"lifefit/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// PostHandler handles HTTP requests for posts and comments.
type PostHandler struct {
	service  *services.PostService
	validate *validator.Validate
	log      *zap.Logger
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(service *services.PostService, log *zap.Logger) *PostHandler {
	return &PostHandler{
		service:  service,
		validate: validator.New(),
		log:      log,
	}
}

// CreatePostRequest is the body of POST /posts.
type CreatePostRequest struct {
	Title   string `json:"title" validate:"required,max=200"`
	Content string `json:"content" validate:"required"`
}

// CreateCommentRequest is the body of POST /posts/:id/comments.
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,max=1000"`
}

// RegisterRoutes registers the post routes with the Fiber app.
func (h *PostHandler) RegisterRoutes(router fiber.Router) {
	postRoutes := router.Group("/posts")
	postRoutes.Get("/", h.HandleListMyPosts)
	postRoutes.Post("/", h.HandleCreatePost)
	postRoutes.Get("/:id", h.HandleGetPost)
	postRoutes.Get("/:id/comments", h.HandleListComments)
	postRoutes.Post("/:id/comments", h.HandleCreateComment)
}

// HandleListMyPosts lists the caller's posts.
func (h *PostHandler) HandleListMyPosts(c *fiber.Ctx) error {
	posts, err := h.service.ListPostsByWriter(c.UserContext(), middleware.AccountID(c))
	if err != nil {
		return respondError(c, h.log, "Could not retrieve posts", err)
	}
	return c.JSON(posts)
}

// HandleCreatePost creates a post written by the caller.
func (h *PostHandler) HandleCreatePost(c *fiber.Ctx) error {
	var req CreatePostRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}

	post, err := h.service.CreatePost(c.UserContext(), middleware.AccountID(c), req.Title, req.Content)
	if err != nil {
		return respondError(c, h.log, "Could not create post", err)
	}
	return c.Status(fiber.StatusCreated).JSON(post)
}

// HandleGetPost retrieves a single post by its ID.
func (h *PostHandler) HandleGetPost(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid post ID",
			"error":   err.Error(),
		})
	}

	post, err := h.service.GetPost(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, "Could not retrieve post", err)
	}
	return c.JSON(post)
}

// HandleListComments lists the comments on a post.
func (h *PostHandler) HandleListComments(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid post ID",
			"error":   err.Error(),
		})
	}

	comments, err := h.service.ListComments(c.UserContext(), id)
	if err != nil {
		return respondError(c, h.log, "Could not retrieve comments", err)
	}
	return c.JSON(comments)
}

// HandleCreateComment adds a comment by the caller to a post.
func (h *PostHandler) HandleCreateComment(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid post ID",
			"error":   err.Error(),
		})
	}

	var req CreateCommentRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}

	comment, err := h.service.AddComment(c.UserContext(), id, middleware.AccountID(c), req.Content)
	if err != nil {
		return respondError(c, h.log, "Could not create comment", err)
	}
	return c.Status(fiber.StatusCreated).JSON(comment)
}
