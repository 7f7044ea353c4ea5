package handlers

import (
	"fmt"
	"strconv"

	"lifefit/internal/middleware"
	"lifefit/internal/models"
	"lifefit/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// AccountHandler handles HTTP requests for account profiles. Every route
// expects middleware.AuthRequired in front of it.
type AccountHandler struct {
	service  *services.AccountService
	validate *validator.Validate
	log      *zap.Logger
}

// NewAccountHandler creates a new AccountHandler.
func NewAccountHandler(service *services.AccountService, log *zap.Logger) *AccountHandler {
	return &AccountHandler{
		service:  service,
		validate: validator.New(),
		log:      log,
	}
}

// RegisterRoutes registers the account routes with the Fiber app.
func (h *AccountHandler) RegisterRoutes(router fiber.Router) {
	accountRoutes := router.Group("/accounts")
	accountRoutes.Get("/me", h.HandleGetMe)
	accountRoutes.Put("/me", h.HandleUpdateMe)
	accountRoutes.Delete("/me", h.HandleDeleteMe)
	accountRoutes.Get("/me/favorites", h.HandleGetFavorites)
	accountRoutes.Get("/me/admin", h.HandleIsAdmin)
	accountRoutes.Get("/social/:socialId", h.HandleGetBySocialID)
	accountRoutes.Delete("/:id", h.HandleDeleteAccount)
}

// HandleGetMe returns the caller's profile. The caller is identified by the
// token's account ID; the email claim goes stale after an email change.
func (h *AccountHandler) HandleGetMe(c *fiber.Ctx) error {
	profile, err := h.service.GetProfileByID(c.UserContext(), middleware.AccountID(c))
	if err != nil {
		return respondError(c, h.log, "Could not retrieve profile", err)
	}
	return c.JSON(profile)
}

// HandleUpdateMe overwrites the caller's profile, resolved by account ID.
func (h *AccountHandler) HandleUpdateMe(c *fiber.Ctx) error {
	var req models.UpdateRequest
	if ok, err := parseAndValidate(c, h.validate, &req); !ok {
		return err
	}

	profile, err := h.service.UpdateProfileByID(c.UserContext(), middleware.AccountID(c), req)
	if err != nil {
		return respondError(c, h.log, "Could not update profile", err)
	}
	return c.JSON(profile)
}

// HandleDeleteMe deletes the caller's account and everything it owns.
func (h *AccountHandler) HandleDeleteMe(c *fiber.Ctx) error {
	id := middleware.AccountID(c)
	if err := h.service.DeleteAccount(c.UserContext(), id); err != nil {
		return respondError(c, h.log, "Could not delete account", err)
	}
	return c.JSON(fiber.Map{
		"message": "Account deleted successfully",
	})
}

// HandleGetFavorites returns the caller's favorites.
func (h *AccountHandler) HandleGetFavorites(c *fiber.Ctx) error {
	return c.JSON(h.service.GetFavorites(middleware.AccountID(c)))
}

// HandleIsAdmin reports whether the caller is the administrator.
func (h *AccountHandler) HandleIsAdmin(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"admin": h.service.IsAdmin(middleware.AccountID(c)),
	})
}

// HandleGetBySocialID returns the profile linked to a social-login identifier.
func (h *AccountHandler) HandleGetBySocialID(c *fiber.Ctx) error {
	socialID, err := strconv.ParseInt(c.Params("socialId"), 10, 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid social ID",
			"error":   err.Error(),
		})
	}

	profile, err := h.service.GetProfileBySocialID(c.UserContext(), socialID)
	if err != nil {
		return respondError(c, h.log, "Could not retrieve profile", err)
	}
	return c.JSON(profile)
}

// HandleDeleteAccount lets the administrator delete any account.
func (h *AccountHandler) HandleDeleteAccount(c *fiber.Ctx) error {
	if !h.service.IsAdmin(middleware.AccountID(c)) {
		return respondError(c, h.log, "Only the administrator can delete other accounts", services.ErrForbidden)
	}

	id, err := parseID(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid account ID",
			"error":   err.Error(),
		})
	}

	if err := h.service.DeleteAccount(c.UserContext(), id); err != nil {
		return respondError(c, h.log, "Could not delete account", err)
	}
	return c.JSON(fiber.Map{
		"message": fmt.Sprintf("Account %d deleted successfully", id),
	})
}

func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(param), 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("%q is not a valid ID", c.Params(param))
	}
	return uint(id), nil
}
