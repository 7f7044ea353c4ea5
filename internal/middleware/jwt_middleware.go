package middleware

import (
	"strings"

	"lifefit/internal/services"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// LocalAccountID is the fiber locals key under which AuthRequired stores the
// caller's account ID.
const LocalAccountID = "account_id"

// TokenValidator validates bearer tokens.
type TokenValidator interface {
	ValidateToken(tokenString string) (*services.TokenClaims, error)
}

// AuthRequired is a Fiber middleware to check for a valid JWT token.
func AuthRequired(validator TokenValidator, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header is required",
			})
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if !(len(parts) == 2 && parts[0] == "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Authorization header format must be 'Bearer <token>'",
			})
		}

		claims, err := validator.ValidateToken(parts[1])
		if err != nil {
			log.Debug("JWT validation failed", zap.Error(err))
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"message": "Invalid or expired token",
				"error":   err.Error(),
			})
		}

		c.Locals(LocalAccountID, claims.AccountID)

		return c.Next()
	}
}

// AccountID returns the authenticated account ID stored by AuthRequired.
func AccountID(c *fiber.Ctx) uint {
	id, _ := c.Locals(LocalAccountID).(uint)
	return id
}
