package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/planora/planora-backend/internal/models"
	"github.com/planora/planora-backend/internal/repository"
	"github.com/planora/planora-backend/pkg/token"
)

// UserKey is the locals key holding the authenticated *models.User.
const UserKey = "user"

// Authenticate resolves the bearer token to a live user. A token whose user
// id no longer exists in the store is rejected like any other bad token.
func Authenticate(tokens *token.Manager, users repository.UserRepository) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(models.Message("No token, authorization denied"))
		}
		if !strings.HasPrefix(authHeader, "Bearer ") {
			return c.Status(fiber.StatusUnauthorized).JSON(models.Message("No token, authorization denied"))
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := tokens.Validate(tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.Message("Token is not valid"))
		}

		user, err := users.GetByID(claims.UserID)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(models.Message("Token is not valid"))
		}

		c.Locals(UserKey, user)
		return c.Next()
	}
}

// RequireRole gates a route to one role. Must run after Authenticate.
func RequireRole(role models.Role) fiber.Handler {
	return func(c *fiber.Ctx) error {
		user := CurrentUser(c)
		if user == nil || user.Role != role {
			return c.Status(fiber.StatusForbidden).JSON(models.Message("Not authorized"))
		}
		return c.Next()
	}
}

// CurrentUser returns the authenticated user, or nil on public routes.
func CurrentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(UserKey).(*models.User)
	return user
}
