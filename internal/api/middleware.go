package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/herhealth/internal/models"
)

const (
	authCookieName = "herhealth_auth"
	contextUserKey = "current_user"
)

func currentUser(c *fiber.Ctx) (*models.User, bool) {
	user, ok := c.Locals(contextUserKey).(*models.User)
	return user, ok
}

func (handler *Handler) AuthRequired(c *fiber.Ctx) error {
	user, err := handler.authenticateRequest(c)
	if err != nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	c.Locals(contextUserKey, user)
	if user.MustChangePassword && c.Path() != "/api/auth/logout" {
		return apiError(c, fiber.StatusForbidden, "password change required")
	}
	return c.Next()
}
