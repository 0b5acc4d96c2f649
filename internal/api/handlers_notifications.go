package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/herhealth/internal/services"
)

func (handler *Handler) DismissNotification(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	notificationID, ok := parseIDParam(c, "id")
	if !ok {
		return apiError(c, fiber.StatusBadRequest, "invalid notification id")
	}

	err := handler.notificationService.Dismiss(user.ID, notificationID)
	switch {
	case errors.Is(err, services.ErrNotificationNotFound):
		return apiError(c, fiber.StatusNotFound, "notification not found")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to dismiss notification")
	}
	return c.JSON(fiber.Map{"ok": true})
}
