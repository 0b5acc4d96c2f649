package api

import "github.com/gofiber/fiber/v2"

func (handler *Handler) GetDashboard(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	dashboard, err := handler.dashboardService.Build(user.ID, handler.now(), handler.location)
	if err != nil {
		handler.log.WithError(err).WithField("user_id", user.ID).Error("build dashboard failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to load dashboard")
	}
	return c.JSON(dashboard)
}
