package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
	"github.com/terraincognita07/herhealth/internal/services"
)

func (handler *Handler) CreateCycle(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := cycleInput{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	cycle, predicted, err := handler.cycleService.LogCycle(user.ID, services.CycleInput{
		StartDate:  payload.StartDate,
		EndDate:    payload.EndDate,
		MoodSwings: payload.MoodSwings,
		Weight:     payload.Weight,
		Height:     payload.Height,
	})
	if err != nil {
		if isCycleInputError(err) {
			return apiError(c, fiber.StatusBadRequest, err.Error())
		}
		handler.log.WithError(err).WithField("user_id", user.ID).Error("log cycle failed")
		return apiError(c, fiber.StatusInternalServerError, "failed to save cycle")
	}

	handler.log.WithFields(logrus.Fields{
		"user_id":            user.ID,
		"cycle_id":           cycle.ID,
		"prediction_created": predicted,
	}).Info("cycle logged")

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"cycle":              cycle,
		"prediction_created": predicted,
	})
}

func (handler *Handler) ListCycles(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	cycles, err := handler.cycleService.History(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load cycles")
	}
	return c.JSON(fiber.Map{"cycles": cycles})
}

func isCycleInputError(err error) bool {
	return errors.Is(err, services.ErrCycleDateRequired) ||
		errors.Is(err, services.ErrInvalidCycleDate) ||
		errors.Is(err, services.ErrInvalidCycleRange) ||
		errors.Is(err, services.ErrInvalidMeasure)
}
