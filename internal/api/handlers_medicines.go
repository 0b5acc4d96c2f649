package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/herhealth/internal/services"
)

func (handler *Handler) CreateMedicine(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	payload := medicineInput{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	medicine, err := handler.medicineService.LogMedicine(user.ID, services.MedicineInput{
		Name:    payload.Name,
		Dosage:  payload.Dosage,
		TakenOn: payload.TakenOn,
		Notes:   payload.Notes,
	}, handler.now(), handler.location)
	switch {
	case errors.Is(err, services.ErrMedicineNameRequired), errors.Is(err, services.ErrInvalidMedicineTakenOn):
		return apiError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrMedicineNeedsCycle):
		return apiError(c, fiber.StatusConflict, err.Error())
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "failed to save medicine")
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"medicine": medicine})
}

func (handler *Handler) ListMedicines(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	medicines, err := handler.medicineService.List(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to load medicines")
	}
	return c.JSON(fiber.Map{"medicines": medicines})
}
