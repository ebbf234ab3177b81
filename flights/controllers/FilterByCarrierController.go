package controllers

import (
	"flight-search-backend/flights/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (fc *FlightController) FilterByCarrierController(c *fiber.Ctx) error {
	carrier := c.Query("carrier")
	if carrier == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorRecord{
			Error: "carrier is required",
		})
	}

	size, err := sizeParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorRecord{
			Error: "size must be an integer",
		})
	}

	results, err := fc.Queries.FilterByCarrier(c.UserContext(), carrier, size)
	if err != nil {
		fc.Logger.Error("Failed to filter by carrier", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorRecord{Error: err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(results)
}
