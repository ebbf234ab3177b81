package controllers

import (
	"flight-search-backend/flights/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (fc *FlightController) SearchByOriginCityController(c *fiber.Ctx) error {
	city := c.Query("city")
	if city == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorRecord{
			Error: "city is required",
		})
	}

	size, err := sizeParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorRecord{
			Error: "size must be an integer",
		})
	}

	results, err := fc.Queries.SearchByOriginCity(c.UserContext(), city, size)
	if err != nil {
		fc.Logger.Error("Failed to search by origin city", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorRecord{Error: err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(results)
}
