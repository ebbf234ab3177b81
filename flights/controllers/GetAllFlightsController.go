package controllers

import (
	"flight-search-backend/flights/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (fc *FlightController) GetAllFlightsController(c *fiber.Ctx) error {
	size, err := sizeParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorRecord{
			Error: "size must be an integer",
		})
	}

	results, err := fc.Queries.GetAllFlights(c.UserContext(), size)
	if err != nil {
		fc.Logger.Error("Failed to fetch flights", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorRecord{Error: err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(results)
}
