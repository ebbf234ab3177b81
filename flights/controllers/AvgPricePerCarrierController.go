package controllers

import (
	"flight-search-backend/flights/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (fc *FlightController) AvgPricePerCarrierController(c *fiber.Ctx) error {
	results, err := fc.Queries.AvgPricePerCarrier(c.UserContext())
	if err != nil {
		fc.Logger.Error("Failed to aggregate prices per carrier", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorRecord{Error: err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(results)
}
