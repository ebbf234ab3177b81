package controllers

import (
	"strconv"

	"flight-search-backend/flights/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func (fc *FlightController) FilterByPriceRangeController(c *fiber.Ctx) error {
	minPrice, err := strconv.ParseFloat(c.Query("min"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorRecord{
			Error: "min must be a number",
		})
	}

	maxPrice, err := strconv.ParseFloat(c.Query("max"), 64)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorRecord{
			Error: "max must be a number",
		})
	}

	size, err := sizeParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorRecord{
			Error: "size must be an integer",
		})
	}

	results, err := fc.Queries.FilterByPriceRange(c.UserContext(), minPrice, maxPrice, size)
	if err != nil {
		fc.Logger.Error("Failed to filter by price range", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorRecord{Error: err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(results)
}
