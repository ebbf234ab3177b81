package controllers

import (
	"strconv"

	"flight-search-backend/flights/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

const defaultMinDelay = 40

// DelayAnalysisController reports the average delay over flights delayed by
// at least min_delay minutes (query parameter, default 40).
func (fc *FlightController) DelayAnalysisController(c *fiber.Ctx) error {
	minDelay := defaultMinDelay
	if raw := c.Query("min_delay"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(models.ErrorRecord{
				Error: "min_delay must be an integer",
			})
		}
		minDelay = parsed
	}

	results, err := fc.Queries.DelayedFlightAnalysis(c.UserContext(), minDelay)
	if err != nil {
		fc.Logger.Error("Delay analysis failed", zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorRecord{Error: err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(results)
}
