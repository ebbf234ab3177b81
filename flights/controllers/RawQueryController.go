package controllers

import (
	"flight-search-backend/flights/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type rawQueryRequest struct {
	Kind   string                 `json:"kind"`
	Params map[string]interface{} `json:"params"`
}

// RawQueryController accepts a (kind, params) pair and runs it through the
// query builder. This is the one place unknown kind names can arrive.
func (fc *FlightController) RawQueryController(c *fiber.Ctx) error {
	var req rawQueryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorRecord{
			Error: "invalid request body",
		})
	}

	results, err := fc.Builder.ExecuteRaw(c.UserContext(), req.Kind, req.Params)
	if err != nil {
		fc.Logger.Error("Raw query failed", zap.String("kind", req.Kind), zap.Error(err))
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorRecord{Error: err.Error()})
	}

	return c.Status(fiber.StatusOK).JSON(results)
}
