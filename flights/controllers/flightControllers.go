package controllers

import (
	"strconv"

	"flight-search-backend/flights/repositories"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type FlightController struct {
	Queries *repositories.FlightQueries
	Builder *repositories.QueryBuilder
	Logger  *zap.Logger
}

func NewFlightController(queries *repositories.FlightQueries, builder *repositories.QueryBuilder, logger *zap.Logger) *FlightController {
	return &FlightController{
		Queries: queries,
		Builder: builder,
		Logger:  logger,
	}
}

// sizeParam reads the optional size query parameter, defaulting to 10.
func sizeParam(c *fiber.Ctx) (int, error) {
	raw := c.Query("size")
	if raw == "" {
		return 10, nil
	}
	return strconv.Atoi(raw)
}
