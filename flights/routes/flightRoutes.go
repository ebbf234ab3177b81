package routes

import (
	controllers "flight-search-backend/flights/controllers"
	"flight-search-backend/flights/repositories"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func FlightInitRoutes(
	app *fiber.App,
	flightQueries *repositories.FlightQueries,
	queryBuilder *repositories.QueryBuilder,
	logger *zap.Logger,
) {
	flightController := controllers.NewFlightController(flightQueries, queryBuilder, logger)

	// Create API v1 group
	api := app.Group("/api/v1")

	api.Get("/flights", flightController.GetAllFlightsController)
	api.Get("/flights/by-carrier", flightController.FilterByCarrierController)
	api.Get("/flights/by-origin-city", flightController.SearchByOriginCityController)
	api.Get("/flights/price-range", flightController.FilterByPriceRangeController)
	api.Get("/flights/avg-price-per-carrier", flightController.AvgPricePerCarrierController)
	api.Get("/flights/delay-analysis", flightController.DelayAnalysisController)
	api.Post("/flights/query", flightController.RawQueryController)
}
