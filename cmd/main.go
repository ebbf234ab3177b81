package main

import (
	"context"

	"flight-search-backend/config"
	"flight-search-backend/middleware"

	flight_repositories "flight-search-backend/flights/repositories"
	flight_routes "flight-search-backend/flights/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Initialize Zap logger
	config.InitLogger()

	// Load environment variables
	if err := godotenv.Load(".env"); err != nil {
		config.Logger.Warn("No .env file found, relying on process environment")
	}

	app := fiber.New()

	// Apply CORS middleware from middleware package
	middleware.InitCors(app)

	ctx := context.Background()

	// Elasticsearch client: blocks until the cluster is reachable, then
	// provisions the flights index. Both fail hard at startup.
	esClient := config.InitElasticsearch()
	config.EnsureFlightsIndex(ctx, esClient)

	// Repositories
	queryBuilder := flight_repositories.NewQueryBuilder(esClient, config.FlightsIndexName, config.Logger)
	flightQueries := flight_repositories.NewFlightQueries(queryBuilder)

	// Routes
	flight_routes.FlightInitRoutes(app, flightQueries, queryBuilder, config.Logger)

	port := config.GetEnvOrDefault("PORT", "8080")
	config.Logger.Info("Starting server", zap.String("port", port))

	if err := app.Listen(":" + port); err != nil {
		config.Logger.Fatal("Server stopped", zap.Error(err))
	}
}
