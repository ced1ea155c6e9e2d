// Package main is the entry point for the rate-service application.
//
// @title           Rate Service API
// @version         1.0.0
// @description     API for quoting shipping rates across configured carrier options.
//
//	This service splits order lines into physical packages and rates them against UPS.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/rate-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @tag.name        Rates
// @tag.description Shipping rate calculation operations
//
// @tag.name        Shipping Options
// @tag.description Shipping option configuration endpoints
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	_ "github.com/guttosm/rate-service/docs" // swagger docs

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/rate-service/config"
	"github.com/guttosm/rate-service/internal/app"
)

func main() {
	// Load .env if present; real deployments use environment variables.
	_ = godotenv.Load()

	cfg := config.Load()

	router, cleanup := app.InitializeApp(cfg)
	defer cleanup()

	server := app.NewServer(router, cfg.Server.Port)

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
