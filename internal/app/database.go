// Package app provides database initialization and setup.
package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/rate-service/config"
	"github.com/guttosm/rate-service/internal/circuitbreaker"
	"github.com/guttosm/rate-service/internal/repository"
	"github.com/guttosm/rate-service/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                     *repository.MongoDB
	OptionsRepo            repository.ShippingOptionsRepositoryInterface
	QuoteLogService        service.QuoteLogService
	OptionsCircuitBreaker  *circuitbreaker.CircuitBreaker
	QuoteLogCircuitBreaker *circuitbreaker.CircuitBreaker
}

// InitializeDatabase initializes MongoDB connection and creates required repositories and services.
// Returns nil if database is disabled or connection fails.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without database")
		return nil
	}

	log.Info().Msg("Connected to MongoDB")

	// Set TTL for quote audit logs
	ttlDays := int(cfg.QuoteLogsTTL.Hours() / 24)
	if err := db.SetQuoteLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set quote logs TTL index (may already exist)")
	}

	// Initialize circuit breakers
	optionsCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-shipping-options",
	})

	quoteLogCB := circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             "mongodb-quote-logs",
	})

	// Initialize repositories
	optionsRepo := repository.NewShippingOptionsRepository(db)
	optionsRepoWithCB := repository.NewShippingOptionsRepositoryWithCircuitBreaker(optionsRepo, optionsCB)

	quoteLogsRepo := repository.NewQuoteLogsRepository(db)
	quoteLogsRepoWithCB := repository.NewQuoteLogsRepositoryWithCircuitBreaker(quoteLogsRepo, quoteLogCB)
	quoteLogService := service.NewQuoteLogService(quoteLogsRepoWithCB)

	return &DatabaseComponents{
		DB:                     db,
		OptionsRepo:            optionsRepoWithCB,
		QuoteLogService:        quoteLogService,
		OptionsCircuitBreaker:  optionsCB,
		QuoteLogCircuitBreaker: quoteLogCB,
	}
}

// Shutdown closes the MongoDB connection.
func (d *DatabaseComponents) Shutdown() {
	if d.DB == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := d.DB.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to close MongoDB connection")
	}
}
