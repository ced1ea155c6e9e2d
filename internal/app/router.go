// Package app provides router configuration.
package app

import (
	"context"
	"time"

	"github.com/guttosm/rate-service/config"
	"github.com/guttosm/rate-service/internal/http"
	"github.com/guttosm/rate-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// mongoChecker adapts the MongoDB ping to the health checker interface.
type mongoChecker struct {
	components *DatabaseComponents
}

func (m mongoChecker) Check() error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return m.components.DB.HealthCheck(ctx)
}

// InitializeRouter initializes HTTP handlers and router configuration.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	cfg config.Config,
) *RouterComponents {
	// Initialize shipping options service
	var optionsService service.ShippingOptionsService
	if dbComponents != nil && dbComponents.OptionsRepo != nil {
		optionsService = service.NewShippingOptionsService(dbComponents.OptionsRepo)
	}

	handler := http.NewHandler(services.Calculator, optionsService, services.RateCache)
	healthHandler := http.NewHealthHandler()

	// Register database health and circuit breakers for monitoring
	if dbComponents != nil {
		healthHandler.RegisterChecker("mongodb", mongoChecker{components: dbComponents})
		if dbComponents.OptionsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_shipping_options", dbComponents.OptionsCircuitBreaker)
		}
		if dbComponents.QuoteLogCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_quote_logs", dbComponents.QuoteLogCircuitBreaker)
		}
	}

	routerCfg := http.RouterConfig{
		RateLimit:      cfg.Server.RateLimit,
		RateWindow:     cfg.Server.RateWindow,
		EnableAuth:     cfg.Auth.Enabled,
		APIKeys:        cfg.Auth.APIKeys,
		CORSOrigins:    cfg.Server.CORSOrigins,
		SwaggerUser:    cfg.Server.SwaggerUser,
		SwaggerPass:    cfg.Server.SwaggerPass,
		Calculator:     services.Calculator,
		OptionsService: optionsService,
		RateCache:      services.RateCache,
	}

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}
