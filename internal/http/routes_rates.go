package http

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/rate-service/internal/ratecache"
	"github.com/guttosm/rate-service/internal/service"
)

// RateRoutes handles rate-related route registration.
type RateRoutes struct {
	handler        *Handler
	optionsHandler *OptionsHandler
}

// NewRateRoutes creates a new RateRoutes instance.
func NewRateRoutes(calculator service.RateCalculator, optionsService service.ShippingOptionsService, rateCache ratecache.Store) *RateRoutes {
	handler := NewHandler(calculator, optionsService, rateCache)

	var optionsHandler *OptionsHandler
	if optionsService != nil {
		optionsHandler = NewOptionsHandler(optionsService, handler)
	}

	return &RateRoutes{
		handler:        handler,
		optionsHandler: optionsHandler,
	}
}

// RegisterPublicRoutes registers the rate routes on the API group.
func (r *RateRoutes) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/rates/calculate", r.handler.CalculateRates)

	if r.optionsHandler != nil {
		rg.GET("/options", r.optionsHandler.ListOptions)
		rg.POST("/options", r.optionsHandler.CreateOption)
		// Parameter menus live outside /options; a static "parameters"
		// segment would conflict with the :id wildcard.
		rg.GET("/parameters/:name", r.optionsHandler.GetParameterOptions)
		rg.GET("/options/:id", r.optionsHandler.GetOption)
		rg.PUT("/options/:id", r.optionsHandler.UpdateOption)
		rg.DELETE("/options/:id", r.optionsHandler.DeleteOption)
	}
}

// GetHandler returns the underlying rates handler.
func (r *RateRoutes) GetHandler() *Handler {
	return r.handler
}
