package http

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/rate-service/internal/domain/dto"
	"github.com/guttosm/rate-service/internal/domain/model"
	"github.com/guttosm/rate-service/internal/i18n"
	"github.com/guttosm/rate-service/internal/metrics"
	"github.com/guttosm/rate-service/internal/middleware"
	"github.com/guttosm/rate-service/internal/ratecache"
	"github.com/guttosm/rate-service/internal/service"
)

// optionCache provides thread-safe caching of resolved shipping
// options, keyed by option id. Configuration changes show up after at
// most the cache TTL.
type optionCache struct {
	mu      sync.RWMutex
	entries map[string]optionCacheEntry
	ttl     time.Duration
}

type optionCacheEntry struct {
	option    model.ShippingOption
	expiresAt time.Time
}

// newOptionCache creates a new option cache with the given TTL.
func newOptionCache(ttl time.Duration) *optionCache {
	return &optionCache{
		entries: make(map[string]optionCacheEntry),
		ttl:     ttl,
	}
}

// get returns the cached option if present and fresh.
func (c *optionCache) get(optionID string) (model.ShippingOption, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[optionID]
	if !ok || time.Now().After(entry.expiresAt) {
		return model.ShippingOption{}, false
	}
	return entry.option, true
}

// set stores an option in the cache with TTL.
func (c *optionCache) set(opt model.ShippingOption) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[opt.ID] = optionCacheEntry{
		option:    opt,
		expiresAt: time.Now().Add(c.ttl),
	}
}

// invalidate clears the cache.
func (c *optionCache) invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]optionCacheEntry)
}

// Handler provides HTTP handlers for rate calculation routes.
type Handler struct {
	calculator     service.RateCalculator
	optionsService service.ShippingOptionsService
	rateCache      ratecache.Store
	optionCache    *optionCache
}

// HandlerOption configures a Handler.
type HandlerOption func(*Handler)

// WithOptionCacheTTL sets the TTL for shipping option caching.
func WithOptionCacheTTL(ttl time.Duration) HandlerOption {
	return func(h *Handler) {
		h.optionCache = newOptionCache(ttl)
	}
}

// NewHandler creates a new Handler instance.
func NewHandler(calculator service.RateCalculator, optionsService service.ShippingOptionsService, rateCache ratecache.Store, opts ...HandlerOption) *Handler {
	h := &Handler{
		calculator:     calculator,
		optionsService: optionsService,
		rateCache:      rateCache,
		optionCache:    newOptionCache(30 * time.Second),
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

// resolveOption retrieves a shipping option from cache or database.
func (h *Handler) resolveOption(ctx context.Context, optionID string) (model.ShippingOption, error) {
	if opt, ok := h.optionCache.get(optionID); ok {
		return opt, nil
	}

	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	opt, err := h.optionsService.GetOption(ctx, optionID)
	if err != nil {
		return model.ShippingOption{}, err
	}

	h.optionCache.set(opt)
	return opt, nil
}

// InvalidateOptionCache invalidates the shipping option cache.
// Call this when options are updated.
func (h *Handler) InvalidateOptionCache() {
	h.optionCache.invalidate()
}

// CalculateRates handles POST /api/rates/calculate requests.
//
// One request is one calculation cycle: each listed shipping option is
// quoted at most once against the carrier, and unchanged requests are
// served from the session rate cache.
//
// @Summary      Calculate shipping fees for an order
// @Description  Quotes every listed shipping option for the order. Rates are cached per buyer session; a repeated request with an unchanged order replays the cached outcome instead of calling the carrier again. Validation and carrier failures are reported per option, never as a request failure.
// @Tags         Rates
// @Accept       json
// @Produce      json
// @Param        request body dto.CalculateRateRequest true "Order and shipping options to quote"
// @Success      200 {object} dto.SuccessResponse "Per-option rating results"
// @Failure      400 {object} dto.ErrorResponse "Bad request - invalid input"
// @Param        X-API-Key header string false "API key (required if auth enabled)"
// @Failure      401 {object} dto.ErrorResponse "Unauthorized - missing or invalid API key"
// @Failure      429 {object} dto.ErrorResponse "Too many requests - rate limit exceeded"
// @Failure      500 {object} dto.ErrorResponse "Internal server error"
// @Router       /api/rates/calculate [post]
func (h *Handler) CalculateRates(c *gin.Context) {
	builder := NewResponseBuilder(c)

	req, err := BuildRequestAndValidate[dto.CalculateRateRequest](c)
	if err != nil {
		if _, ok := err.(*dto.ValidationError); ok {
			metrics.RecordRateCalculation(0, "validation_error")
			builder.Error(http.StatusBadRequest, i18n.ErrKeyValidationRateRequest, err)
		} else {
			builder.Error(http.StatusBadRequest, i18n.ErrKeyInvalidRequestBody, err)
		}
		return
	}

	ctx := c.Request.Context()
	session := h.rateCache.Session(req.Order.SessionID)
	cycle := ratecache.NewCycle()
	requestID := middleware.GetRequestID(c)

	results := make([]dto.OptionRateResult, 0, len(req.OptionIDs))
	for _, optionID := range req.OptionIDs {
		opt, err := h.resolveOption(ctx, optionID)
		if err != nil {
			msg := i18n.GetTranslator().Translate(i18n.ErrKeyOptionNotFound, i18n.GetLocale(c))
			if err != service.ErrOptionNotFound {
				_ = c.Error(err)
				msg = err.Error()
			}
			results = append(results, dto.OptionRateResult{
				OptionID: optionID,
				Errors:   []string{msg},
			})
			continue
		}

		price := h.calculator.CalculateFee(service.WithRequestID(ctx, requestID), &req.Order, opt, session, cycle)

		// The order's message lists are reset per option, so copy them
		// into the result before the next iteration.
		results = append(results, dto.OptionRateResult{
			OptionID: opt.ID,
			Name:     opt.Name,
			Price:    price,
			Warnings: append([]string(nil), req.Order.ProviderWarnings...),
			Errors:   append([]string(nil), req.Order.ProviderErrors...),
		})
	}

	builder.SuccessOK(dto.CalculateRateResponse{
		SessionID: req.Order.SessionID,
		Results:   results,
	})
}
