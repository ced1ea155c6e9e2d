package service

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/guttosm/rate-service/internal/domain/model"
	"github.com/guttosm/rate-service/internal/metrics"
	"github.com/guttosm/rate-service/internal/ratecache"
)

// Validation messages appended to the order as provider errors.
const (
	ErrMsgEmptyZip      = "ZipCode field is empty."
	ErrMsgCountryNotUSA = "Only USA country is allowed for delivering."
	allowedCountry      = "US"
	defaultQuoteTimeout = 30 * time.Second
)

// RequestBuilder serializes an order into the carrier's rating request
// payload. The payload doubles as the cache fingerprint, so it must be
// deterministic for identical input.
type RequestBuilder interface {
	Build(order *model.Order, packages []float64, opt model.ShippingOption) (string, error)
}

// RateProvider performs one rating call against the carrier.
type RateProvider interface {
	Quote(ctx context.Context, payload string) (model.CarrierQuote, error)
}

// QuoteRecorder persists quote audit records. Implementations must not
// block the calculation path.
type QuoteRecorder interface {
	Record(ctx context.Context, entry model.QuoteLog)
}

// RateCalculator computes the shipping fee for an order and shipping
// option.
type RateCalculator interface {
	// CalculateFee runs the full rating pipeline. It returns a price
	// only when the carrier produced a positive rate; every failure
	// mode is reported through the order's provider error list
	// instead of an error return.
	CalculateFee(ctx context.Context, order *model.Order, opt model.ShippingOption, session ratecache.Session, cycle *ratecache.Cycle) *model.Price
}

// RateOption configures a RateCalculatorService.
type RateOption func(*RateCalculatorService)

// RateCalculatorService implements RateCalculator on top of a request
// builder, a carrier provider, and the session rate cache.
type RateCalculatorService struct {
	builder  RequestBuilder
	provider RateProvider
	recorder QuoteRecorder
	timeout  time.Duration
}

// NewRateCalculatorService creates a RateCalculatorService.
func NewRateCalculatorService(builder RequestBuilder, provider RateProvider, opts ...RateOption) *RateCalculatorService {
	s := &RateCalculatorService{
		builder:  builder,
		provider: provider,
		timeout:  defaultQuoteTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WithQuoteTimeout overrides the per-call carrier timeout.
func WithQuoteTimeout(d time.Duration) RateOption {
	return func(s *RateCalculatorService) {
		if d > 0 {
			s.timeout = d
		}
	}
}

// WithQuoteRecorder enables quote audit logging.
func WithQuoteRecorder(r QuoteRecorder) RateOption {
	return func(s *RateCalculatorService) {
		s.recorder = r
	}
}

// CalculateFee implements RateCalculator.
func (s *RateCalculatorService) CalculateFee(ctx context.Context, order *model.Order, opt model.ShippingOption, session ratecache.Session, cycle *ratecache.Cycle) *model.Price {
	start := time.Now()

	order.ClearProviderMessages()

	var (
		payload   string
		entry     ratecache.Entry
		status    = "success"
		fromCache bool
	)

	if !s.validateDestination(order) {
		status = "invalid"
	} else {
		packages := SplitIntoPackages(order.Lines, opt.Packaging)

		built, err := s.builder.Build(order, packages, opt)
		switch {
		case err != nil:
			order.AddProviderErrors(err.Error())
			status = "error"
		default:
			payload = built
			if cached, ok := session.Lookup(ctx, opt.ID, payload); ok {
				metrics.RecordCacheOperation("lookup", "hit")
				entry = cached
				fromCache = true
				status = "cached"
				order.AddProviderWarnings(entry.Warnings...)
				order.AddProviderErrors(entry.Errors...)
			} else {
				metrics.RecordCacheOperation("lookup", "miss")
				// One carrier call per option per cycle. A changed
				// request after the first attempt waits for the next
				// cycle.
				if cycle.HasAttempted(opt.ID) {
					log.Debug().Str("option_id", opt.ID).Str("session_id", order.SessionID).
						Msg("carrier call suppressed, option already attempted this cycle")
					status = "suppressed"
				} else {
					entry = s.quote(ctx, opt, payload)
					order.AddProviderWarnings(entry.Warnings...)
					order.AddProviderErrors(entry.Errors...)
					if len(entry.Errors) > 0 {
						status = "error"
					}
				}
			}
		}
	}

	// The outcome is stored and the cycle marked on every path,
	// including validation failures and replays, so the cache always
	// reflects the most recent completed attempt.
	entry.Fingerprint = payload
	entry.Warnings = append([]string(nil), order.ProviderWarnings...)
	entry.Errors = append([]string(nil), order.ProviderErrors...)
	if entry.Currency == "" {
		entry.Currency = order.CurrencyCode
	}
	if err := session.Store(ctx, opt.ID, entry); err != nil {
		log.Warn().Err(err).Str("option_id", opt.ID).Msg("failed to store rate cache entry")
		metrics.RecordCacheOperation("store", "error")
	} else {
		metrics.RecordCacheOperation("store", "ok")
	}
	cycle.MarkAttempted(opt.ID)

	s.record(ctx, order, opt, payload, entry, fromCache, start)
	metrics.RecordRateCalculation(time.Since(start), status)
	return s.priceFrom(entry, order)
}

// validateDestination checks the destination fields, appending every
// failed check to the order's provider errors.
func (s *RateCalculatorService) validateDestination(order *model.Order) bool {
	if order.DestinationZip() == "" {
		order.AddProviderErrors(ErrMsgEmptyZip)
	}
	if order.DestinationCountry() != allowedCountry {
		order.AddProviderErrors(ErrMsgCountryNotUSA)
	}
	return len(order.ProviderErrors) == 0
}

// quote performs the carrier call and normalizes its outcome into a
// cache entry. Transport and carrier errors are folded into the entry's
// error list so they cache the same way successes do.
func (s *RateCalculatorService) quote(ctx context.Context, opt model.ShippingOption, payload string) ratecache.Entry {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	start := time.Now()
	result, err := s.provider.Quote(ctx, payload)
	elapsed := time.Since(start)

	entry := ratecache.Entry{
		Fingerprint: payload,
		Rate:        result.Rate,
		Currency:    result.Currency,
		Warnings:    result.Warnings,
	}
	if err != nil {
		entry.Errors = []string{err.Error()}
		log.Error().Err(err).Str("option_id", opt.ID).Dur("elapsed", elapsed).
			Msg("carrier rating request failed")
		metrics.RecordCarrierRequest(elapsed, "error")
		return entry
	}

	log.Info().Str("option_id", opt.ID).Float64("rate", result.Rate).
		Str("currency", result.Currency).Dur("elapsed", elapsed).
		Msg("carrier rating request completed")
	metrics.RecordCarrierRequest(elapsed, "success")
	return entry
}

// priceFrom converts a cache entry into a price. A non-positive rate
// yields no price.
func (s *RateCalculatorService) priceFrom(entry ratecache.Entry, order *model.Order) *model.Price {
	if entry.Rate <= 0 {
		return nil
	}
	currency := entry.Currency
	if currency == "" {
		currency = order.CurrencyCode
	}
	return &model.Price{Amount: entry.Rate, Currency: currency}
}

func (s *RateCalculatorService) record(ctx context.Context, order *model.Order, opt model.ShippingOption, payload string, entry ratecache.Entry, fromCache bool, start time.Time) {
	if s.recorder == nil {
		return
	}
	s.recorder.Record(ctx, model.QuoteLog{
		Timestamp:  time.Now().UTC(),
		RequestID:  RequestIDFromContext(ctx),
		SessionID:  order.SessionID,
		OptionID:   opt.ID,
		Payload:    payload,
		Rate:       entry.Rate,
		Currency:   entry.Currency,
		Warnings:   entry.Warnings,
		Errors:     entry.Errors,
		FromCache:  fromCache,
		DurationMS: time.Since(start).Milliseconds(),
	})
}
