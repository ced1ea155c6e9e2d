// Package app provides service initialization.
package app

import (
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	"github.com/guttosm/rate-service/config"
	"github.com/guttosm/rate-service/internal/carrier/ups"
	"github.com/guttosm/rate-service/internal/ratecache"
	"github.com/guttosm/rate-service/internal/service"
)

// ServiceComponents holds service-related components.
type ServiceComponents struct {
	Calculator service.RateCalculator
	RateCache  ratecache.Store

	recorder    *service.AsyncQuoteRecorder
	memoryStore *ratecache.MemoryStore
	redisClient *redis.Client
}

// InitializeServices initializes the carrier client, rate cache and calculator.
func InitializeServices(cfg config.Config, dbComponents *DatabaseComponents) *ServiceComponents {
	upsCfg := carrierConfig(cfg.Carrier)
	builder := ups.NewBuilder(upsCfg)
	client := ups.NewClient(upsCfg, nil)

	components := &ServiceComponents{}
	components.RateCache = components.initRateCache(cfg.Cache)

	opts := []service.RateOption{
		service.WithQuoteTimeout(cfg.Carrier.QuoteTimeout),
	}

	if dbComponents != nil && dbComponents.QuoteLogService != nil {
		recorder := service.NewAsyncQuoteRecorder(dbComponents.QuoteLogService, service.DefaultAsyncRecorderConfig())
		if recorder != nil {
			components.recorder = recorder
			opts = append(opts, service.WithQuoteRecorder(recorder))
		}
	}

	components.Calculator = service.NewRateCalculatorService(builder, client, opts...)
	return components
}

// initRateCache creates the per-session rate cache backend.
func (s *ServiceComponents) initRateCache(cfg config.CacheConfig) ratecache.Store {
	if cfg.Backend == "redis" {
		s.redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPass,
			DB:       cfg.RedisDB,
		})
		log.Info().Str("addr", cfg.RedisAddr).Msg("Using Redis rate cache")
		return ratecache.NewRedisStore(s.redisClient, cfg.SessionTTL)
	}

	s.memoryStore = ratecache.NewMemoryStore(cfg.SessionTTL)
	return s.memoryStore
}

// Shutdown stops background workers and closes cache resources.
func (s *ServiceComponents) Shutdown() {
	if s.recorder != nil {
		s.recorder.Stop()
	}
	if s.memoryStore != nil {
		s.memoryStore.Close()
	}
	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Warn().Err(err).Msg("Failed to close Redis client")
		}
	}
}

// carrierConfig maps the application carrier configuration to the UPS client configuration.
func carrierConfig(cfg config.CarrierConfig) ups.Config {
	return ups.Config{
		Endpoint:          cfg.Endpoint,
		AccessKey:         cfg.AccessKey,
		UserID:            cfg.UserID,
		Password:          cfg.Password,
		ShipperNumber:     cfg.ShipperNumber,
		CompanyName:       cfg.CompanyName,
		AttentionName:     cfg.AttentionName,
		PhoneNumber:       cfg.PhoneNumber,
		FaxNumber:         cfg.FaxNumber,
		StreetAddress:     cfg.StreetAddress,
		StreetAddress2:    cfg.StreetAddress2,
		City:              cfg.City,
		StateProvinceCode: cfg.StateProvinceCode,
		PostalCode:        cfg.PostalCode,
		WeightUnit:        cfg.WeightUnit,
		DimensionsUnit:    cfg.DimensionsUnit,
		Length:            cfg.Length,
		Width:             cfg.Width,
		Height:            cfg.Height,
	}
}
