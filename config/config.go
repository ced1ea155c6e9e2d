// Package config provides configuration management for the rate service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Carrier  CarrierConfig
	Cache    CacheConfig
	Auth     AuthConfig
	Database DatabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        string
	RateLimit   int
	RateWindow  time.Duration
	CORSOrigins []string
	SwaggerUser string
	SwaggerPass string
}

// CarrierConfig holds UPS account and origination configuration.
type CarrierConfig struct {
	Endpoint      string
	AccessKey     string
	UserID        string
	Password      string
	ShipperNumber string

	CompanyName   string
	AttentionName string
	PhoneNumber   string
	FaxNumber     string

	StreetAddress     string
	StreetAddress2    string
	City              string
	StateProvinceCode string
	PostalCode        string

	WeightUnit     string
	DimensionsUnit string
	Length         string
	Width          string
	Height         string

	QuoteTimeout time.Duration
}

// CacheConfig holds rate cache configuration.
type CacheConfig struct {
	// Backend selects the rate cache store: "memory" or "redis".
	Backend string
	// SessionTTL is how long a session's cached rates live after the
	// last write.
	SessionTTL time.Duration
	RedisAddr  string
	RedisDB    int
	RedisPass  string
}

// AuthConfig holds API key authentication configuration.
type AuthConfig struct {
	Enabled bool
	APIKeys map[string]bool
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	QuoteLogsTTL time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			RateLimit:   getEnvInt("RATE_LIMIT", 100),
			RateWindow:  getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins: parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser: getEnv("SWAGGER_USER", ""),
			SwaggerPass: getEnv("SWAGGER_PASS", ""),
		},
		Carrier: CarrierConfig{
			Endpoint:          getEnv("UPS_ENDPOINT", "https://wwwcie.ups.com/ups.app/xml/Rate"),
			AccessKey:         getEnv("UPS_ACCESS_KEY", ""),
			UserID:            getEnv("UPS_USER_ID", ""),
			Password:          getEnv("UPS_PASSWORD", ""),
			ShipperNumber:     getEnv("UPS_SHIPPER_NUMBER", ""),
			CompanyName:       getEnv("UPS_COMPANY_NAME", ""),
			AttentionName:     getEnv("UPS_ATTENTION_NAME", ""),
			PhoneNumber:       getEnv("UPS_PHONE_NUMBER", ""),
			FaxNumber:         getEnv("UPS_FAX_NUMBER", ""),
			StreetAddress:     getEnv("UPS_STREET_ADDRESS", ""),
			StreetAddress2:    getEnv("UPS_STREET_ADDRESS2", ""),
			City:              getEnv("UPS_CITY", ""),
			StateProvinceCode: getEnv("UPS_STATE", ""),
			PostalCode:        getEnv("UPS_POSTAL_CODE", ""),
			WeightUnit:        getEnv("UPS_WEIGHT_UNIT", "LBS"),
			DimensionsUnit:    getEnv("UPS_DIMENSIONS_UNIT", "IN"),
			Length:            getEnv("UPS_DEFAULT_LENGTH", "10"),
			Width:             getEnv("UPS_DEFAULT_WIDTH", "10"),
			Height:            getEnv("UPS_DEFAULT_HEIGHT", "10"),
			QuoteTimeout:      getEnvDuration("UPS_QUOTE_TIMEOUT", 30*time.Second),
		},
		Cache: CacheConfig{
			Backend:    getEnv("RATE_CACHE_BACKEND", "memory"),
			SessionTTL: getEnvDuration("RATE_CACHE_SESSION_TTL", 30*time.Minute),
			RedisAddr:  getEnv("REDIS_ADDR", "localhost:6379"),
			RedisDB:    getEnvInt("REDIS_DB", 0),
			RedisPass:  getEnv("REDIS_PASSWORD", ""),
		},
		Auth: AuthConfig{
			Enabled: getEnvBool("AUTH_ENABLED", false),
			APIKeys: parseAPIKeys(os.Getenv("API_KEYS")),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "rate_service"),
			QuoteLogsTTL:                   getEnvDuration("MONGODB_QUOTE_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

func parseAPIKeys(s string) map[string]bool {
	if s == "" {
		return nil
	}
	keys := strings.Split(s, ",")
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			result[k] = true
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
