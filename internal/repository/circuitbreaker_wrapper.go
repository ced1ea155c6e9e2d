// Package repository provides circuit breaker wrappers for MongoDB operations.
package repository

import (
	"context"

	"github.com/guttosm/rate-service/internal/circuitbreaker"
	"github.com/guttosm/rate-service/internal/domain/model"
)

// ShippingOptionsRepositoryWithCircuitBreaker wraps ShippingOptionsRepository with circuit breaker protection.
type ShippingOptionsRepositoryWithCircuitBreaker struct {
	repo           *ShippingOptionsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewShippingOptionsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewShippingOptionsRepositoryWithCircuitBreaker(repo *ShippingOptionsRepository, cb *circuitbreaker.CircuitBreaker) *ShippingOptionsRepositoryWithCircuitBreaker {
	return &ShippingOptionsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// GetByOptionID returns a shipping option with circuit breaker protection.
func (r *ShippingOptionsRepositoryWithCircuitBreaker) GetByOptionID(ctx context.Context, optionID string) (*ShippingOptionDocument, error) {
	var result *ShippingOptionDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.GetByOptionID(ctx, optionID)
		return cbErr
	})
	return result, err
}

// List returns shipping options with circuit breaker protection.
func (r *ShippingOptionsRepositoryWithCircuitBreaker) List(ctx context.Context, activeOnly bool, limit int) ([]ShippingOptionDocument, error) {
	var result []ShippingOptionDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.List(ctx, activeOnly, limit)
		return cbErr
	})
	return result, err
}

// Create creates a shipping option with circuit breaker protection.
func (r *ShippingOptionsRepositoryWithCircuitBreaker) Create(ctx context.Context, doc *ShippingOptionDocument) (*ShippingOptionDocument, error) {
	var result *ShippingOptionDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Create(ctx, doc)
		return cbErr
	})
	return result, err
}

// Update updates a shipping option with circuit breaker protection.
func (r *ShippingOptionsRepositoryWithCircuitBreaker) Update(ctx context.Context, optionID string, doc *ShippingOptionDocument) (*ShippingOptionDocument, error) {
	var result *ShippingOptionDocument
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Update(ctx, optionID, doc)
		return cbErr
	})
	return result, err
}

// Delete deletes a shipping option with circuit breaker protection.
func (r *ShippingOptionsRepositoryWithCircuitBreaker) Delete(ctx context.Context, optionID string) (bool, error) {
	var result bool
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Delete(ctx, optionID)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *ShippingOptionsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}

// QuoteLogsRepositoryWithCircuitBreaker wraps QuoteLogsRepository with circuit breaker protection.
type QuoteLogsRepositoryWithCircuitBreaker struct {
	repo           *QuoteLogsRepository
	circuitBreaker *circuitbreaker.CircuitBreaker
}

// NewQuoteLogsRepositoryWithCircuitBreaker creates a new repository wrapper with circuit breaker.
func NewQuoteLogsRepositoryWithCircuitBreaker(repo *QuoteLogsRepository, cb *circuitbreaker.CircuitBreaker) *QuoteLogsRepositoryWithCircuitBreaker {
	return &QuoteLogsRepositoryWithCircuitBreaker{
		repo:           repo,
		circuitBreaker: cb,
	}
}

// Create stores a single quote log with circuit breaker protection.
// If circuit is open, silently fails (audit logging is non-critical).
func (r *QuoteLogsRepositoryWithCircuitBreaker) Create(ctx context.Context, entry *model.QuoteLog) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.Create(ctx, entry)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// CreateMany stores multiple quote logs with circuit breaker protection.
// If circuit is open, silently fails (audit logging is non-critical).
func (r *QuoteLogsRepositoryWithCircuitBreaker) CreateMany(ctx context.Context, entries []*model.QuoteLog) error {
	err := r.circuitBreaker.Execute(ctx, func() error {
		return r.repo.CreateMany(ctx, entries)
	})
	if err == circuitbreaker.ErrCircuitOpen {
		return nil
	}
	return err
}

// Query retrieves quote logs with circuit breaker protection.
func (r *QuoteLogsRepositoryWithCircuitBreaker) Query(ctx context.Context, opts model.QuoteLogQueryOptions) ([]*model.QuoteLog, error) {
	var result []*model.QuoteLog
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Query(ctx, opts)
		return cbErr
	})
	return result, err
}

// Count returns the count of quote logs with circuit breaker protection.
func (r *QuoteLogsRepositoryWithCircuitBreaker) Count(ctx context.Context, opts model.QuoteLogQueryOptions) (int64, error) {
	var result int64
	err := r.circuitBreaker.Execute(ctx, func() error {
		var cbErr error
		result, cbErr = r.repo.Count(ctx, opts)
		return cbErr
	})
	return result, err
}

// GetCircuitBreaker returns the underlying circuit breaker for monitoring.
func (r *QuoteLogsRepositoryWithCircuitBreaker) GetCircuitBreaker() *circuitbreaker.CircuitBreaker {
	return r.circuitBreaker
}
