// Package repository provides interfaces for repository operations.
package repository

import (
	"context"

	"github.com/guttosm/rate-service/internal/domain/model"
)

// ShippingOptionsRepositoryInterface defines the interface for shipping option repository operations.
type ShippingOptionsRepositoryInterface interface {
	GetByOptionID(ctx context.Context, optionID string) (*ShippingOptionDocument, error)
	List(ctx context.Context, activeOnly bool, limit int) ([]ShippingOptionDocument, error)
	Create(ctx context.Context, doc *ShippingOptionDocument) (*ShippingOptionDocument, error)
	Update(ctx context.Context, optionID string, doc *ShippingOptionDocument) (*ShippingOptionDocument, error)
	Delete(ctx context.Context, optionID string) (bool, error)
}

// QuoteLogsRepositoryInterface defines the interface for quote log repository operations.
type QuoteLogsRepositoryInterface interface {
	Create(ctx context.Context, entry *model.QuoteLog) error
	CreateMany(ctx context.Context, entries []*model.QuoteLog) error
	Query(ctx context.Context, opts model.QuoteLogQueryOptions) ([]*model.QuoteLog, error)
	Count(ctx context.Context, opts model.QuoteLogQueryOptions) (int64, error)
}
