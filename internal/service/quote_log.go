package service

import (
	"context"

	"github.com/guttosm/rate-service/internal/domain/model"
	"github.com/guttosm/rate-service/internal/repository"
)

// QuoteLogService defines the interface for quote audit log operations.
// This interface can be mocked for testing.
type QuoteLogService interface {
	// CreateQuoteLog stores a single quote log entry.
	CreateQuoteLog(ctx context.Context, entry *model.QuoteLog) error

	// CreateQuoteLogs stores multiple quote log entries in bulk.
	CreateQuoteLogs(ctx context.Context, entries []*model.QuoteLog) error

	// QueryQuoteLogs retrieves quote log entries matching the query options.
	QueryQuoteLogs(ctx context.Context, opts model.QuoteLogQueryOptions) ([]*model.QuoteLog, error)

	// CountQuoteLogs returns the count of quote log entries matching the query options.
	CountQuoteLogs(ctx context.Context, opts model.QuoteLogQueryOptions) (int64, error)
}

// QuoteLogServiceImpl implements the QuoteLogService interface.
type QuoteLogServiceImpl struct {
	repo repository.QuoteLogsRepositoryInterface
}

// NewQuoteLogService creates a new quote log service implementation.
func NewQuoteLogService(repo repository.QuoteLogsRepositoryInterface) QuoteLogService {
	return &QuoteLogServiceImpl{
		repo: repo,
	}
}

// CreateQuoteLog stores a single quote log entry.
func (s *QuoteLogServiceImpl) CreateQuoteLog(ctx context.Context, entry *model.QuoteLog) error {
	return s.repo.Create(ctx, entry)
}

// CreateQuoteLogs stores multiple quote log entries in bulk.
func (s *QuoteLogServiceImpl) CreateQuoteLogs(ctx context.Context, entries []*model.QuoteLog) error {
	if len(entries) == 0 {
		return nil
	}
	return s.repo.CreateMany(ctx, entries)
}

// QueryQuoteLogs retrieves quote log entries matching the query options.
func (s *QuoteLogServiceImpl) QueryQuoteLogs(ctx context.Context, opts model.QuoteLogQueryOptions) ([]*model.QuoteLog, error) {
	return s.repo.Query(ctx, opts)
}

// CountQuoteLogs returns the count of quote log entries matching the query options.
func (s *QuoteLogServiceImpl) CountQuoteLogs(ctx context.Context, opts model.QuoteLogQueryOptions) (int64, error) {
	return s.repo.Count(ctx, opts)
}
