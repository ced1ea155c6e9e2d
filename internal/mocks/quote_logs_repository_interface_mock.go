// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/rate-service/internal/domain/model"
)

type MockQuoteLogsRepositoryInterface struct {
	mock.Mock
}

func (m *MockQuoteLogsRepositoryInterface) Create(ctx context.Context, entry *model.QuoteLog) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockQuoteLogsRepositoryInterface) CreateMany(ctx context.Context, entries []*model.QuoteLog) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

func (m *MockQuoteLogsRepositoryInterface) Query(ctx context.Context, opts model.QuoteLogQueryOptions) ([]*model.QuoteLog, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*model.QuoteLog), args.Error(1)
}

func (m *MockQuoteLogsRepositoryInterface) Count(ctx context.Context, opts model.QuoteLogQueryOptions) (int64, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(int64), args.Error(1)
}
