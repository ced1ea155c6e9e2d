// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/guttosm/rate-service/internal/repository"
)

type MockShippingOptionsRepositoryInterface struct {
	mock.Mock
}

func (m *MockShippingOptionsRepositoryInterface) GetByOptionID(ctx context.Context, optionID string) (*repository.ShippingOptionDocument, error) {
	args := m.Called(ctx, optionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ShippingOptionDocument), args.Error(1)
}

func (m *MockShippingOptionsRepositoryInterface) List(ctx context.Context, activeOnly bool, limit int) ([]repository.ShippingOptionDocument, error) {
	args := m.Called(ctx, activeOnly, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repository.ShippingOptionDocument), args.Error(1)
}

func (m *MockShippingOptionsRepositoryInterface) Create(ctx context.Context, doc *repository.ShippingOptionDocument) (*repository.ShippingOptionDocument, error) {
	args := m.Called(ctx, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ShippingOptionDocument), args.Error(1)
}

func (m *MockShippingOptionsRepositoryInterface) Update(ctx context.Context, optionID string, doc *repository.ShippingOptionDocument) (*repository.ShippingOptionDocument, error) {
	args := m.Called(ctx, optionID, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.ShippingOptionDocument), args.Error(1)
}

func (m *MockShippingOptionsRepositoryInterface) Delete(ctx context.Context, optionID string) (bool, error) {
	args := m.Called(ctx, optionID)
	return args.Bool(0), args.Error(1)
}
