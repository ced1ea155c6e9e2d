package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/guttosm/rate-service/internal/domain/model"
	"github.com/guttosm/rate-service/internal/repository"
)

// ErrOptionNotFound is returned when a shipping option does not exist.
var ErrOptionNotFound = errors.New("shipping option not found")

// ShippingOptionsService defines the interface for shipping option
// configuration operations.
type ShippingOptionsService interface {
	// GetOption returns the shipping option with the given stable id.
	GetOption(ctx context.Context, optionID string) (model.ShippingOption, error)

	// ListOptions returns configured shipping options.
	ListOptions(ctx context.Context, activeOnly bool, limit int) ([]repository.ShippingOptionDocument, error)

	// CreateOption stores a new shipping option.
	CreateOption(ctx context.Context, doc *repository.ShippingOptionDocument) (*repository.ShippingOptionDocument, error)

	// UpdateOption replaces the mutable fields of an existing option.
	UpdateOption(ctx context.Context, optionID string, doc *repository.ShippingOptionDocument) (*repository.ShippingOptionDocument, error)

	// DeleteOption removes an option.
	DeleteOption(ctx context.Context, optionID string) error
}

// ShippingOptionsServiceImpl implements ShippingOptionsService.
type ShippingOptionsServiceImpl struct {
	repo repository.ShippingOptionsRepositoryInterface
}

// NewShippingOptionsService creates a new shipping options service.
func NewShippingOptionsService(repo repository.ShippingOptionsRepositoryInterface) *ShippingOptionsServiceImpl {
	return &ShippingOptionsServiceImpl{
		repo: repo,
	}
}

// GetOption returns the shipping option with the given stable id.
func (s *ShippingOptionsServiceImpl) GetOption(ctx context.Context, optionID string) (model.ShippingOption, error) {
	doc, err := s.repo.GetByOptionID(ctx, optionID)
	if err != nil {
		return model.ShippingOption{}, err
	}
	if doc == nil {
		return model.ShippingOption{}, ErrOptionNotFound
	}
	return doc.ToModel(), nil
}

// ListOptions returns configured shipping options.
func (s *ShippingOptionsServiceImpl) ListOptions(ctx context.Context, activeOnly bool, limit int) ([]repository.ShippingOptionDocument, error) {
	return s.repo.List(ctx, activeOnly, limit)
}

// CreateOption stores a new shipping option.
func (s *ShippingOptionsServiceImpl) CreateOption(ctx context.Context, doc *repository.ShippingOptionDocument) (*repository.ShippingOptionDocument, error) {
	return s.repo.Create(ctx, doc)
}

// UpdateOption replaces the mutable fields of an existing option.
func (s *ShippingOptionsServiceImpl) UpdateOption(ctx context.Context, optionID string, doc *repository.ShippingOptionDocument) (*repository.ShippingOptionDocument, error) {
	updated, err := s.repo.Update(ctx, optionID, doc)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrOptionNotFound
	}
	return updated, nil
}

// DeleteOption removes an option.
func (s *ShippingOptionsServiceImpl) DeleteOption(ctx context.Context, optionID string) error {
	deleted, err := s.repo.Delete(ctx, optionID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrOptionNotFound
	}
	return nil
}
