package service

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/rate-service/internal/mocks"
	"github.com/guttosm/rate-service/internal/repository"
)

// TestShippingOptionsService_GetOption tests lookup and mapping.
func TestShippingOptionsService_GetOption(t *testing.T) {
	t.Run("maps the stored document to the domain model", func(t *testing.T) {
		repo := new(mocks.MockShippingOptionsRepositoryInterface)
		doc := &repository.ShippingOptionDocument{
			OptionID:            "ups-ground",
			Name:                "UPS Ground",
			ServiceCode:         "03",
			PickupType:          "01",
			GroupByManufacturer: true,
			MaxItemsPerPackage:  10,
		}
		repo.On("GetByOptionID", mock.Anything, "ups-ground").Return(doc, nil)

		svc := NewShippingOptionsService(repo)

		opt, err := svc.GetOption(context.Background(), "ups-ground")
		require.NoError(t, err)
		assert.Equal(t, "ups-ground", opt.ID)
		assert.Equal(t, "UPS Ground", opt.Name)
		assert.Equal(t, "03", opt.ServiceCode)
		assert.True(t, opt.Packaging.GroupByManufacturer)
		assert.Equal(t, 10, opt.Packaging.MaxItemsPerPackage)
	})

	t.Run("missing document yields ErrOptionNotFound", func(t *testing.T) {
		repo := new(mocks.MockShippingOptionsRepositoryInterface)
		repo.On("GetByOptionID", mock.Anything, "missing").Return(nil, nil)

		svc := NewShippingOptionsService(repo)

		_, err := svc.GetOption(context.Background(), "missing")
		assert.ErrorIs(t, err, ErrOptionNotFound)
	})

	t.Run("repository errors pass through", func(t *testing.T) {
		repo := new(mocks.MockShippingOptionsRepositoryInterface)
		repo.On("GetByOptionID", mock.Anything, "ups-ground").Return(nil, errors.New("connection reset"))

		svc := NewShippingOptionsService(repo)

		_, err := svc.GetOption(context.Background(), "ups-ground")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrOptionNotFound)
	})
}

// TestShippingOptionsService_UpdateOption tests not-found translation.
func TestShippingOptionsService_UpdateOption(t *testing.T) {
	repo := new(mocks.MockShippingOptionsRepositoryInterface)
	repo.On("Update", mock.Anything, "missing", mock.Anything).Return(nil, nil)

	svc := NewShippingOptionsService(repo)

	_, err := svc.UpdateOption(context.Background(), "missing", &repository.ShippingOptionDocument{})
	assert.ErrorIs(t, err, ErrOptionNotFound)
}

// TestShippingOptionsService_DeleteOption tests delete outcomes.
func TestShippingOptionsService_DeleteOption(t *testing.T) {
	t.Run("deleted", func(t *testing.T) {
		repo := new(mocks.MockShippingOptionsRepositoryInterface)
		repo.On("Delete", mock.Anything, "ups-ground").Return(true, nil)

		svc := NewShippingOptionsService(repo)
		assert.NoError(t, svc.DeleteOption(context.Background(), "ups-ground"))
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(mocks.MockShippingOptionsRepositoryInterface)
		repo.On("Delete", mock.Anything, "missing").Return(false, nil)

		svc := NewShippingOptionsService(repo)
		assert.ErrorIs(t, svc.DeleteOption(context.Background(), "missing"), ErrOptionNotFound)
	})
}
