//go:build integration

package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/guttosm/rate-service/internal/domain/model"
)

func TestShippingOptionsRepository_CRUD(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewShippingOptionsRepository(db)

	created, err := repo.Create(ctx, &ShippingOptionDocument{
		OptionID:            "ups-ground",
		Name:                "UPS Ground",
		ServiceCode:         "03",
		GroupByManufacturer: true,
		MaxItemsPerPackage:  10,
	})
	require.NoError(t, err)
	assert.False(t, created.ID.IsZero())
	assert.True(t, created.Active)
	assert.Equal(t, 1, created.Version)

	t.Run("get by option id", func(t *testing.T) {
		doc, err := repo.GetByOptionID(ctx, "ups-ground")
		require.NoError(t, err)
		require.NotNil(t, doc)
		assert.Equal(t, "UPS Ground", doc.Name)
		assert.Equal(t, "03", doc.ServiceCode)
	})

	t.Run("get missing returns nil without error", func(t *testing.T) {
		doc, err := repo.GetByOptionID(ctx, "no-such-option")
		require.NoError(t, err)
		assert.Nil(t, doc)
	})

	t.Run("update bumps version", func(t *testing.T) {
		updated, err := repo.Update(ctx, "ups-ground", &ShippingOptionDocument{
			Name:        "Ground",
			ServiceCode: "03",
		})
		require.NoError(t, err)
		require.NotNil(t, updated)
		assert.Equal(t, "Ground", updated.Name)
		assert.Equal(t, 2, updated.Version)
	})

	t.Run("update missing returns nil", func(t *testing.T) {
		updated, err := repo.Update(ctx, "no-such-option", &ShippingOptionDocument{ServiceCode: "03"})
		require.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("list", func(t *testing.T) {
		docs, err := repo.List(ctx, false, 0)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, len(docs), 1)

		active, err := repo.List(ctx, true, 1)
		require.NoError(t, err)
		assert.Len(t, active, 1)
	})

	t.Run("delete", func(t *testing.T) {
		deleted, err := repo.Delete(ctx, "ups-ground")
		require.NoError(t, err)
		assert.True(t, deleted)

		deleted, err = repo.Delete(ctx, "ups-ground")
		require.NoError(t, err)
		assert.False(t, deleted)
	})
}

func TestQuoteLogsRepository_Integration(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	db := setupTestDBFromSharedContainer(t)
	defer func() {
		require.NoError(t, db.Close(ctx))
	}()

	repo := NewQuoteLogsRepository(db)

	require.NoError(t, repo.Create(ctx, &model.QuoteLog{
		RequestID: "req-1",
		SessionID: "session-1",
		OptionID:  "ups-ground",
		Rate:      14.2,
		Currency:  "USD",
	}))
	require.NoError(t, repo.CreateMany(ctx, []*model.QuoteLog{
		{RequestID: "req-2", SessionID: "session-1", OptionID: "ups-next-day", Errors: []string{"Hard error"}},
		{RequestID: "req-3", SessionID: "session-2", OptionID: "ups-ground", Rate: 9.5},
	}))

	t.Run("query by session", func(t *testing.T) {
		entries, err := repo.Query(ctx, model.QuoteLogQueryOptions{SessionID: "session-1"})
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("query only failed", func(t *testing.T) {
		entries, err := repo.Query(ctx, model.QuoteLogQueryOptions{OnlyFailed: true})
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "ups-next-day", entries[0].OptionID)
	})

	t.Run("query with limit", func(t *testing.T) {
		entries, err := repo.Query(ctx, model.QuoteLogQueryOptions{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, entries, 2)
	})

	t.Run("count", func(t *testing.T) {
		count, err := repo.Count(ctx, model.QuoteLogQueryOptions{OptionID: "ups-ground"})
		require.NoError(t, err)
		assert.EqualValues(t, 2, count)
	})
}
