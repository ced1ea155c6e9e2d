// Package repository provides data access layer for MongoDB.
package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/guttosm/rate-service/internal/domain/model"
)

// QuoteLogsRepository provides methods for quote log operations.
type QuoteLogsRepository struct {
	collection *mongo.Collection
}

// NewQuoteLogsRepository creates a new quote logs repository.
func NewQuoteLogsRepository(db *MongoDB) *QuoteLogsRepository {
	return &QuoteLogsRepository{
		collection: db.QuoteLogs,
	}
}

// Create inserts a new quote log document.
func (r *QuoteLogsRepository) Create(ctx context.Context, entry *model.QuoteLog) error {
	if entry.ID.IsZero() {
		entry.ID = primitive.NewObjectID()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	_, err := r.collection.InsertOne(ctx, entry)
	return err
}

// CreateMany inserts multiple quote log documents in bulk.
func (r *QuoteLogsRepository) CreateMany(ctx context.Context, entries []*model.QuoteLog) error {
	if len(entries) == 0 {
		return nil
	}

	docs := make([]interface{}, len(entries))
	for i, entry := range entries {
		if entry.ID.IsZero() {
			entry.ID = primitive.NewObjectID()
		}
		if entry.Timestamp.IsZero() {
			entry.Timestamp = time.Now()
		}
		docs[i] = entry
	}

	_, err := r.collection.InsertMany(ctx, docs)
	return err
}

// Query queries quote log documents with filters, newest first.
func (r *QuoteLogsRepository) Query(ctx context.Context, opts model.QuoteLogQueryOptions) ([]*model.QuoteLog, error) {
	filter := buildQuoteLogFilter(opts)

	findOptions := options.Find().SetSort(bson.M{"timestamp": -1})
	if opts.Limit > 0 {
		findOptions.SetLimit(int64(opts.Limit))
	}
	if opts.Skip > 0 {
		findOptions.SetSkip(int64(opts.Skip))
	}

	cursor, err := r.collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var entries []*model.QuoteLog
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, err
	}

	return entries, nil
}

// Count returns the count of quote log documents matching the filter.
func (r *QuoteLogsRepository) Count(ctx context.Context, opts model.QuoteLogQueryOptions) (int64, error) {
	return r.collection.CountDocuments(ctx, buildQuoteLogFilter(opts))
}

func buildQuoteLogFilter(opts model.QuoteLogQueryOptions) bson.M {
	filter := bson.M{}

	if opts.RequestID != "" {
		filter["request_id"] = opts.RequestID
	}
	if opts.SessionID != "" {
		filter["session_id"] = opts.SessionID
	}
	if opts.OptionID != "" {
		filter["option_id"] = opts.OptionID
	}
	if opts.OnlyFailed {
		filter["errors.0"] = bson.M{"$exists": true}
	}
	if opts.StartTime != nil || opts.EndTime != nil {
		timeFilter := bson.M{}
		if opts.StartTime != nil {
			timeFilter["$gte"] = *opts.StartTime
		}
		if opts.EndTime != nil {
			timeFilter["$lte"] = *opts.EndTime
		}
		filter["timestamp"] = timeFilter
	}

	return filter
}
