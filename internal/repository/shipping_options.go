// Package repository provides data access for shipping options.
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

// ShippingOptionDocument is the MongoDB document for a configured
// shipping option. OptionID is the stable key handlers and the rate
// cache address options by.
type ShippingOptionDocument struct {
	ID                     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OptionID               string             `bson:"option_id" json:"option_id"`
	Name                   string             `bson:"name,omitempty" json:"name,omitempty"`
	ServiceCode            string             `bson:"service_code" json:"service_code"`
	PickupType             string             `bson:"pickup_type,omitempty" json:"pickup_type,omitempty"`
	ContainerType          string             `bson:"container_type,omitempty" json:"container_type,omitempty"`
	CustomerClassification string             `bson:"customer_classification,omitempty" json:"customer_classification,omitempty"`
	GroupByManufacturer    bool               `bson:"group_by_manufacturer" json:"group_by_manufacturer"`
	MaxItemsPerPackage     int                `bson:"max_items_per_package" json:"max_items_per_package"`
	Active                 bool               `bson:"active" json:"active"`
	Version                int                `bson:"version" json:"version"`
	CreatedAt              time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt              time.Time          `bson:"updated_at" json:"updated_at"`
}

// ToModel converts the document into the domain shipping option.
func (d *ShippingOptionDocument) ToModel() model.ShippingOption {
	return model.ShippingOption{
		ID:                     d.OptionID,
		Name:                   d.Name,
		ServiceCode:            d.ServiceCode,
		PickupType:             d.PickupType,
		ContainerType:          d.ContainerType,
		CustomerClassification: d.CustomerClassification,
		Packaging: model.PackagingConfig{
			GroupByManufacturer: d.GroupByManufacturer,
			MaxItemsPerPackage:  d.MaxItemsPerPackage,
		},
	}
}

// ShippingOptionsRepository provides methods for shipping option
// operations.
type ShippingOptionsRepository struct {
	collection *mongo.Collection
}

// NewShippingOptionsRepository creates a new shipping options repository.
func NewShippingOptionsRepository(db *MongoDB) *ShippingOptionsRepository {
	return &ShippingOptionsRepository{
		collection: db.ShippingOptions,
	}
}

// GetByOptionID returns the shipping option with the given stable id,
// or nil when none exists.
func (r *ShippingOptionsRepository) GetByOptionID(ctx context.Context, optionID string) (*ShippingOptionDocument, error) {
	var doc ShippingOptionDocument
	err := r.collection.FindOne(ctx, bson.M{"option_id": optionID}).Decode(&doc)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// List returns shipping option documents, newest first. When
// activeOnly is set, only active options are returned.
func (r *ShippingOptionsRepository) List(ctx context.Context, activeOnly bool, limit int) ([]ShippingOptionDocument, error) {
	filter := bson.M{}
	if activeOnly {
		filter["active"] = true
	}

	opts := options.Find().SetSort(bson.M{"created_at": -1})
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	var docs []ShippingOptionDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	return docs, nil
}

// Create inserts a new shipping option document.
func (r *ShippingOptionsRepository) Create(ctx context.Context, doc *ShippingOptionDocument) (*ShippingOptionDocument, error) {
	doc.ID = primitive.NewObjectID()
	doc.Active = true
	doc.Version = 1
	doc.CreatedAt = time.Now()
	doc.UpdatedAt = time.Now()

	if _, err := r.collection.InsertOne(ctx, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// Update replaces the mutable fields of an existing shipping option
// and bumps its version. Returns nil when the option does not exist.
func (r *ShippingOptionsRepository) Update(ctx context.Context, optionID string, doc *ShippingOptionDocument) (*ShippingOptionDocument, error) {
	update := bson.M{
		"$set": bson.M{
			"name":                    doc.Name,
			"service_code":            doc.ServiceCode,
			"pickup_type":             doc.PickupType,
			"container_type":          doc.ContainerType,
			"customer_classification": doc.CustomerClassification,
			"group_by_manufacturer":   doc.GroupByManufacturer,
			"max_items_per_package":   doc.MaxItemsPerPackage,
			"updated_at":              time.Now(),
		},
		"$inc": bson.M{"version": 1},
	}

	var updated ShippingOptionDocument
	err := r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"option_id": optionID},
		update,
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &updated, nil
}

// Delete removes the shipping option with the given id. Returns true
// when a document was deleted.
func (r *ShippingOptionsRepository) Delete(ctx context.Context, optionID string) (bool, error) {
	result, err := r.collection.DeleteOne(ctx, bson.M{"option_id": optionID})
	if err != nil {
		return false, err
	}
	return result.DeletedCount > 0, nil
}
