// Package model provides domain models for the rate service.
package model

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// QuoteLog records one carrier rating attempt: the serialized request
// payload, the normalized outcome, and request correlation data. Used
// for auditing rate discrepancies against carrier invoices.
type QuoteLog struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Timestamp  time.Time          `bson:"timestamp" json:"timestamp"`
	RequestID  string             `bson:"request_id,omitempty" json:"request_id,omitempty"`
	SessionID  string             `bson:"session_id,omitempty" json:"session_id,omitempty"`
	OptionID   string             `bson:"option_id" json:"option_id"`
	Payload    string             `bson:"payload,omitempty" json:"payload,omitempty"`
	Rate       float64            `bson:"rate" json:"rate"`
	Currency   string             `bson:"currency,omitempty" json:"currency,omitempty"`
	Warnings   []string           `bson:"warnings,omitempty" json:"warnings,omitempty"`
	Errors     []string           `bson:"errors,omitempty" json:"errors,omitempty"`
	FromCache  bool               `bson:"from_cache" json:"from_cache"`
	DurationMS int64              `bson:"duration_ms,omitempty" json:"duration_ms,omitempty"`
}

// QuoteLogQueryOptions filters quote log queries.
type QuoteLogQueryOptions struct {
	RequestID  string
	SessionID  string
	OptionID   string
	OnlyFailed bool
	StartTime  *time.Time
	EndTime    *time.Time
	Limit      int
	Skip       int
}
