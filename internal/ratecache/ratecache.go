// Package ratecache stores carrier rating outcomes per buyer session so
// that repeated fee calculations for an unchanged request reuse the
// previous outcome instead of calling the carrier again.
package ratecache

import (
	"context"
)

// Entry is one cached rating outcome. Failed attempts are stored with a
// zero rate and a populated Errors list; they replay on later hits the
// same way successful attempts do.
type Entry struct {
	// Fingerprint is the full serialized carrier request the entry was
	// produced for. A lookup only hits when fingerprints match exactly.
	Fingerprint string   `json:"fingerprint"`
	Rate        float64  `json:"rate"`
	Currency    string   `json:"currency,omitempty"`
	Warnings    []string `json:"warnings,omitempty"`
	Errors      []string `json:"errors,omitempty"`
}

// Session is the cache view scoped to one buyer session. Each shipping
// option holds at most one entry; storing overwrites unconditionally.
type Session interface {
	// Lookup returns the entry stored for the option when its
	// fingerprint matches exactly. Any other outcome, including a
	// backend error, is a miss.
	Lookup(ctx context.Context, optionID, fingerprint string) (Entry, bool)

	// Store replaces the option's entry with e.
	Store(ctx context.Context, optionID string, e Entry) error
}

// Store hands out session-scoped cache views.
type Store interface {
	Session(sessionID string) Session
}

// Cycle tracks which shipping options have already attempted a carrier
// call during a single fee-calculation invocation. A second attempt for
// the same option within the cycle is suppressed even when its
// fingerprint differs from the cached one.
//
// A Cycle lives for exactly one invocation and must not be shared
// across goroutines.
type Cycle struct {
	attempted map[string]struct{}
}

// NewCycle returns an empty cycle.
func NewCycle() *Cycle {
	return &Cycle{attempted: make(map[string]struct{})}
}

// HasAttempted reports whether the option already attempted a carrier
// call in this cycle.
func (c *Cycle) HasAttempted(optionID string) bool {
	_, ok := c.attempted[optionID]
	return ok
}

// MarkAttempted records a carrier call attempt for the option.
func (c *Cycle) MarkAttempted(optionID string) {
	c.attempted[optionID] = struct{}{}
}
