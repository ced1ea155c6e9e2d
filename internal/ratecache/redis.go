package ratecache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RedisStore is a Store backed by Redis, for deployments running more
// than one instance behind a session-unaware load balancer. Entries are
// stored as JSON under rate:req:<session>:<option> with a per-key TTL.
type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore creates a Redis-backed store. A non-positive ttl
// defaults to 30 minutes.
func NewRedisStore(client *redis.Client, ttl time.Duration) *RedisStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &RedisStore{client: client, ttl: ttl}
}

// Session returns the cache view for the given buyer session.
func (s *RedisStore) Session(sessionID string) Session {
	return &redisSession{store: s, id: sessionID}
}

type redisSession struct {
	store *RedisStore
	id    string
}

func (r *redisSession) key(optionID string) string {
	return fmt.Sprintf("rate:req:%s:%s", r.id, optionID)
}

// Lookup treats every Redis failure as a miss so that a degraded cache
// backend costs an extra carrier call instead of failing the request.
func (r *redisSession) Lookup(ctx context.Context, optionID, fingerprint string) (Entry, bool) {
	raw, err := r.store.client.Get(ctx, r.key(optionID)).Result()
	if err != nil {
		if err != redis.Nil {
			log.Warn().Err(err).Str("session_id", r.id).Str("option_id", optionID).
				Msg("rate cache lookup failed, treating as miss")
		}
		return Entry{}, false
	}

	var e Entry
	if err := json.Unmarshal([]byte(raw), &e); err != nil {
		log.Warn().Err(err).Str("session_id", r.id).Str("option_id", optionID).
			Msg("rate cache entry unreadable, treating as miss")
		return Entry{}, false
	}
	if e.Fingerprint != fingerprint {
		return Entry{}, false
	}
	return e, true
}

func (r *redisSession) Store(ctx context.Context, optionID string, e Entry) error {
	raw, err := json.Marshal(e)
	if err != nil {
		return err
	}
	return r.store.client.Set(ctx, r.key(optionID), raw, r.store.ttl).Err()
}
