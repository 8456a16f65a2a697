// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

package identity

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"

	"github.com/suhyeonp/daylist/internal/platform/constants"
)

// # State Nonce Storage

// StateStore tracks the one-time CSRF state nonces attached to authorize
// URLs. A nonce is written when the URL is built and consumed exactly once
// when the provider calls back; a second consume attempt must fail.
type StateStore interface {

	// Put records a freshly issued nonce with an expiry.
	Put(ctx context.Context, state string, ttl time.Duration) error

	// Consume atomically removes the nonce, reporting whether it existed.
	Consume(ctx context.Context, state string) (bool, error)
}

// # Redis Implementation

// RedisStateStore is the shared-deployment implementation. Nonces live in
// Redis so any instance can consume a nonce issued by another.
type RedisStateStore struct {
	client *redis.Client
}

// NewRedisStateStore creates a Redis-backed StateStore.
func NewRedisStateStore(client *redis.Client) *RedisStateStore {
	return &RedisStateStore{client: client}
}

// Put implements [StateStore].
func (store *RedisStateStore) Put(ctx context.Context, state string, ttl time.Duration) error {
	key := constants.RedisPrefixOAuthState + state
	if err := store.client.Set(ctx, key, "1", ttl).Err(); err != nil {
		return fmt.Errorf("redis_oauth_state_put_failed: %w", err)
	}
	return nil
}

// Consume implements [StateStore]. GETDEL makes read-and-remove atomic, so
// two concurrent callbacks with the same nonce cannot both succeed.
func (store *RedisStateStore) Consume(ctx context.Context, state string) (bool, error) {
	key := constants.RedisPrefixOAuthState + state
	_, err := store.client.GetDel(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis_oauth_state_consume_failed: %w", err)
	}
	return true, nil
}

// # In-Memory Implementation

// MemoryStateStore keeps nonces in a local expiring cache. It is the
// fallback when no REDIS_URL is configured and is only correct for
// single-instance deployments.
type MemoryStateStore struct {
	mu    sync.Mutex
	cache *gocache.Cache
}

// NewMemoryStateStore creates an in-process StateStore.
func NewMemoryStateStore() *MemoryStateStore {
	return &MemoryStateStore{
		cache: gocache.New(constants.StateNonceTTL, 2*constants.StateNonceTTL),
	}
}

// Put implements [StateStore].
func (store *MemoryStateStore) Put(_ context.Context, state string, ttl time.Duration) error {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.cache.Set(state, struct{}{}, ttl)
	return nil
}

// Consume implements [StateStore]. The mutex makes check-and-delete atomic.
func (store *MemoryStateStore) Consume(_ context.Context, state string) (bool, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, found := store.cache.Get(state); !found {
		return false, nil
	}
	store.cache.Delete(state)
	return true, nil
}
