// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package account

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/contacts/internal/platform/constants"
	"github.com/taibuivan/contacts/internal/platform/sec"
)

// # Token Cache

// RedisTokenCache implements [TokenCache] using Redis string keys with a TTL.
type RedisTokenCache struct {
	client redis.UniversalClient
	ttl    time.Duration
}

// NewTokenCache creates a new Redis-backed TokenCache.
func NewTokenCache(client redis.UniversalClient, ttl time.Duration) *RedisTokenCache {
	return &RedisTokenCache{client: client, ttl: ttl}
}

func tokenKey(token string) string {
	return constants.RedisPrefixToken + token
}

/*
Get returns the cached identity for token.

Returns:
  - *sec.AuthUser: nil on a cache miss
  - error: Connectivity or decoding failures
*/
func (cache *RedisTokenCache) Get(context context.Context, token string) (*sec.AuthUser, error) {
	payload, err := cache.client.Get(context, tokenKey(token)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("redis_token_get_failed: %w", err)
	}

	user := &sec.AuthUser{}
	if err := json.Unmarshal(payload, user); err != nil {
		return nil, fmt.Errorf("redis_token_decode_failed: %w", err)
	}
	return user, nil
}

// Set caches the identity behind token for the configured TTL.
func (cache *RedisTokenCache) Set(context context.Context, token string, user *sec.AuthUser) error {
	payload, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("redis_token_encode_failed: %w", err)
	}

	if err := cache.client.Set(context, tokenKey(token), payload, cache.ttl).Err(); err != nil {
		return fmt.Errorf("redis_token_set_failed: %w", err)
	}
	return nil
}

// Delete evicts token. Deleting an absent key is not an error.
func (cache *RedisTokenCache) Delete(context context.Context, token string) error {
	if err := cache.client.Del(context, tokenKey(token)).Err(); err != nil {
		return fmt.Errorf("redis_token_delete_failed: %w", err)
	}
	return nil
}
