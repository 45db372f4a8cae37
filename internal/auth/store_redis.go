// Copyright (c) 2026 Cadenza. All rights reserved.

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/cadenza-music/cadenza/internal/platform/apperr"
	"github.com/cadenza-music/cadenza/internal/platform/constants"
)

// RedisTokenCache implements [TokenCache] using Redis.
type RedisTokenCache struct {
	client *redis.Client
}

// NewTokenCache creates a new Redis-backed TokenCache.
func NewTokenCache(client *redis.Client) *RedisTokenCache {
	return &RedisTokenCache{client: client}
}

// Set stores a token → userID mapping with a TTL.
func (cache *RedisTokenCache) Set(ctx context.Context, token string, userID string, ttl time.Duration) error {
	key := constants.RedisPrefixToken + token

	if err := cache.client.Set(ctx, key, userID, ttl).Err(); err != nil {
		return fmt.Errorf("redis_token_set_failed: %w", err)
	}

	return nil
}

// Get retrieves the userID for a token.
//
// Returns apperr.NotFound on a miss; connectivity failures are returned
// as-is so the caller can degrade to the repository.
func (cache *RedisTokenCache) Get(ctx context.Context, token string) (string, error) {
	key := constants.RedisPrefixToken + token

	userID, err := cache.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", apperr.NotFound("token")
		}
		return "", fmt.Errorf("redis_token_get_failed: %w", err)
	}

	return userID, nil
}

// Delete removes a token entry. Deleting an absent key succeeds.
func (cache *RedisTokenCache) Delete(ctx context.Context, token string) error {
	key := constants.RedisPrefixToken + token

	if err := cache.client.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("redis_token_delete_failed: %w", err)
	}

	return nil
}
