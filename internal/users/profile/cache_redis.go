// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/taibuivan/passport/internal/platform/apperr"
	"github.com/taibuivan/passport/internal/platform/constants"
)

// # Redis Implementation

// RedisCache implements the [Cache] interface on top of go-redis.
//
// Profiles are stored as JSON under "passport:profile:<userID>" keys.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache constructs a [RedisCache] with a connected client.
func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client}
}

// Get fetches and unmarshals a cached profile. A missing key maps to
// [apperr.NotFound] so callers can treat it as an ordinary miss.
func (cache *RedisCache) Get(context context.Context, userID string) (*Profile, error) {
	payload, err := cache.client.Get(context, cacheKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.NotFound("Profile")
		}
		return nil, fmt.Errorf("profile_cache_get_failed: %w", err)
	}

	profile := &Profile{}
	if err := json.Unmarshal(payload, profile); err != nil {
		// A corrupt entry is indistinguishable from a miss for callers.
		return nil, apperr.NotFound("Profile")
	}

	return profile, nil
}

// Set marshals and stores the profile with the package TTL.
func (cache *RedisCache) Set(context context.Context, profile *Profile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("profile_cache_marshal_failed: %w", err)
	}

	if err := cache.client.Set(context, cacheKey(profile.ID), payload, CacheTTL).Err(); err != nil {
		return fmt.Errorf("profile_cache_set_failed: %w", err)
	}

	return nil
}

// cacheKey builds the namespaced Redis key for a user's profile.
func cacheKey(userID string) string {
	return constants.RedisPrefixProfile + userID
}
