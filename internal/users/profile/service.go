// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import (
	"context"
	"log/slog"

	"github.com/taibuivan/passport/internal/users/auth"
)

// # Service

// Service serves profile reads with a Redis read-through in front of the
// credential store.
type Service struct {
	userStore auth.UserStore
	cache     Cache
	logger    *slog.Logger
}

// NewService constructs a profile [Service] with its dependencies.
func NewService(store auth.UserStore, cache Cache, logger *slog.Logger) *Service {
	return &Service{
		userStore: store,
		cache:     cache,
		logger:    logger,
	}
}

/*
Get returns the profile for the given user ID.

Description: Read-through flow — the cache is consulted first; on a miss the
account is loaded from the store and the cache is repopulated best-effort.
Cache failures never fail the request: the store remains the source of truth.

Parameters:
  - context: context.Context
  - userID: string (UUIDv7 from the verified token)

Returns:
  - *Profile: Public projection of the account
  - error: apperr.NotFound if the account no longer exists, or storage errors
*/
func (service *Service) Get(context context.Context, userID string) (*Profile, error) {

	// 1. Fast path: serve from Redis when present.
	if cached, err := service.cache.Get(context, userID); err == nil {
		return cached, nil
	}

	// 2. Miss (or cache outage): fall back to the credential store.
	user, err := service.userStore.FindByID(context, userID)
	if err != nil {
		return nil, err
	}

	profile := &Profile{
		ID:        user.ID,
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}

	// 3. Repopulate best-effort. A failed Set is logged, never surfaced.
	if err := service.cache.Set(context, profile); err != nil {
		service.logger.WarnContext(context, "profile_cache_set_failed",
			slog.String("user_id", userID),
			slog.String("error", err.Error()),
		)
	}

	return profile, nil
}
