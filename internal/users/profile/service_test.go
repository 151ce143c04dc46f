// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/passport/internal/platform/apperr"
	"github.com/taibuivan/passport/internal/users/auth"
	"github.com/taibuivan/passport/internal/users/profile"
)

// fakeUserStore serves a fixed set of users and counts lookups so tests can
// assert on cache behavior.
type fakeUserStore struct {
	users     map[string]*auth.User
	findCalls int
}

func (store *fakeUserStore) Create(_ context.Context, _ *auth.User) error {
	return errors.New("not implemented")
}

func (store *fakeUserStore) FindByName(_ context.Context, _ string) (*auth.User, error) {
	return nil, errors.New("not implemented")
}

func (store *fakeUserStore) FindByID(_ context.Context, id string) (*auth.User, error) {
	store.findCalls++
	user, exists := store.users[id]
	if !exists {
		return nil, apperr.NotFound("User")
	}
	return user, nil
}

// mapCache is an in-memory [profile.Cache] without expiry.
type mapCache struct {
	entries  map[string]*profile.Profile
	setCalls int
	failSet  bool
}

func newMapCache() *mapCache {
	return &mapCache{entries: make(map[string]*profile.Profile)}
}

func (cache *mapCache) Get(_ context.Context, userID string) (*profile.Profile, error) {
	entry, exists := cache.entries[userID]
	if !exists {
		return nil, apperr.NotFound("Profile")
	}
	return entry, nil
}

func (cache *mapCache) Set(_ context.Context, entry *profile.Profile) error {
	cache.setCalls++
	if cache.failSet {
		return errors.New("cache unavailable")
	}
	cache.entries[entry.ID] = entry
	return nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

/*
TestService_Get_MissPopulatesCache verifies the read-through flow: a cache
miss falls back to the store and repopulates the cache.
*/
func TestService_Get_MissPopulatesCache(t *testing.T) {
	store := &fakeUserStore{users: map[string]*auth.User{
		"user-123": {ID: "user-123", Name: "alice", CreatedAt: time.Now()},
	}}
	cache := newMapCache()
	service := profile.NewService(store, cache, discardLogger())

	result, err := service.Get(context.Background(), "user-123")
	require.NoError(t, err)
	assert.Equal(t, "alice", result.Name)
	assert.Equal(t, 1, store.findCalls)
	assert.Equal(t, 1, cache.setCalls)

	// The cache now holds the profile.
	cached, err := cache.Get(context.Background(), "user-123")
	require.NoError(t, err)
	assert.Equal(t, "alice", cached.Name)
}

/*
TestService_Get_HitSkipsStore verifies that a warm cache serves the profile
without touching the store.
*/
func TestService_Get_HitSkipsStore(t *testing.T) {
	store := &fakeUserStore{users: map[string]*auth.User{
		"user-123": {ID: "user-123", Name: "alice"},
	}}
	cache := newMapCache()
	service := profile.NewService(store, cache, discardLogger())

	// First call warms the cache, second must be store-free.
	_, err := service.Get(context.Background(), "user-123")
	require.NoError(t, err)

	_, err = service.Get(context.Background(), "user-123")
	require.NoError(t, err)

	assert.Equal(t, 1, store.findCalls)
}

/*
TestService_Get_UnknownUser verifies that a missing account surfaces as
NotFound.
*/
func TestService_Get_UnknownUser(t *testing.T) {
	store := &fakeUserStore{users: map[string]*auth.User{}}
	service := profile.NewService(store, newMapCache(), discardLogger())

	result, err := service.Get(context.Background(), "ghost")
	require.Error(t, err)
	assert.Nil(t, result)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}

/*
TestService_Get_CacheSetFailureIsNonFatal verifies that a broken cache write
never fails the read path.
*/
func TestService_Get_CacheSetFailureIsNonFatal(t *testing.T) {
	store := &fakeUserStore{users: map[string]*auth.User{
		"user-123": {ID: "user-123", Name: "alice"},
	}}
	cache := newMapCache()
	cache.failSet = true
	service := profile.NewService(store, cache, discardLogger())

	result, err := service.Get(context.Background(), "user-123")
	require.NoError(t, err)
	assert.Equal(t, "alice", result.Name)
}
