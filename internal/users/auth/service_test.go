// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/taibuivan/passport/internal/platform/apperr"
	"github.com/taibuivan/passport/internal/platform/constants"
	"github.com/taibuivan/passport/internal/platform/sec"
	"github.com/taibuivan/passport/internal/users/auth"
)

// memoryUserStore is an in-memory [auth.UserStore] that mirrors the database
// contract: name uniqueness is enforced atomically under a mutex.
type memoryUserStore struct {
	mu     sync.Mutex
	byName map[string]*auth.User
	byID   map[string]*auth.User
}

func newMemoryUserStore() *memoryUserStore {
	return &memoryUserStore{
		byName: make(map[string]*auth.User),
		byID:   make(map[string]*auth.User),
	}
}

func (store *memoryUserStore) Create(_ context.Context, user *auth.User) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if _, exists := store.byName[user.Name]; exists {
		return apperr.Conflict("Name is already taken")
	}

	copied := *user
	store.byName[user.Name] = &copied
	store.byID[user.ID] = &copied
	return nil
}

func (store *memoryUserStore) FindByName(_ context.Context, name string) (*auth.User, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	user, exists := store.byName[name]
	if !exists {
		return nil, apperr.NotFound("User")
	}
	copied := *user
	return &copied, nil
}

func (store *memoryUserStore) FindByID(_ context.Context, id string) (*auth.User, error) {
	store.mu.Lock()
	defer store.mu.Unlock()

	user, exists := store.byID[id]
	if !exists {
		return nil, apperr.NotFound("User")
	}
	copied := *user
	return &copied, nil
}

// newTestService wires a real hasher (minimum cost for speed) and a real
// token service against the in-memory store.
func newTestService(t *testing.T) (*auth.Service, *memoryUserStore, *sec.TokenService) {
	t.Helper()

	store := newMemoryUserStore()
	hasher := sec.NewHasher(bcrypt.MinCost)
	tokenSvc, err := sec.NewTokenService("unit-test-secret-at-least-32-bytes!!", constants.AuthIssuer)
	require.NoError(t, err)

	return auth.NewService(store, hasher, tokenSvc), store, tokenSvc
}

/*
TestService_Register verifies that registration stores a hashed password and
returns the created account.
*/
func TestService_Register(t *testing.T) {
	service, store, _ := newTestService(t)
	ctx := context.Background()

	user, err := service.Register(ctx, auth.RegisterInput{Name: "alice", Password: "hunter2hunter2"})
	require.NoError(t, err)

	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice", user.Name)

	// The stored record must hold a bcrypt digest, never the plaintext.
	stored, err := store.FindByName(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2hunter2", stored.PasswordHash)
	assert.NotContains(t, stored.PasswordHash, "hunter2")
}

/*
TestService_Register_CanonicalName verifies that lookalike names collide on
registration.
*/
func TestService_Register_CanonicalName(t *testing.T) {
	service, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, auth.RegisterInput{Name: "Alice", Password: "hunter2hunter2"})
	require.NoError(t, err)

	// Same name modulo case and whitespace must be a Conflict.
	_, err = service.Register(ctx, auth.RegisterInput{Name: "  ALICE ", Password: "otherpassword"})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, http.StatusConflict, ae.HTTPStatus)
}

/*
TestService_Register_Duplicate verifies that a duplicate registration fails
with Conflict and leaves the original credentials untouched.
*/
func TestService_Register_Duplicate(t *testing.T) {
	service, store, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, auth.RegisterInput{Name: "alice", Password: "original-pass"})
	require.NoError(t, err)

	original, err := store.FindByName(ctx, "alice")
	require.NoError(t, err)

	_, err = service.Register(ctx, auth.RegisterInput{Name: "alice", Password: "attacker-pass"})
	require.Error(t, err)

	// The first account's hash must be unchanged.
	after, err := store.FindByName(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, original.PasswordHash, after.PasswordHash)

	// The original password still logs in.
	session, err := service.Login(ctx, auth.LoginInput{Name: "alice", Password: "original-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
}

/*
TestService_Login_Roundtrip verifies that a registered user can log in and
receives a verifiable token carrying their identity.
*/
func TestService_Login_Roundtrip(t *testing.T) {
	service, _, tokenSvc := newTestService(t)
	ctx := context.Background()

	created, err := service.Register(ctx, auth.RegisterInput{Name: "alice", Password: "hunter2hunter2"})
	require.NoError(t, err)

	session, err := service.Login(ctx, auth.LoginInput{Name: "alice", Password: "hunter2hunter2"})
	require.NoError(t, err)
	require.NotEmpty(t, session.Token)
	assert.Equal(t, created.ID, session.User.ID)

	claims, err := tokenSvc.Verify(session.Token)
	require.NoError(t, err)
	assert.Equal(t, created.ID, claims.UserID)
	assert.Equal(t, "alice", claims.Name)
}

/*
TestService_Login_GenericFailure verifies that an unknown name and a wrong
password are indistinguishable from the caller's perspective.
*/
func TestService_Login_GenericFailure(t *testing.T) {
	service, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := service.Register(ctx, auth.RegisterInput{Name: "alice", Password: "hunter2hunter2"})
	require.NoError(t, err)

	_, unknownErr := service.Login(ctx, auth.LoginInput{Name: "nobody", Password: "hunter2hunter2"})
	require.Error(t, unknownErr)

	_, wrongErr := service.Login(ctx, auth.LoginInput{Name: "alice", Password: "wrong-password"})
	require.Error(t, wrongErr)

	unknownAE := apperr.As(unknownErr)
	wrongAE := apperr.As(wrongErr)
	require.NotNil(t, unknownAE)
	require.NotNil(t, wrongAE)

	// Identical status, code, and message: no account enumeration signal.
	assert.Equal(t, http.StatusUnauthorized, unknownAE.HTTPStatus)
	assert.Equal(t, unknownAE.Code, wrongAE.Code)
	assert.Equal(t, unknownAE.Message, wrongAE.Message)
}

// unavailableUserStore simulates a storage outage: every lookup fails with a
// wrapped transport error, the way the Postgres store reports them.
type unavailableUserStore struct{}

func (store *unavailableUserStore) Create(_ context.Context, _ *auth.User) error {
	return fmt.Errorf("postgres_user_store_create_failed: %w", errors.New("dial tcp: connection refused"))
}

func (store *unavailableUserStore) FindByName(_ context.Context, _ string) (*auth.User, error) {
	return nil, fmt.Errorf("postgres_user_store_find_by_name_failed: %w", errors.New("dial tcp: connection refused"))
}

func (store *unavailableUserStore) FindByID(_ context.Context, _ string) (*auth.User, error) {
	return nil, fmt.Errorf("postgres_user_store_find_by_id_failed: %w", errors.New("dial tcp: connection refused"))
}

/*
TestService_Login_StoreOutage verifies that a storage failure during login is
NOT reported as a credential failure: only an unknown account may collapse to
the generic 401.
*/
func TestService_Login_StoreOutage(t *testing.T) {
	hasher := sec.NewHasher(bcrypt.MinCost)
	tokenSvc, err := sec.NewTokenService("unit-test-secret-at-least-32-bytes!!", constants.AuthIssuer)
	require.NoError(t, err)

	service := auth.NewService(&unavailableUserStore{}, hasher, tokenSvc)

	session, err := service.Login(context.Background(), auth.LoginInput{
		Name:     "alice",
		Password: "hunter2hunter2",
	})
	require.Error(t, err)
	assert.Nil(t, session)

	// The error must propagate as a server-side failure, so the boundary maps
	// it to a 5xx instead of the generic 401.
	ae := apperr.As(err)
	if ae != nil {
		assert.NotEqual(t, http.StatusUnauthorized, ae.HTTPStatus)
	}
	assert.NotEqual(t, "Invalid login credentials", err.Error())
	assert.Contains(t, err.Error(), "auth_service_login_lookup_failed")
}
