// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements the core identity system of Passport.

It handles user registration, secure password hashing, and stateless
bearer-token login.

Architecture:

  - Service: Orchestrates business logic (Register, Login).
  - Store: Abstracted interface for the PostgreSQL credential store.
  - Security: Leverages bcrypt and HMAC-signed JWTs via internal/platform/sec.

Tokens are never stored server-side: they expire by their embedded timestamp
and are verified statelessly on every protected request.
*/
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/taibuivan/passport/internal/platform/apperr"
	"github.com/taibuivan/passport/internal/platform/sec"
	"github.com/taibuivan/passport/pkg/username"
	"github.com/taibuivan/passport/pkg/uuidv7"
)

// # Contracts & Types

// TokenIssuer defines the contract for generating bearer tokens.
type TokenIssuer interface {
	// Issue creates a signed JWT string for the given user.
	//
	// # Parameters
	//   - userID: The ID of the account.
	//   - name: The unique name of the account.
	//   - timeToLive: The duration before the token expires.
	//
	// # Returns
	//   - A signed JWT string, or an err if signing fails.
	Issue(userID, name string, timeToLive time.Duration) (string, error)
}

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed by the security team.
type Service struct {
	userStore   UserStore
	hasher      *sec.Hasher
	tokenIssuer TokenIssuer
}

// NewService constructs a new auth [Service] with necessary dependencies.
func NewService(store UserStore, hasher *sec.Hasher, issuer TokenIssuer) *Service {
	return &Service{
		userStore:   store,
		hasher:      hasher,
		tokenIssuer: issuer,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new account.
type RegisterInput struct {
	Name     string
	Password string
}

/*
Register hashes the password and persists a brand new user account.

Description: The password is hashed explicitly here, before the record is
handed to the store — the store performs no implicit transformation. Uniqueness
is settled by the store's constraint, so two concurrent registrations with the
same name resolve to exactly one success and one Conflict. Registration does
NOT auto-login; the client must call Login afterwards.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: Created entity
  - err: Conflict (if the name is taken) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {

	// Canonicalize before hashing/storage so lookalike names collide.
	name := username.Canonical(input.Name)

	// Prevent storing plain-text passwords.
	hashedPassword, err := service.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	// Construct the new User entity. Time-sortable ID to prevent PG index fragmentation.
	user := &User{
		ID:           uuidv7.New(),
		Name:         name,
		PasswordHash: hashedPassword,
	}

	// Persist the user. A duplicate name surfaces as apperr.Conflict from the store.
	if err := service.userStore.Create(context, user); err != nil {
		return nil, err
	}

	return user, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Name     string
	Password string
}

// LoginSession represents a successfully authenticated login.
type LoginSession struct {
	Token string
	User  *User
}

/*
Login validates user credentials and issues a bearer token.

Description: Fetches the account by name, performs constant-time password
comparison, and issues an HMAC-signed token with the user's identity claims
and the fixed TTL.

An unknown name and a wrong password produce the SAME generic Unauthorized
error: the response must not reveal whether an account exists.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: Token plus the authenticated user
  - err: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {

	// Look up by canonical name.
	user, err := service.userStore.FindByName(context, username.Canonical(input.Name))
	if err != nil {

		// Unknown account: generic message to prevent enumeration.
		if apperr.IsNotFound(err) {
			return nil, apperr.Unauthorized("Invalid login credentials")
		}

		// Anything else is a storage failure, not a credential failure.
		// It must surface as a server-side error, never a 401.
		return nil, fmt.Errorf("auth_service_login_lookup_failed: %w", err)
	}

	// Verify password hash using constant-time comparison in bcrypt to prevent timing attacks
	if !service.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// Issue the stateless bearer token with {id, name} claims.
	token, err := service.tokenIssuer.Issue(user.ID, user.Name, AccessTokenTTL)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_issue_failed: %w", err)
	}

	return &LoginSession{
		Token: token,
		User:  user,
	}, nil
}
