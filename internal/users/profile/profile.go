// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package profile serves the read-side view of a user account.

It answers "who am I" requests for authenticated callers. Profiles are
immutable projections of the account record, which makes them ideal cache
candidates: a Redis read-through layer absorbs the hot path so repeated
token-bearing requests do not hit PostgreSQL.

# Architecture

  - Service: Read-through orchestration (cache first, store on miss).
  - Cache: Abstracted interface over Redis with TTL-based expiry.
  - Store: Delegates to the auth package's credential store for truth.
*/
package profile

import (
	"time"
)

// # Constants

const (
	// CacheTTL bounds how stale a cached profile may get. Profiles are
	// immutable today, so the TTL mainly caps memory usage.
	CacheTTL = 10 * time.Minute
)

// # Domain Entities

// Profile is the public, read-only projection of an account.
type Profile struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
