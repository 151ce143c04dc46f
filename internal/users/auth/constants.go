// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "time"

// # Authentication Constraints

const (
	// AccessTokenTTL is the duration a bearer token remains valid.
	//
	// One policy for the whole system: every issued token lives exactly one
	// hour, after which the client must log in again (no refresh mechanism).
	AccessTokenTTL = 1 * time.Hour

	// MinNameLength is the minimum accepted account name length.
	MinNameLength = 3

	// MaxNameLength is the maximum accepted account name length.
	MaxNameLength = 32

	// MinPasswordLength is the minimum accepted password length.
	MinPasswordLength = 8
)
