// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package profile

import "context"

// # Cache Contract

// Cache defines the volatile storage contract for profiles.
//
// Implementations must treat a missing entry as [apperr.NotFound] so the
// service can distinguish "cache miss" from "cache broken".
type Cache interface {

	/*
		Get returns the cached profile for the given user ID.

		Parameters:
		  - context: context.Context
		  - userID: string

		Returns:
		  - *Profile: Cached entity
		  - error: apperr.NotFound on a miss, or connectivity failures
	*/
	Get(context context.Context, userID string) (*Profile, error)

	/*
		Set stores the profile under its user ID with the package TTL.

		Parameters:
		  - context: context.Context
		  - profile: *Profile

		Returns:
		  - error: Serialization or connectivity failures
	*/
	Set(context context.Context, profile *Profile) error
}
