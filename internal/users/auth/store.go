// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "context"

// # User Data Access

// UserStore defines the data access contract for user accounts.
//
// Implementations must enforce name uniqueness atomically: of two concurrent
// [UserStore.Create] calls with the same name, at most one may succeed.
type UserStore interface {

	/*
		Create persists a brand-new user account to the storage.

		Parameters:
		  - context: context.Context
		  - user: *User

		Returns:
		  - error: apperr.Conflict when the name is already taken, or
		    persistence failures
	*/
	Create(context context.Context, user *User) error

	/*
		FindByName returns the account with the given (canonical) name.

		Parameters:
		  - context: context.Context
		  - name: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByName(context context.Context, name string) (*User, error)

	/*
		FindByID returns the account with the given ID.

		Parameters:
		  - context: context.Context
		  - id: string

		Returns:
		  - *User: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByID(context context.Context, id string) (*User, error)
}
