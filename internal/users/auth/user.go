// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import "time"

// # Domain Entities

// User represents a registered account.
//
// # Invariants
//
// Name is unique across all accounts (enforced by the store) and immutable
// after creation. PasswordHash holds only the bcrypt digest — never the
// plaintext — and never crosses the service boundary.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// PublicUser is the transport-safe projection of a [User].
type PublicUser struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Public returns the projection of the user that is safe to return to clients.
func (user *User) Public() PublicUser {
	return PublicUser{ID: user.ID, Name: user.Name}
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldName     = "name"
	FieldPassword = "password"
	FieldToken    = "token"
	FieldUser     = "user"
	FieldMessage  = "message"
)
