// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher performs one-way salted password hashing with a fixed work factor.
//
// # Configuration
//
// The cost factor is set once at startup and never mutated. It is injected
// here rather than read from ambient state so that the latency/security
// trade-off is an explicit deployment decision.
type Hasher struct {
	cost int
}

// NewHasher constructs a [Hasher] with the given bcrypt cost.
// Costs outside bcrypt's supported range fall back to the library default.
func NewHasher(cost int) *Hasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &Hasher{cost: cost}
}

// Hash hashes a plain-text password using the bcrypt algorithm.
//
// bcrypt embeds a random per-call salt, so hashing the same input twice
// yields different outputs.
func (hasher *Hasher) Hash(plainTextPassword string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), hasher.cost)
	if err != nil {
		return "", fmt.Errorf("sec: failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

// Verify compares a plain-text password with its hashed version using
// bcrypt's constant-time comparison. It returns false on any mismatch or
// malformed hash, never an error.
func (hasher *Hasher) Verify(plainTextPassword, existingHash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(existingHash), []byte(plainTextPassword))
	return err == nil
}
