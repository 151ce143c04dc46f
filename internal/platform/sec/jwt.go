// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package sec provides cryptographic primitives and token management.
//
// # Architecture
//
// This package isolates security-sensitive code (Hashing, JWT Signing) from
// the domain logic. It acts as an Infrastructure service injected into the
// Application layer via small interfaces (e.g. the auth service's TokenIssuer).
package sec

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// AuthClaims represents the payload embedded inside a JWT bearer token.
//
// # Why custom claims?
//
// By embedding the UserID and Name directly inside the JWT, the
// authentication middleware can reconstruct the active user context
// WITHOUT querying the database on every single API request. This keeps
// token verification a pure in-memory operation.
type AuthClaims struct {
	jwt.RegisteredClaims

	// Custom application claims are abbreviated to keep the JWT payload small.
	UserID string `json:"uid"`
	Name   string `json:"unm"`
}

// TokenService handles generation and verification of JWT tokens using HS256.
//
// # Signing Model
//
// Tokens are signed with a process-wide symmetric secret: the same key issues
// and verifies. Token integrity therefore depends entirely on the secrecy of
// that key, which is why the constructor refuses an empty one.
type TokenService struct {
	secret []byte
	issuer string
}

// NewTokenService creates a new TokenService from the process-wide secret.
//
// A missing secret is a configuration error that must fail at startup, not
// per-call: a service that silently signed tokens with an empty key would
// accept forged credentials.
func NewTokenService(secret, issuer string) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("sec: signing secret must not be empty")
	}

	return &TokenService{
		secret: []byte(secret),
		issuer: issuer,
	}, nil
}

// Issue creates a signed bearer token embedding the user's identity claims.
//
// The expiry is derived from the current time plus ttl. Issuance is a pure
// function of its inputs, the clock, and the secret: no state is stored
// server-side.
func (service *TokenService) Issue(userID, name string, timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := AuthClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		UserID: userID,
		Name:   name,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign token: %w", err)
	}

	return signedToken, nil
}

// Verify checks the signature and validity of a JWT string.
//
// Signature mismatch, malformed structure, and elapsed expiry all collapse
// into the same error outcome: callers only need to know the token is not
// acceptable, never why.
func (service *TokenService) Verify(tokenString string) (*AuthClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AuthClaims{}, func(token *jwt.Token) (interface{}, error) {
		// Pin the algorithm family: a token claiming RS256/none must not be
		// verified against the HMAC secret.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	})

	if err != nil {
		return nil, fmt.Errorf("sec: invalid token: %w", err)
	}

	claims, ok := token.Claims.(*AuthClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid token claims")
	}

	return claims, nil
}
