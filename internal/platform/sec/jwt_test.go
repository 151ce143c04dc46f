// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/passport/internal/platform/sec"
)

const testSecret = "unit-test-secret-at-least-32-bytes!!"

/*
TestTokenService_EmptySecret verifies that construction fails fast when no
signing secret is configured.
*/
func TestTokenService_EmptySecret(t *testing.T) {
	service, err := sec.NewTokenService("", "passport.test")

	require.Error(t, err)
	assert.Nil(t, service)
}

/*
TestTokenService_IssueVerify_Roundtrip verifies that a freshly issued token
verifies and carries the original identity claims.
*/
func TestTokenService_IssueVerify_Roundtrip(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "passport.test")
	require.NoError(t, err)

	token, err := service.Issue("user-123", "alice", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := service.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, "user-123", claims.UserID)
	assert.Equal(t, "alice", claims.Name)
	assert.Equal(t, "user-123", claims.Subject)
	assert.Equal(t, "passport.test", claims.Issuer)
}

/*
TestTokenService_Verify_Expired verifies that a token past its TTL is rejected.
*/
func TestTokenService_Verify_Expired(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "passport.test")
	require.NoError(t, err)

	// Negative TTL: the token is already expired at issuance.
	token, err := service.Issue("user-123", "alice", -1*time.Minute)
	require.NoError(t, err)

	claims, err := service.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

/*
TestTokenService_Verify_WrongSecret verifies that a token signed by a
different key does not validate.
*/
func TestTokenService_Verify_WrongSecret(t *testing.T) {
	issuerSvc, err := sec.NewTokenService(testSecret, "passport.test")
	require.NoError(t, err)

	verifierSvc, err := sec.NewTokenService("a-completely-different-secret-value!", "passport.test")
	require.NoError(t, err)

	token, err := issuerSvc.Issue("user-123", "alice", time.Hour)
	require.NoError(t, err)

	claims, err := verifierSvc.Verify(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

/*
TestTokenService_Verify_Malformed verifies that garbage input is rejected.
*/
func TestTokenService_Verify_Malformed(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "passport.test")
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"empty", ""},
		{"not_a_jwt", "garbage"},
		{"truncated", "eyJhbGciOiJIUzI1NiJ9.eyJzdWIiOiIxIn0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := service.Verify(tt.token)
			assert.Error(t, err)
			assert.Nil(t, claims)
		})
	}
}

/*
TestTokenService_Issue_DistinctUsers verifies that different identities
produce different tokens, each carrying its own claims.
*/
func TestTokenService_Issue_DistinctUsers(t *testing.T) {
	service, err := sec.NewTokenService(testSecret, "passport.test")
	require.NoError(t, err)

	tokenA, err := service.Issue("user-a", "alice", time.Hour)
	require.NoError(t, err)

	tokenB, err := service.Issue("user-b", "bob", time.Hour)
	require.NoError(t, err)

	assert.NotEqual(t, tokenA, tokenB)

	claimsB, err := service.Verify(tokenB)
	require.NoError(t, err)
	assert.Equal(t, "bob", claimsB.Name)
}
