// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/passport/internal/platform/middleware"
)

// envConfig is a minimal [middleware.AppConfig] for CORS tests.
type envConfig struct {
	development bool
}

func (c envConfig) IsDevelopment() bool { return c.development }

/*
TestCORS_ProductionOriginBoundary verifies that the production allow-list
matches the apex domain and its subdomains only, on a dot boundary.
*/
func TestCORS_ProductionOriginBoundary(t *testing.T) {
	tests := []struct {
		name    string
		origin  string
		allowed bool
	}{
		{"apex_domain", "https://yomira.app", true},
		{"subdomain", "https://app.yomira.app", true},
		{"lookalike_suffix", "https://evil-yomira.app", false},
		{"unrelated_domain", "https://example.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.CORS(envConfig{development: false})(http.HandlerFunc(
				func(writer http.ResponseWriter, request *http.Request) {
					writer.WriteHeader(http.StatusOK)
				}))

			request := httptest.NewRequest(http.MethodGet, "/", nil)
			request.Header.Set("Origin", tt.origin)
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)

			allowOrigin := recorder.Header().Get("Access-Control-Allow-Origin")
			if tt.allowed {
				assert.Equal(t, tt.origin, allowOrigin)
			} else {
				assert.Empty(t, allowOrigin)
			}
		})
	}
}

/*
TestCORS_DevelopmentAllowsAll verifies the relaxed development posture.
*/
func TestCORS_DevelopmentAllowsAll(t *testing.T) {
	handler := middleware.CORS(envConfig{development: true})(http.HandlerFunc(
		func(writer http.ResponseWriter, request *http.Request) {
			writer.WriteHeader(http.StatusOK)
		}))

	request := httptest.NewRequest(http.MethodGet, "/", nil)
	request.Header.Set("Origin", "http://localhost:3000")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, "http://localhost:3000", recorder.Header().Get("Access-Control-Allow-Origin"))
}

/*
TestCORS_Preflight verifies that OPTIONS requests short-circuit with 204.
*/
func TestCORS_Preflight(t *testing.T) {
	handler := middleware.CORS(envConfig{development: false})(http.HandlerFunc(
		func(writer http.ResponseWriter, request *http.Request) {
			t.Fatal("preflight must not reach the next handler")
		}))

	request := httptest.NewRequest(http.MethodOptions, "/", nil)
	request.Header.Set("Origin", "https://yomira.app")
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusNoContent, recorder.Code)
}
