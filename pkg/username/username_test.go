// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package username_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/passport/pkg/username"
)

/*
TestCanonical verifies the NFKC + lowercase + trim pipeline.
*/
func TestCanonical(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"already_canonical", "alice", "alice"},
		{"mixed_case", "AlIcE", "alice"},
		{"surrounding_whitespace", "  alice  ", "alice"},
		{"fullwidth_digits", "ａｌｉｃｅ４２", "alice42"},
		{"ligature", "ﬁre", "fire"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, username.Canonical(tt.input))
		})
	}
}

/*
TestIsValid verifies the permitted character set for canonical names.
*/
func TestIsValid(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		isValid bool
	}{
		{"simple", "alice", true},
		{"with_separators", "alice.b_c-d", true},
		{"digits", "alice42", true},
		{"leading_separator", ".alice", false},
		{"uppercase", "Alice", false},
		{"space_inside", "alice bob", false},
		{"unicode", "アリス", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isValid, username.IsValid(tt.input))
		})
	}
}

/*
TestCanonical_Collision verifies that visually confusable inputs collapse to
the same canonical name.
*/
func TestCanonical_Collision(t *testing.T) {
	variants := []string{"Alice", " alice ", "ＡＬＩＣＥ"}

	for _, variant := range variants {
		assert.Equal(t, "alice", username.Canonical(variant))
	}
}
