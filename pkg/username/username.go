// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package username canonicalizes account names before storage and lookup.
//
// # Usage
//
// Names are the unique login identifier for an account. Canonicalizing them
// once, at the service boundary, means visually identical inputs (fullwidth
// digits, compatibility ligatures, stray whitespace, mixed case) collide
// deterministically against the database's unique constraint instead of
// creating near-duplicate accounts.
package username

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// validName matches a canonical name: lowercase letters, digits, and the
// separators '.', '_' and '-', never at the start.
var validName = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

// Canonical converts an arbitrary Unicode string into the canonical form used
// for storage and lookup.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFKC (folds fullwidth and compatibility forms).
// 2. Converts to lowercase.
// 3. Trims surrounding whitespace.
func Canonical(s string) string {
	result := norm.NFKC.String(s)
	result = strings.ToLower(result)
	return strings.TrimSpace(result)
}

// IsValid reports whether a canonical name uses only the permitted character
// set. It expects its input to already be in [Canonical] form.
func IsValid(s string) bool {
	return validName.MatchString(s)
}
