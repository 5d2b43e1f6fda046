// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package normalize canonicalizes user-supplied text before it is validated
// and stored.
//
// # Usage
//
// Names and addresses arrive from many keyboards and IMEs. The same visible
// string ("José") can be encoded either precomposed or decomposed, which breaks
// substring search and length limits. Everything is folded to NFC here.
package normalize

import (
	"strings"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Text converts s to Unicode NFC and trims surrounding whitespace.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFC (composes "e" + combining acute into "é").
// 2. Trims leading/trailing whitespace.
func Text(s string) string {
	result, _, err := transform.String(norm.NFC, s)
	if err != nil {
		result = s
	}
	return strings.TrimSpace(result)
}

// Optional applies [Text] to a nullable field, preserving nil.
func Optional(s *string) *string {
	if s == nil {
		return nil
	}
	value := Text(*s)
	return &value
}

// NullIfEmpty applies [Text] and maps blank input to nil.
//
// Optional columns store NULL rather than an empty string.
func NullIfEmpty(s *string) *string {
	value := Optional(s)
	if value == nil || *value == "" {
		return nil
	}
	return value
}
