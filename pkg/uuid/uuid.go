// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package uuid provides the identifier generators used across the platform.

It wraps the standard UUID library with two flavours:

  - New: Version 7, time-ordered. Used for request correlation ids so log lines
    sort naturally by arrival.
  - Random: Version 4, 122 bits of crypto/rand entropy and no embedded
    structure. Used for opaque session tokens.
*/
package uuid

import "github.com/google/uuid"

// # Generators

// New generates a new UUIDv7 string.
func New() string {

	// Create a new version 7 UUID (time-sortable)
	id, err := uuid.NewV7()

	// Fall back to v4 rather than failing a request over a correlation id
	if err != nil {
		return uuid.NewString()
	}

	return id.String()
}

// Random generates a new UUIDv4 string.
//
// It returns an error instead of panicking because callers use it to mint
// credentials and must surface entropy failures.
func Random() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}
