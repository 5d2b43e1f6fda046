// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package pointer builds pointers to literals for optional fields.
package pointer

// To returns a pointer to the provided value.
func To[T any](v T) *T {
	return &v
}
