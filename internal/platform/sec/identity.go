// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// AuthUser is the identity resolved from a session token.
//
// # Why here?
//
// It lives in sec rather than in the account domain so that middleware and
// ctxutil can carry it without importing domain packages.
type AuthUser struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}
