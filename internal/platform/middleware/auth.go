// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/taibuivan/contacts/internal/platform/apperr"
	"github.com/taibuivan/contacts/internal/platform/constants"
	"github.com/taibuivan/contacts/internal/platform/ctxutil"
	"github.com/taibuivan/contacts/internal/platform/respond"
	"github.com/taibuivan/contacts/internal/platform/sec"
)

// TokenResolver maps an opaque session token to the user that owns it.
//
// # Why an interface?
//
// Defining TokenResolver here decouples the middleware from the account
// service, allowing us to inject fakes during unit testing.
type TokenResolver interface {
	// ResolveToken returns the owning user, or a 404 [apperr.AppError] when no
	// user currently holds token.
	ResolveToken(ctx context.Context, token string) (*sec.AuthUser, error)
}

// Authenticate resolves the raw token in the Authorization header.
//
// # Flow
//  1. Read the 'Authorization: <token>' header (no scheme prefix).
//  2. If absent or blank, the request proceeds as anonymous.
//  3. If present, resolve it via [TokenResolver]. Unknown tokens also proceed
//     as anonymous so public routes keep working; [RequireAuth] rejects them.
//  4. Inject [*sec.AuthUser] into the request context for downstream use.
func Authenticate(resolver TokenResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token := strings.TrimSpace(request.Header.Get(constants.HeaderAuthorization))

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if token == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Token Resolution ───────────────────────────────────────────
			user, err := resolver.ResolveToken(request.Context(), token)
			if err != nil {
				if apperr.IsNotFound(err) {
					next.ServeHTTP(writer, request)
					return
				}
				respond.Error(writer, request, err)
				return
			}

			// ── 3. Context Injection ──────────────────────────────────────────
			if holder, ok := request.Context().Value(identityHolderKey{}).(*identityHolder); ok {
				holder.username = user.Username
			}

			ctx := ctxutil.WithAuthUser(request.Context(), user)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		if ctxutil.GetAuthUser(request.Context()) == nil {
			respond.Error(writer, request, apperr.Unauthorized("Unauthorized"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}
