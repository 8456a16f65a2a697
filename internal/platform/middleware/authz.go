// Copyright (c) 2026 Daylist. All rights reserved.
// Author: park.suhyeon.dev@gmail.com

package middleware

import (
	"net/http"
	"strings"

	"github.com/suhyeonp/daylist/internal/platform/apperr"
	"github.com/suhyeonp/daylist/internal/platform/constants"
	"github.com/suhyeonp/daylist/internal/platform/ctxutil"
	"github.com/suhyeonp/daylist/internal/platform/respond"
)

// TokenVerifier defines the interface needed to verify session tokens in middleware.
//
// # Why an interface?
//
// Defining TokenVerifier here decouples the middleware from the concrete
// [sec.TokenService], allowing mocks to be injected during unit testing.
type TokenVerifier interface {
	Verify(tokenString string) (int64, error)
}

// Authenticate extracts and verifies the session JWT from the Authorization header.
//
// # Flow
//  1. Check for 'Authorization: Bearer <token>' header.
//  2. If absent, request proceeds as anonymous.
//  3. If present, parse and verify the JWT via [TokenVerifier].
//  4. Inject the account ID into the request context for downstream use.
//
// Note: signup requests also carry a Bearer header, but it holds a provider
// access token rather than a session JWT. Verification failure therefore does
// NOT reject the request here; endpoints that require a session use
// [RequireAuth] after this middleware.
func Authenticate(verifier TokenVerifier) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			authHeader := request.Header.Get(constants.HeaderAuthorization)

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if authHeader == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Format Validation ──────────────────────────────────────────
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 3. Token Verification ─────────────────────────────────────────
			accountID, err := verifier.Verify(parts[1])
			if err != nil {
				// Not a session token. Proceed anonymous; RequireAuth rejects
				// protected routes and the signup handler reads the raw header.
				next.ServeHTTP(writer, request)
				return
			}

			// ── 4. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithAccountID(request.Context(), accountID)
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
		if ctxutil.GetAccountID(request.Context()) == 0 {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}
