// Copyright (c) 2026 Ladle. All rights reserved.
// Author: an.lequoc.vn@gmail.com

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/lequocan/ladle/internal/platform/apperr"
	"github.com/lequocan/ladle/internal/platform/constants"
	"github.com/lequocan/ladle/internal/platform/ctxutil"
	"github.com/lequocan/ladle/internal/platform/respond"
	"github.com/lequocan/ladle/internal/platform/sec"
)

// SessionResolver resolves an opaque session token into a chef identity.
//
// # Why an interface?
//
// Defining SessionResolver here decouples the middleware from the session
// registry implementation, allowing us to easily inject fakes during unit
// testing. Resolution is a lookup against the registry — the token itself
// is never decoded.
type SessionResolver interface {
	// Resolve returns the identity bound to token, or an UNAUTHORIZED error
	// when the token is blank, unknown, expired, or revoked.
	Resolve(ctx context.Context, token string) (*sec.Identity, error)
}

// Authenticate extracts the session token from the Authorization header and
// resolves it against the session registry.
//
// # Flow
//  1. Check for an 'Authorization' header. An optional 'Bearer ' prefix is
//     tolerated; the original clients send the raw token.
//  2. If absent, the request proceeds as anonymous.
//  3. If present, look the token up via [SessionResolver].
//  4. On success, inject [*sec.Identity] into the request context.
//  5. On failure, the request also proceeds as anonymous — blank, unknown,
//     and revoked tokens are indistinguishable to callers, and protected
//     endpoints reject anonymous requests via [RequireSession].
func Authenticate(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token := TokenFromHeader(request)

			// ── 1. Anonymous Access ───────────────────────────────────────────
			if token == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Registry Lookup ────────────────────────────────────────────
			chef, err := resolver.Resolve(request.Context(), token)
			if err != nil || chef == nil {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 3. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithChef(request.Context(), chef)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireSession blocks requests that did not resolve to a chef identity.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
func RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		chef := ctxutil.GetChef(request.Context())
		if chef == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// TokenFromHeader returns the raw session token carried by the request, or
// an empty string. A 'Bearer ' prefix is stripped when present.
func TokenFromHeader(request *http.Request) string {
	header := strings.TrimSpace(request.Header.Get(constants.HeaderAuthorization))
	if header == "" {
		return ""
	}

	if len(header) > 7 && strings.EqualFold(header[:7], "bearer ") {
		return strings.TrimSpace(header[7:])
	}

	return header
}
