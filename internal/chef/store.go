// Copyright (c) 2026 Ladle. All rights reserved.
// Author: an.lequoc.vn@gmail.com

package chef

import (
	"context"

	"github.com/lequocan/ladle/internal/platform/sec"
)

// # Chef Data Access

// Repository defines the data access contract for chef accounts.
type Repository interface {

	/*
		FindByID returns the chef with the given ID.

		Parameters:
		  - context: context.Context
		  - id: int

		Returns:
		  - *Chef: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByID(context context.Context, id int) (*Chef, error)

	/*
		FindByUsername returns the chef with the given username.

		The match is exact and case-sensitive.

		Parameters:
		  - context: context.Context
		  - username: string

		Returns:
		  - *Chef: Hydrated entity
		  - error: apperr.NotFound or database retrieval failures
	*/
	FindByUsername(context context.Context, username string) (*Chef, error)

	/*
		Create persists a brand-new chef account and assigns its ID.

		Parameters:
		  - context: context.Context
		  - chef: *Chef (ID is populated on success)

		Returns:
		  - error: Persistence failures
	*/
	Create(context context.Context, chef *Chef) error
}

// # Session Registry

// SessionRegistry owns the token-to-chef binding for active sessions.
//
// # Contract
//
//   - Issue generates a token unique among all active tokens and binds it to
//     the chef, recording the creation time.
//   - Resolve returns the bound identity for a valid token. Blank, unknown,
//     expired, and revoked tokens are indistinguishable: all yield an
//     UNAUTHORIZED error.
//   - Revoke idempotently invalidates a token; revoking an unknown or
//     already-revoked token is a no-op, not a failure.
//
// Implementations must be safe for concurrent use.
type SessionRegistry interface {
	Issue(context context.Context, chef *Chef) (string, error)
	Resolve(context context.Context, token string) (*sec.Identity, error)
	Revoke(context context.Context, token string) error
}
