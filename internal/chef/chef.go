// Copyright (c) 2026 Ladle. All rights reserved.
// Author: an.lequoc.vn@gmail.com

/*
Package chef implements chef identity and session management.

It defines the core domain entities (Chef, Session) and the logic for
registration, login, and session lifecycle.

# Architecture

This layer is the "Truth" of the system. Entities defined here have no external
dependencies and encapsulate all business rules related to chef identity.
Session validity is established by registry lookup, never by decoding the
token — the registry is the single source of truth.
*/
package chef

import "time"

// # Domain Entities

// Chef represents a registered member of the Ladle platform.
type Chef struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Explicitly omitted from JSON for security.
	CreatedAt    time.Time `json:"created_at"`
}

// Session is the binding between an opaque token and a chef, created at login.
//
// The raw token is never stored; the registry keys on its SHA-256 digest.
type Session struct {
	ChefID   int       `json:"chef_id"`
	Username string    `json:"username"`
	IssuedAt time.Time `json:"issued_at"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the chef domain.
const (
	FieldUsername = "username"
	FieldPassword = "password"
	FieldToken    = "token"
	FieldMessage  = "message"
)

// # Session Constraints

const (
	// SessionTokenLength is the byte length of the random opaque session token.
	SessionTokenLength = 32

	// SessionTTL is the duration a session remains valid without re-login.
	SessionTTL = 24 * time.Hour
)
