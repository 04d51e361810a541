// Copyright (c) 2026 Ladle. All rights reserved.
// Author: an.lequoc.vn@gmail.com

// Package sec provides security primitives for the Ladle platform: password
// hashing, opaque session token generation, and the resolved chef identity
// carried through request contexts.
//
// # Architecture
//
// This package isolates security-sensitive code from the domain logic. Session
// tokens are deliberately opaque: they carry no claims and are validated by
// registry lookup only, never by decoding. The session registry stays the single
// source of truth for token validity, which removes any cryptographic-forgery
// surface at the cost of a lookup per authenticated request.
package sec

// Identity is the resolved chef behind a valid session token.
//
// It is the only authentication artifact handed to downstream handlers; the
// token itself never travels past the middleware.
type Identity struct {
	ChefID   int    `json:"chef_id"`
	Username string `json:"username"`
}
