// Copyright (c) 2026 Ladle. All rights reserved.
// Author: an.lequoc.vn@gmail.com

package chef

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lequocan/ladle/internal/platform/apperr"
	"github.com/lequocan/ladle/internal/platform/sec"
)

// MemorySessionRegistry implements SessionRegistry with a mutex-guarded map.
//
// It is used by unit tests and is a valid wiring for single-node development
// setups where Redis is not available. Sessions honor [SessionTTL] the same
// way the Redis registry does; expired entries are dropped lazily on Resolve.
type MemorySessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]Session

	// now is swappable so tests can drive expiry deterministically.
	now func() time.Time
}

// NewMemorySessionRegistry creates an empty in-memory SessionRegistry.
func NewMemorySessionRegistry() *MemorySessionRegistry {
	return &MemorySessionRegistry{
		sessions: make(map[string]Session),
		now:      time.Now,
	}
}

// Issue generates a fresh opaque token and binds it to the chef.
func (registry *MemorySessionRegistry) Issue(_ context.Context, chef *Chef) (string, error) {
	token, err := sec.GenerateSecureToken(SessionTokenLength)
	if err != nil {
		return "", fmt.Errorf("memory_session_issue_token_failed: %w", err)
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	registry.sessions[sec.HashToken(token)] = Session{
		ChefID:   chef.ID,
		Username: chef.Username,
		IssuedAt: registry.now(),
	}

	return token, nil
}

// Resolve looks a token up and returns the bound chef identity.
func (registry *MemorySessionRegistry) Resolve(_ context.Context, token string) (*sec.Identity, error) {
	if token == "" {
		return nil, apperr.Unauthorized("Invalid or expired session")
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	digest := sec.HashToken(token)
	session, found := registry.sessions[digest]
	if !found {
		return nil, apperr.Unauthorized("Invalid or expired session")
	}

	// Lazy expiry: drop the binding on first lookup past the TTL.
	if registry.now().Sub(session.IssuedAt) > SessionTTL {
		delete(registry.sessions, digest)
		return nil, apperr.Unauthorized("Invalid or expired session")
	}

	return &sec.Identity{ChefID: session.ChefID, Username: session.Username}, nil
}

// Revoke idempotently invalidates a token.
func (registry *MemorySessionRegistry) Revoke(_ context.Context, token string) error {
	if token == "" {
		return nil
	}

	registry.mu.Lock()
	defer registry.mu.Unlock()

	delete(registry.sessions, sec.HashToken(token))
	return nil
}
