// Copyright (c) 2026 Ladle. All rights reserved.
// Author: an.lequoc.vn@gmail.com

package chef

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lequocan/ladle/internal/platform/apperr"
	"github.com/lequocan/ladle/internal/platform/constants"
	"github.com/lequocan/ladle/internal/platform/sec"
)

// RedisSessionRegistry implements SessionRegistry using Redis.
//
// # Storage Layout
//
// Each session lives under "auth:session:<sha256(token)>" with the [Session]
// binding serialized as JSON and a TTL of [SessionTTL]. Expiry and revocation
// therefore need no background sweeper: Redis evicts stale keys itself.
type RedisSessionRegistry struct {
	client *redis.Client
}

// NewRedisSessionRegistry creates a new Redis-backed SessionRegistry.
func NewRedisSessionRegistry(client *redis.Client) *RedisSessionRegistry {
	return &RedisSessionRegistry{client: client}
}

/*
Issue generates a fresh opaque token and binds it to the chef.

Description: The token is 32 bytes of crypto/rand output; collisions among
active tokens are cryptographically negligible, so Issue never re-checks.

Parameters:
  - context: context.Context
  - chef: *Chef

Returns:
  - string: The raw token handed to the client (never persisted)
  - error: Token generation or storage failures
*/
func (registry *RedisSessionRegistry) Issue(context context.Context, chef *Chef) (string, error) {

	// Generate the opaque token
	token, err := sec.GenerateSecureToken(SessionTokenLength)
	if err != nil {
		return "", fmt.Errorf("redis_session_issue_token_failed: %w", err)
	}

	// Serialize the binding
	session := Session{
		ChefID:   chef.ID,
		Username: chef.Username,
		IssuedAt: time.Now(),
	}
	payload, err := json.Marshal(session)
	if err != nil {
		return "", fmt.Errorf("redis_session_marshal_failed: %w", err)
	}

	// Store under the token digest with the session TTL
	key := constants.RedisPrefixSession + sec.HashToken(token)
	if err := registry.client.Set(context, key, payload, SessionTTL).Err(); err != nil {
		return "", fmt.Errorf("redis_session_set_failed: %w", err)
	}

	return token, nil
}

/*
Resolve looks a token up and returns the bound chef identity.

Description: Blank, unknown, expired, and revoked tokens all yield the same
UNAUTHORIZED error so callers cannot distinguish why a token is dead.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - *sec.Identity: The bound chef
  - error: apperr.Unauthorized or connectivity errors
*/
func (registry *RedisSessionRegistry) Resolve(context context.Context, token string) (*sec.Identity, error) {
	if token == "" {
		return nil, apperr.Unauthorized("Invalid or expired session")
	}

	key := constants.RedisPrefixSession + sec.HashToken(token)
	payload, err := registry.client.Get(context, key).Bytes()

	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, apperr.Unauthorized("Invalid or expired session")
		}
		return nil, fmt.Errorf("redis_session_get_failed: %w", err)
	}

	var session Session
	if err := json.Unmarshal(payload, &session); err != nil {
		return nil, fmt.Errorf("redis_session_unmarshal_failed: %w", err)
	}

	return &sec.Identity{ChefID: session.ChefID, Username: session.Username}, nil
}

/*
Revoke idempotently invalidates a token.

Description: Deleting an unknown or already-deleted key is a no-op, which
matches the registry contract.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - error: Connectivity failures only
*/
func (registry *RedisSessionRegistry) Revoke(context context.Context, token string) error {
	if token == "" {
		return nil
	}

	key := constants.RedisPrefixSession + sec.HashToken(token)
	if err := registry.client.Del(context, key).Err(); err != nil {
		return fmt.Errorf("redis_session_del_failed: %w", err)
	}

	return nil
}
