// Copyright (c) 2026 Ladle. All rights reserved.
// Author: an.lequoc.vn@gmail.com

package chef

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/lequocan/ladle/internal/platform/apperr"
	"github.com/lequocan/ladle/internal/platform/sec"
)

// Service implements chef registration and authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, registration,
// or login logic must be reviewed carefully.
type Service struct {
	repository Repository
	sessions   SessionRegistry
	logger     *slog.Logger
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(repository Repository, sessions SessionRegistry, logger *slog.Logger) *Service {
	return &Service{
		repository: repository,
		sessions:   sessions,
		logger:     logger,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new chef.
type RegisterInput struct {
	Username string
	Password string
}

/*
Register validates, hashes, and persists a brand new chef account.

Description: The username conflict check is a lookup-before-create, matching
the storage contract: uniqueness is enforced here, not by the store.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *Chef: Created entity
  - error: Conflict (if the username is taken) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*Chef, error) {

	// Verify username uniqueness. Return a client-safe Conflict error.
	_, err := service.repository.FindByUsername(context, input.Username)
	if err == nil {
		return nil, apperr.Conflict("Username already exists")
	}

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("chef_service_hash_failed: %w", err)
	}

	chef := &Chef{
		Username:     input.Username,
		PasswordHash: hashedPassword,
	}

	// Persist the chef to the database
	if err := service.repository.Create(context, chef); err != nil {
		return nil, fmt.Errorf("chef_service_register_failed: %w", err)
	}

	service.logger.Info("chef_registered", slog.Int("chef_id", chef.ID))
	return chef, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Username string
	Password string
}

// LoginSession represents a successfully established chef session.
type LoginSession struct {
	Token string
	Chef  *Chef
}

/*
Login validates chef credentials and issues an opaque session token.

Description: Verifies identity via constant-time bcrypt comparison and binds
a fresh token in the session registry. The same generic UNAUTHORIZED error is
returned for an unknown username and for a wrong password to prevent account
enumeration.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginSession: The raw token plus the authenticated chef
  - error: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginSession, error) {

	// Look the account up by username
	chef, err := service.repository.FindByUsername(context, input.Username)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid username or password")
	}

	// Verify the password hash using bcrypt's constant-time comparison
	if !sec.CheckPasswordHash(input.Password, chef.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid username or password")
	}

	// Bind a fresh opaque token in the registry
	token, err := service.sessions.Issue(context, chef)
	if err != nil {
		return nil, fmt.Errorf("chef_service_issue_session_failed: %w", err)
	}

	service.logger.Info("chef_logged_in", slog.Int("chef_id", chef.ID))
	return &LoginSession{Token: token, Chef: chef}, nil
}

/*
Logout revokes the chef's session token.

Description: Revocation is idempotent — logging out with an unknown or
already-revoked token is not a failure.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - error: Revocation failures only
*/
func (service *Service) Logout(context context.Context, token string) error {
	if err := service.sessions.Revoke(context, token); err != nil {
		return fmt.Errorf("chef_service_logout_failed: %w", err)
	}
	return nil
}
