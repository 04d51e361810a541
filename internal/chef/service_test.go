// Copyright (c) 2026 Ladle. All rights reserved.
// Author: an.lequoc.vn@gmail.com

package chef_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lequocan/ladle/internal/chef"
	"github.com/lequocan/ladle/internal/platform/apperr"
	"github.com/lequocan/ladle/internal/platform/sec"
)

// fakeRepository is an in-memory chef.Repository for service tests.
type fakeRepository struct {
	byUsername map[string]*chef.Chef
	nextID     int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{byUsername: make(map[string]*chef.Chef), nextID: 1}
}

func (repository *fakeRepository) FindByID(_ context.Context, id int) (*chef.Chef, error) {
	for _, stored := range repository.byUsername {
		if stored.ID == id {
			return stored, nil
		}
	}
	return nil, apperr.NotFound("Chef")
}

func (repository *fakeRepository) FindByUsername(_ context.Context, username string) (*chef.Chef, error) {
	if stored, found := repository.byUsername[username]; found {
		return stored, nil
	}
	return nil, apperr.NotFound("Chef")
}

func (repository *fakeRepository) Create(_ context.Context, entity *chef.Chef) error {
	entity.ID = repository.nextID
	repository.nextID++
	repository.byUsername[entity.Username] = entity
	return nil
}

func newTestService() (*chef.Service, *fakeRepository, *chef.MemorySessionRegistry) {
	repository := newFakeRepository()
	sessions := chef.NewMemorySessionRegistry()
	service := chef.NewService(repository, sessions, slog.Default())
	return service, repository, sessions
}

/*
TestService_Register verifies account creation and the username conflict rule.
*/
func TestService_Register(t *testing.T) {
	ctx := context.Background()
	service, _, _ := newTestService()

	t.Run("creates_account_with_hashed_password", func(t *testing.T) {
		created, err := service.Register(ctx, chef.RegisterInput{
			Username: "gordon",
			Password: "wellington1",
		})
		require.NoError(t, err)

		assert.NotZero(t, created.ID)
		assert.Equal(t, "gordon", created.Username)
		assert.NotEqual(t, "wellington1", created.PasswordHash)
		assert.True(t, sec.CheckPasswordHash("wellington1", created.PasswordHash))
	})

	t.Run("duplicate_username_is_conflict", func(t *testing.T) {
		_, err := service.Register(ctx, chef.RegisterInput{
			Username: "gordon",
			Password: "another-pass",
		})
		require.Error(t, err)

		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "CONFLICT", ae.Code)
		assert.Equal(t, "Username already exists", ae.Message)
	})
}

/*
TestService_Login verifies credential checks and session issuance.
*/
func TestService_Login(t *testing.T) {
	ctx := context.Background()
	service, _, sessions := newTestService()

	_, err := service.Register(ctx, chef.RegisterInput{Username: "julia", Password: "bon-appetit"})
	require.NoError(t, err)

	t.Run("valid_credentials_issue_resolvable_token", func(t *testing.T) {
		session, err := service.Login(ctx, chef.LoginInput{Username: "julia", Password: "bon-appetit"})
		require.NoError(t, err)
		require.NotEmpty(t, session.Token)
		assert.Equal(t, "julia", session.Chef.Username)

		identity, err := sessions.Resolve(ctx, session.Token)
		require.NoError(t, err)
		assert.Equal(t, session.Chef.ID, identity.ChefID)
		assert.Equal(t, "julia", identity.Username)
	})

	t.Run("unknown_username_and_wrong_password_are_indistinguishable", func(t *testing.T) {
		_, unknownErr := service.Login(ctx, chef.LoginInput{Username: "nobody", Password: "bon-appetit"})
		_, wrongErr := service.Login(ctx, chef.LoginInput{Username: "julia", Password: "wrong"})

		require.Error(t, unknownErr)
		require.Error(t, wrongErr)
		assert.Equal(t, unknownErr.Error(), wrongErr.Error())

		ae := apperr.As(wrongErr)
		require.NotNil(t, ae)
		assert.Equal(t, "UNAUTHORIZED", ae.Code)
	})

	t.Run("each_login_issues_a_distinct_token", func(t *testing.T) {
		first, err := service.Login(ctx, chef.LoginInput{Username: "julia", Password: "bon-appetit"})
		require.NoError(t, err)
		second, err := service.Login(ctx, chef.LoginInput{Username: "julia", Password: "bon-appetit"})
		require.NoError(t, err)

		assert.NotEqual(t, first.Token, second.Token)
	})
}

/*
TestService_Logout verifies token revocation and its idempotency.
*/
func TestService_Logout(t *testing.T) {
	ctx := context.Background()
	service, _, sessions := newTestService()

	_, err := service.Register(ctx, chef.RegisterInput{Username: "remy", Password: "anyone-can-cook"})
	require.NoError(t, err)

	session, err := service.Login(ctx, chef.LoginInput{Username: "remy", Password: "anyone-can-cook"})
	require.NoError(t, err)

	// Revoked tokens stop resolving.
	require.NoError(t, service.Logout(ctx, session.Token))
	_, err = sessions.Resolve(ctx, session.Token)
	require.Error(t, err)

	// Revoking again is not an error.
	assert.NoError(t, service.Logout(ctx, session.Token))
}
