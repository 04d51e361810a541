// Copyright (c) 2026 Ladle. All rights reserved.
// Author: an.lequoc.vn@gmail.com

package chef_test

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lequocan/ladle/internal/chef"
)

func newTestRouter() (chi.Router, *chef.MemorySessionRegistry) {
	repository := newFakeRepository()
	sessions := chef.NewMemorySessionRegistry()
	service := chef.NewService(repository, sessions, slog.Default())
	handler := chef.NewHandler(service)

	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router, sessions
}

func postJSON(router chi.Router, target, payload string, header http.Header) *httptest.ResponseRecorder {
	request := httptest.NewRequest(http.MethodPost, target, strings.NewReader(payload))
	for key, values := range header {
		for _, value := range values {
			request.Header.Add(key, value)
		}
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)
	return recorder
}

/*
TestAccountLifecycle walks register, login, and logout through the router.
*/
func TestAccountLifecycle(t *testing.T) {
	router, sessions := newTestRouter()

	t.Run("register_returns_created_profile_without_hash", func(t *testing.T) {
		recorder := postJSON(router, "/register", `{"username":"gordon","password":"wellington1"}`, nil)
		require.Equal(t, http.StatusCreated, recorder.Code)

		var body struct {
			Data map[string]any `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		assert.Equal(t, "gordon", body.Data["username"])
		assert.NotContains(t, recorder.Body.String(), "wellington1")
		assert.NotContains(t, recorder.Body.String(), "passwordHash")
	})

	t.Run("duplicate_register_is_conflict", func(t *testing.T) {
		recorder := postJSON(router, "/register", `{"username":"gordon","password":"wellington1"}`, nil)
		require.Equal(t, http.StatusConflict, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Username already exists")
	})

	t.Run("short_password_is_validation_error", func(t *testing.T) {
		recorder := postJSON(router, "/register", `{"username":"newchef","password":"short"}`, nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	var token string

	t.Run("login_returns_token_in_body_and_header", func(t *testing.T) {
		recorder := postJSON(router, "/login", `{"username":"gordon","password":"wellington1"}`, nil)
		require.Equal(t, http.StatusOK, recorder.Code)

		var body struct {
			Data struct {
				Token string `json:"token"`
			} `json:"data"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
		require.NotEmpty(t, body.Data.Token)
		assert.Equal(t, body.Data.Token, recorder.Header().Get("Authorization"))

		identity, err := sessions.Resolve(context.Background(), body.Data.Token)
		require.NoError(t, err)
		assert.Equal(t, "gordon", identity.Username)

		token = body.Data.Token
	})

	t.Run("login_with_wrong_password_is_unauthorized", func(t *testing.T) {
		recorder := postJSON(router, "/login", `{"username":"gordon","password":"wrong-pass"}`, nil)
		require.Equal(t, http.StatusUnauthorized, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Invalid username or password")
	})

	t.Run("logout_without_token_is_bad_request", func(t *testing.T) {
		recorder := postJSON(router, "/logout", "", nil)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("logout_revokes_the_session", func(t *testing.T) {
		header := http.Header{}
		header.Set("Authorization", token)

		recorder := postJSON(router, "/logout", "", header)
		require.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Logout successful")

		_, err := sessions.Resolve(context.Background(), token)
		assert.Error(t, err)
	})
}
