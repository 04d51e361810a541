// Copyright (c) 2026 Ladle. All rights reserved.
// Author: an.lequoc.vn@gmail.com

package sec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lequocan/ladle/internal/platform/sec"
)

/*
TestPasswordHashing verifies the bcrypt round trip and rejection of wrong
passwords.
*/
func TestPasswordHashing(t *testing.T) {
	hash, err := sec.HashPassword("mise-en-place")
	require.NoError(t, err)
	require.NotEqual(t, "mise-en-place", hash)

	assert.True(t, sec.CheckPasswordHash("mise-en-place", hash))
	assert.False(t, sec.CheckPasswordHash("mise-en-plate", hash))
	assert.False(t, sec.CheckPasswordHash("mise-en-place", "not-a-bcrypt-hash"))
}

/*
TestGenerateSecureToken verifies token length, uniqueness, and URL safety.
*/
func TestGenerateSecureToken(t *testing.T) {
	first, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)
	second, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)

	// 32 random bytes encode to 43 unpadded base64url characters.
	assert.Len(t, first, 43)
	assert.NotEqual(t, first, second)
	assert.NotContains(t, first, "+")
	assert.NotContains(t, first, "/")
	assert.NotContains(t, first, "=")
}

/*
TestHashToken verifies digest determinism and token separation.
*/
func TestHashToken(t *testing.T) {
	digest := sec.HashToken("some-token")

	assert.Equal(t, digest, sec.HashToken("some-token"))
	assert.NotEqual(t, digest, sec.HashToken("other-token"))
	assert.Len(t, digest, 64)
}
