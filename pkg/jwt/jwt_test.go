package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testManager() *Manager {
	return NewManager("test-secret", 15, 168)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	m := testManager()

	token, err := m.GenerateAccessToken("user-1", "admin@memepmw.com", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := m.ValidateAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin@memepmw.com", claims.Email)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "access", claims.Type)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	m := testManager()

	token, err := m.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	claims, err := m.ValidateRefreshToken(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "refresh", claims.Type)
}

func TestTokenTypeEnforcement(t *testing.T) {
	m := testManager()

	access, err := m.GenerateAccessToken("user-1", "a@b.com", "user")
	require.NoError(t, err)
	refresh, err := m.GenerateRefreshToken("user-1")
	require.NoError(t, err)

	_, err = m.ValidateRefreshToken(access)
	assert.Error(t, err)

	_, err = m.ValidateAccessToken(refresh)
	assert.Error(t, err)
}

func TestRejectsWrongSecret(t *testing.T) {
	token, err := testManager().GenerateAccessToken("user-1", "a@b.com", "user")
	require.NoError(t, err)

	other := NewManager("another-secret", 15, 168)
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestRejectsGarbage(t *testing.T) {
	_, err := testManager().ValidateToken("not.a.jwt")
	assert.Error(t, err)
}
