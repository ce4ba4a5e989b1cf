package user

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("  Maria Silva ", "Maria@Example.COM", "s3nha-forte")
	require.NoError(t, err)

	assert.Equal(t, "Maria Silva", u.Name)
	assert.Equal(t, "maria@example.com", u.Email)
	assert.Equal(t, RoleUser, u.Role)
	assert.True(t, u.IsActive)
	assert.NotEqual(t, "s3nha-forte", u.PasswordHash)
	assert.True(t, u.CheckPassword("s3nha-forte"))
	assert.False(t, u.CheckPassword("outra-senha"))
}

func TestNewUserRejectsBadInput(t *testing.T) {
	_, err := NewUser("", "a@b.com", "s3nha-forte")
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = NewUser(strings.Repeat("x", 101), "a@b.com", "s3nha-forte")
	assert.ErrorIs(t, err, ErrInvalidName)

	_, err = NewUser("Maria", "not-an-email", "s3nha-forte")
	assert.ErrorIs(t, err, ErrInvalidEmail)

	_, err = NewUser("Maria", "a@b.com", "curta")
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestSetPassword(t *testing.T) {
	u, err := NewUser("Maria", "a@b.com", "senha-antiga")
	require.NoError(t, err)

	assert.ErrorIs(t, u.SetPassword("curta"), ErrWeakPassword)
	assert.True(t, u.CheckPassword("senha-antiga"))

	require.NoError(t, u.SetPassword("senha-nova-123"))
	assert.True(t, u.CheckPassword("senha-nova-123"))
	assert.False(t, u.CheckPassword("senha-antiga"))
}
