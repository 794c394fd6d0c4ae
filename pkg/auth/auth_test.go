package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken("stf-1", "dana", "manager")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "stf-1", claims.StaffID)
	assert.Equal(t, "dana", claims.Username)
	assert.Equal(t, "manager", claims.Role)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("manager123")
	require.NoError(t, err)
	assert.NotEqual(t, "manager123", hash)

	assert.True(t, CheckPassword(hash, "manager123"))
	assert.False(t, CheckPassword(hash, "manager124"))
	assert.False(t, CheckPassword("", "manager123"))
}
