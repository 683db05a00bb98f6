package utils_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/NithishMee/blood/internal/utils"
)

// The secret must be picked up even when it only appears in the environment
// after package init, which is exactly what happens when main loads it from
// a .env file.
func TestJWTSecretReadAtUse(t *testing.T) {
	t.Setenv("JWT_SECRET", "secret-loaded-after-init")

	require.True(t, utils.JWTConfigured())

	token, err := utils.GenerateJWT("user-1", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := utils.ValidateJWT(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "admin", claims.Role)

	_, err = utils.ValidateJWT(token + "tampered")
	assert.Error(t, err)
}

func TestJWTUnconfigured(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	assert.False(t, utils.JWTConfigured())

	_, err := utils.GenerateJWT("user-1", "admin")
	assert.Error(t, err)

	_, err = utils.ValidateJWT("whatever")
	assert.Error(t, err)
}

func TestJWTRejectsTokenFromOtherSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "first-secret")
	token, err := utils.GenerateJWT("user-1", "member")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "second-secret")
	_, err = utils.ValidateJWT(token)
	assert.Error(t, err)
}
