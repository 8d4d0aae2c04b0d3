// file: internals/features/users/auth/service/auth_service_test.go
package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pesantrenku_backend/internals/configs"
)

func TestHashDanCheckPassword(t *testing.T) {
	hash, err := HashPassword("rahasia-santri")
	require.NoError(t, err)
	assert.NotEqual(t, "rahasia-santri", hash)

	assert.True(t, CheckPassword(hash, "rahasia-santri"))
	assert.False(t, CheckPassword(hash, "salah"))
}

func TestGenerateAccessToken(t *testing.T) {
	configs.JWTSecret = "secret-untuk-test"

	userID := uuid.New()
	tokenStr, err := GenerateAccessToken(userID, "santri", "Ahmad")
	require.NoError(t, err)

	parsed, err := jwt.Parse(tokenStr, func(tok *jwt.Token) (any, error) {
		return []byte(configs.JWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, userID.String(), claims["user_id"])
	assert.Equal(t, "santri", claims["role"])
	assert.Equal(t, "Ahmad", claims["user_name"])
	assert.NotNil(t, claims["exp"])
}
