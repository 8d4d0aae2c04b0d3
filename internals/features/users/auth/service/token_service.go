// file: internals/features/users/auth/service/token_service.go
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"pesantrenku_backend/internals/configs"
)

const accessTokenTTL = 24 * time.Hour

// GenerateAccessToken membuat JWT berisi klaim user_id, role, user_name.
func GenerateAccessToken(userID uuid.UUID, role, userName string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":   userID.String(),
		"role":      role,
		"user_name": userName,
		"iat":       now.Unix(),
		"exp":       now.Add(accessTokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(configs.JWTSecret))
}
