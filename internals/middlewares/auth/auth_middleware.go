// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"pesantrenku_backend/internals/configs"
	"pesantrenku_backend/internals/constants"
	helper "pesantrenku_backend/internals/helpers"
)

// AuthMiddleware memverifikasi bearer JWT lalu menyimpan klaim
// (user_id, user_role, user_name) ke c.Locals untuk handler berikutnya.
func AuthMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString := helper.GetRawAccessToken(c)
		if tokenString == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token tidak ditemukan")
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET kosong")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(secretKey), nil
		}); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}

		c.Locals(helper.LocUserID, userID.String())
		if role, ok := claims["role"].(string); ok {
			c.Locals(helper.LocUserRole, constants.NormalizeRole(role))
		}
		if name, ok := claims["user_name"].(string); ok {
			c.Locals(helper.LocUserName, name)
		}

		return c.Next()
	}
}

// validateTokenExpiry memeriksa klaim exp dengan toleransi clock skew.
func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return fmt.Errorf("exp claim tidak ada")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return fmt.Errorf("exp claim tidak valid")
	}
	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return fmt.Errorf("token expired pada %s", expTime)
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	raw, ok := claims["user_id"].(string)
	if !ok || strings.TrimSpace(raw) == "" {
		// fallback klaim standar
		raw, ok = claims["sub"].(string)
		if !ok || strings.TrimSpace(raw) == "" {
			return uuid.Nil, fmt.Errorf("user_id claim tidak ada")
		}
	}
	return uuid.Parse(strings.TrimSpace(raw))
}
