// internals/middlewares/auth/role_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"

	"pesantrenku_backend/internals/constants"
	helper "pesantrenku_backend/internals/helpers"
)

// RequireRoles menolak request bila role pada token tidak termasuk allowed.
// Dipasang SETELAH AuthMiddleware.
func RequireRoles(allowed ...string) fiber.Handler {
	allowedSet := make(map[string]struct{}, len(allowed))
	for _, r := range allowed {
		allowedSet[constants.NormalizeRole(r)] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		role := helper.GetRoleFromToken(c)
		if role == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Role tidak ditemukan pada token")
		}
		if _, ok := allowedSet[role]; !ok {
			return fiber.NewError(fiber.StatusForbidden, "Anda tidak memiliki akses ke fitur ini")
		}
		return c.Next()
	}
}
