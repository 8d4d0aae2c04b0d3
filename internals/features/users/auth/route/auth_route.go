// file: internals/features/users/auth/route/auth_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "pesantrenku_backend/internals/features/users/auth/controller"
	"pesantrenku_backend/internals/middlewares"
	authMiddleware "pesantrenku_backend/internals/middlewares/auth"
)

func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctl := &authController.AuthController{DB: db}

	grp := api.Group("/auth")
	grp.Post("/login", middlewares.LoginRateLimiter(), ctl.Login)
	grp.Get("/me", authMiddleware.AuthMiddleware(), ctl.Me)
}
