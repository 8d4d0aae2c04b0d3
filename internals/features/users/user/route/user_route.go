// file: internals/features/users/user/route/user_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "pesantrenku_backend/internals/features/users/user/controller"
)

// UserAdminRoutes: manajemen user oleh pengurus/admin.
func UserAdminRoutes(pengurus fiber.Router, db *gorm.DB) {
	ctl := &userController.UserController{DB: db}

	grp := pengurus.Group("/users")
	grp.Get("/", ctl.List)
	grp.Get("/:id", ctl.GetByID)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
}
