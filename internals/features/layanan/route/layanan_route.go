// file: internals/features/layanan/route/layanan_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	layananController "pesantrenku_backend/internals/features/layanan/controller"
)

// LayananSantriRoutes: pengajuan layanan oleh santri login.
func LayananSantriRoutes(santri fiber.Router, db *gorm.DB) {
	ctl := &layananController.LayananController{DB: db}

	grp := santri.Group("/layanan")
	grp.Post("/", ctl.Create)
	grp.Get("/", ctl.ListMilikSendiri)
}

// LayananAdminRoutes: antrean pengajuan layanan untuk pengurus.
func LayananAdminRoutes(pengurus fiber.Router, db *gorm.DB) {
	ctl := &layananController.LayananController{DB: db}

	grp := pengurus.Group("/layanan")
	grp.Get("/", ctl.List)
	grp.Patch("/:id/status", ctl.UbahStatus)
}
