// file: internals/features/asrama/kamar/route/kamar_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	kamarController "pesantrenku_backend/internals/features/asrama/kamar/controller"
)

// KamarAdminRoutes: CRUD kamar + penempatan santri oleh pengurus.
func KamarAdminRoutes(pengurus fiber.Router, db *gorm.DB) {
	kamar := &kamarController.KamarController{DB: db}
	penempatan := kamarController.NewPenempatanKamarController(db)

	grp := pengurus.Group("/kamar")
	grp.Get("/", kamar.List)
	grp.Post("/", kamar.Create)
	grp.Put("/:id", kamar.Update)
	grp.Delete("/:id", kamar.Delete)

	// daftar opsi harus sebelum rute :id agar tidak tertangkap param
	grp.Get("/opsi-santri", penempatan.Opsi)
	grp.Get("/:id/santri", penempatan.Penghuni)
	grp.Delete("/:idKamar/santri/:idSantri", penempatan.Keluarkan)

	pengurus.Post("/penempatan-kamar", penempatan.Tempatkan)
}
