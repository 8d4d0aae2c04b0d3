// file: internals/features/asrama/kelas/route/kelas_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	kelasController "pesantrenku_backend/internals/features/asrama/kelas/controller"
)

// KelasAdminRoutes: CRUD kelas + penempatan santri oleh pengurus.
func KelasAdminRoutes(pengurus fiber.Router, db *gorm.DB) {
	kelas := &kelasController.KelasController{DB: db}
	penempatan := kelasController.NewPenempatanKelasController(db)

	grp := pengurus.Group("/kelas")
	grp.Get("/", kelas.List)
	grp.Post("/", kelas.Create)
	grp.Put("/:id", kelas.Update)
	grp.Delete("/:id", kelas.Delete)

	grp.Get("/opsi-santri", penempatan.Opsi)
	grp.Get("/:id/santri", penempatan.Anggota)
	grp.Delete("/:idKelas/santri/:idSantri", penempatan.Keluarkan)

	pengurus.Post("/penempatan-kelas", penempatan.Tempatkan)
}
