// file: internals/features/pengaduan/route/pengaduan_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pengaduanController "pesantrenku_backend/internals/features/pengaduan/controller"
	"pesantrenku_backend/internals/helpers/storage"
)

// PengaduanOrangtuaRoutes: buat pengaduan, lihat milik sendiri, balas thread.
func PengaduanOrangtuaRoutes(orangtua fiber.Router, db *gorm.DB, blob *storage.LocalBlobService) {
	ctl := pengaduanController.NewPengaduanController(db, blob)

	grp := orangtua.Group("/pengaduan")
	grp.Post("/", ctl.Create)
	grp.Get("/", ctl.ListMilikSendiri)
	grp.Post("/:id/balasan", ctl.TambahBalasan)
}

// PengaduanAdminRoutes: monitoring semua pengaduan + balasan dari staf.
func PengaduanAdminRoutes(pengurus fiber.Router, db *gorm.DB, blob *storage.LocalBlobService) {
	ctl := pengaduanController.NewPengaduanController(db, blob)

	grp := pengurus.Group("/pengaduan")
	grp.Get("/", ctl.List)
	grp.Patch("/:id/status", ctl.UbahStatus)
	grp.Post("/:id/balasan", ctl.TambahBalasan)
}
