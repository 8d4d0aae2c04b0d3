// file: internals/features/kegiatan/route/kegiatan_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	kegiatanController "pesantrenku_backend/internals/features/kegiatan/controller"
	"pesantrenku_backend/internals/helpers/storage"
)

// KegiatanAdminRoutes: kelola kegiatan + rekap feedback.
func KegiatanAdminRoutes(pengurus fiber.Router, db *gorm.DB, blob *storage.LocalBlobService) {
	ctl := kegiatanController.NewKegiatanController(db, blob)

	grp := pengurus.Group("/kegiatan")
	grp.Get("/", ctl.List)
	grp.Post("/", ctl.Create)
	grp.Put("/:id", ctl.Update)
	grp.Delete("/:id", ctl.Delete)
	grp.Get("/:id/feedback", ctl.RekapFeedback)
}

// KegiatanSantriRoutes: daftar kegiatan + kirim feedback.
func KegiatanSantriRoutes(santri fiber.Router, db *gorm.DB, blob *storage.LocalBlobService) {
	ctl := kegiatanController.NewKegiatanController(db, blob)

	grp := santri.Group("/kegiatan")
	grp.Get("/", ctl.List)
	grp.Post("/:id/feedback", ctl.SubmitFeedback)
}
