// file: internals/features/keuangan/tagihan/route/tagihan_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	tagihanController "pesantrenku_backend/internals/features/keuangan/tagihan/controller"
)

// TagihanAdminRoutes: keuangan pengurus (jenis tagihan + tagihan massal).
func TagihanAdminRoutes(pengurus fiber.Router, db *gorm.DB) {
	jenis := &tagihanController.JenisTagihanController{DB: db}
	tagihan := tagihanController.NewTagihanController(db)

	keu := pengurus.Group("/keuangan")

	keu.Get("/jenis-tagihan", jenis.List)
	keu.Post("/jenis-tagihan", jenis.Create)
	keu.Put("/jenis-tagihan/:id", jenis.Update)
	keu.Delete("/jenis-tagihan/:id", jenis.Delete)

	keu.Post("/tagihan", tagihan.BuatMassal)
	keu.Get("/tagihan", tagihan.List)
	keu.Put("/tagihan/:id", tagihan.Update)
	keu.Patch("/tagihan/:id/status", tagihan.UbahStatus)
	keu.Delete("/tagihan/:id", tagihan.Delete)
}

// TagihanSantriRoutes: tagihan milik santri login.
func TagihanSantriRoutes(santri fiber.Router, db *gorm.DB) {
	tagihan := tagihanController.NewTagihanController(db)
	santri.Get("/tagihan", tagihan.ListMilikSendiri)
}
