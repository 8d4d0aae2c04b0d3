// file: internals/features/keuangan/pembayaran/route/pembayaran_route.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	pembayaranController "pesantrenku_backend/internals/features/keuangan/pembayaran/controller"
	"pesantrenku_backend/internals/helpers/storage"
)

// PembayaranAdminRoutes: verifikasi & monitoring pembayaran oleh pengurus.
func PembayaranAdminRoutes(pengurus fiber.Router, db *gorm.DB, blob *storage.LocalBlobService) {
	ctl := pembayaranController.NewPembayaranController(db, blob)

	keu := pengurus.Group("/keuangan")
	keu.Get("/pembayaran/pending", ctl.ListPending)
	keu.Put("/pembayaran/:id/verify", ctl.Verifikasi)
	keu.Get("/tagihan/:id/pembayaran", ctl.ListByTagihan)
}

// PembayaranSantriRoutes: setor bukti + riwayat milik santri login.
func PembayaranSantriRoutes(santri fiber.Router, db *gorm.DB, blob *storage.LocalBlobService) {
	ctl := pembayaranController.NewPembayaranController(db, blob)

	santri.Post("/tagihan/:id/pembayaran", ctl.Submit)
	santri.Get("/pembayaran", ctl.ListMilikSendiri)
}
