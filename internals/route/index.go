// file: internals/route/index.go
package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/configs"
	"pesantrenku_backend/internals/constants"
	authMiddleware "pesantrenku_backend/internals/middlewares/auth"

	kamarRoute "pesantrenku_backend/internals/features/asrama/kamar/route"
	kelasRoute "pesantrenku_backend/internals/features/asrama/kelas/route"
	kegiatanRoute "pesantrenku_backend/internals/features/kegiatan/route"
	pembayaranRoute "pesantrenku_backend/internals/features/keuangan/pembayaran/route"
	tagihanRoute "pesantrenku_backend/internals/features/keuangan/tagihan/route"
	layananRoute "pesantrenku_backend/internals/features/layanan/route"
	pengaduanRoute "pesantrenku_backend/internals/features/pengaduan/route"
	authRoute "pesantrenku_backend/internals/features/users/auth/route"
	userRoute "pesantrenku_backend/internals/features/users/user/route"
	"pesantrenku_backend/internals/helpers/storage"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	blob := storage.NewLocalBlobService(configs.UploadDir)

	api := app.Group("/api")

	// ===================== AUTH (public) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(api, db)

	// ===================== GROUPS =====================
	// Semua group di bawah wajib JWT; role dicek per group.
	log.Println("[INFO] Setting up PENGURUS group...")
	pengurus := api.Group("/pengurus",
		authMiddleware.AuthMiddleware(),
		authMiddleware.RequireRoles(constants.StaffRoles...),
	)

	log.Println("[INFO] Setting up SANTRI group...")
	santri := api.Group("/santri",
		authMiddleware.AuthMiddleware(),
		authMiddleware.RequireRoles(constants.RoleSantri),
	)

	log.Println("[INFO] Setting up ORANGTUA group...")
	orangtua := api.Group("/orangtua",
		authMiddleware.AuthMiddleware(),
		authMiddleware.RequireRoles(constants.RoleOrangtua),
	)

	// ===================== MOUNT ROUTES =====================

	log.Println("[INFO] Mounting User routes...")
	userRoute.UserAdminRoutes(pengurus, db)

	log.Println("[INFO] Mounting Asrama routes...")
	kamarRoute.KamarAdminRoutes(pengurus, db)
	kelasRoute.KelasAdminRoutes(pengurus, db)

	log.Println("[INFO] Mounting Keuangan routes...")
	tagihanRoute.TagihanAdminRoutes(pengurus, db)
	tagihanRoute.TagihanSantriRoutes(santri, db)
	pembayaranRoute.PembayaranAdminRoutes(pengurus, db, blob)
	pembayaranRoute.PembayaranSantriRoutes(santri, db, blob)

	log.Println("[INFO] Mounting Pengaduan routes...")
	pengaduanRoute.PengaduanOrangtuaRoutes(orangtua, db, blob)
	pengaduanRoute.PengaduanAdminRoutes(pengurus, db, blob)

	log.Println("[INFO] Mounting Layanan routes...")
	layananRoute.LayananSantriRoutes(santri, db)
	layananRoute.LayananAdminRoutes(pengurus, db)

	log.Println("[INFO] Mounting Kegiatan routes...")
	kegiatanRoute.KegiatanAdminRoutes(pengurus, db, blob)
	kegiatanRoute.KegiatanSantriRoutes(santri, db, blob)
}
