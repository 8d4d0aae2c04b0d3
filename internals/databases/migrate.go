// file: internals/databases/migrate.go
package database

import (
	"log"

	"gorm.io/gorm"

	kamarModel "pesantrenku_backend/internals/features/asrama/kamar/model"
	kelasModel "pesantrenku_backend/internals/features/asrama/kelas/model"
	kegiatanModel "pesantrenku_backend/internals/features/kegiatan/model"
	pembayaranModel "pesantrenku_backend/internals/features/keuangan/pembayaran/model"
	tagihanModel "pesantrenku_backend/internals/features/keuangan/tagihan/model"
	layananModel "pesantrenku_backend/internals/features/layanan/model"
	pengaduanModel "pesantrenku_backend/internals/features/pengaduan/model"
	userModel "pesantrenku_backend/internals/features/users/user/model"
)

// AutoMigrate menjalankan migrasi skema untuk semua tabel aplikasi.
// Urutan penting: tabel induk dulu sebelum tabel yang me-referensi.
func AutoMigrate(db *gorm.DB) error {
	log.Println("🛠  Running AutoMigrate...")

	return db.AutoMigrate(
		&userModel.UserModel{},

		&kamarModel.KamarModel{},
		&kamarModel.KamarSantriModel{},
		&kelasModel.KelasModel{},
		&kelasModel.KelasSantriModel{},

		&tagihanModel.JenisTagihanModel{},
		&tagihanModel.TagihanModel{},
		&pembayaranModel.PembayaranModel{},

		&pengaduanModel.PengaduanModel{},
		&pengaduanModel.PengaduanBalasanModel{},

		&layananModel.PengajuanLayananModel{},

		&kegiatanModel.KegiatanModel{},
		&kegiatanModel.FeedbackKegiatanModel{},
	)
}
