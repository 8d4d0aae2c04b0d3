// file: internals/features/keuangan/pembayaran/service/pembayaran_service.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	pembayaranModel "pesantrenku_backend/internals/features/keuangan/pembayaran/model"
	tagihanModel "pesantrenku_backend/internals/features/keuangan/tagihan/model"
)

var (
	ErrTagihanTidakDitemukan    = errors.New("tagihan tidak ditemukan")
	ErrPembayaranTidakDitemukan = errors.New("pembayaran tidak ditemukan")
	ErrStatusTidakValid         = errors.New("status verifikasi tidak valid")
)

type PembayaranService struct {
	DB *gorm.DB
}

/*
Submit mencatat bukti pembayaran dari santri untuk tagihannya sendiri.
Jumlah diisi penuh dari nominal tagihan (pembayaran parsial tidak
dimodelkan), metode default Transfer, status awal Pending.

Tagihan milik santri lain (atau sudah nonaktif) → ErrTagihanTidakDitemukan;
pembersihan file bukti menjadi tanggung jawab pemanggil.
*/
func (s *PembayaranService) Submit(santriID, tagihanID uuid.UUID, buktiBayarURL string) (*pembayaranModel.PembayaranModel, error) {
	var tagihan tagihanModel.TagihanModel
	if err := s.DB.First(&tagihan,
		"id = ? AND santri_id = ? AND is_active = ?", tagihanID, santriID, true,
	).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagihanTidakDitemukan
		}
		return nil, err
	}

	pembayaran := pembayaranModel.PembayaranModel{
		TagihanID:    tagihanID,
		TanggalBayar: time.Now(),
		Jumlah:       tagihan.Nominal,
		BuktiBayar:   buktiBayarURL,
		Metode:       "Transfer",
		Status:       constants.PembayaranPending,
	}
	if err := s.DB.Create(&pembayaran).Error; err != nil {
		return nil, err
	}
	return &pembayaran, nil
}

/*
Verifikasi mengubah status pembayaran (Berhasil|Gagal) dengan koreksi
jumlah opsional. Hanya baris pembayaran ini yang berubah — status
tagihan induk TIDAK disentuh; menandai tagihan Lunas adalah aksi
pengurus terpisah lewat endpoint status tagihan.
*/
func (s *PembayaranService) Verifikasi(pembayaranID uuid.UUID, status string, jumlahKoreksi *int64, catatan *string) (*pembayaranModel.PembayaranModel, error) {
	if !constants.ValidPembayaranVerifyStatus(status) {
		return nil, ErrStatusTidakValid
	}

	var pembayaran pembayaranModel.PembayaranModel
	if err := s.DB.First(&pembayaran, "id = ?", pembayaranID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPembayaranTidakDitemukan
		}
		return nil, err
	}

	pembayaran.Status = status
	if jumlahKoreksi != nil {
		pembayaran.Jumlah = *jumlahKoreksi
	}
	if catatan != nil {
		pembayaran.Catatan = catatan
	}
	if err := s.DB.Save(&pembayaran).Error; err != nil {
		return nil, err
	}
	return &pembayaran, nil
}

// DaftarPending mengembalikan antrian pembayaran Pending (paling lama dulu)
// untuk layar verifikasi pengurus.
func (s *PembayaranService) DaftarPending() ([]pembayaranModel.PembayaranModel, error) {
	var rows []pembayaranModel.PembayaranModel
	err := s.DB.
		Where("status = ?", constants.PembayaranPending).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}
