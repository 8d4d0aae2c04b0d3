// file: internals/features/asrama/kamar/service/penempatan_service.go
package service

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/google/uuid"

	kamarModel "pesantrenku_backend/internals/features/asrama/kamar/model"
	userModel "pesantrenku_backend/internals/features/users/user/model"
	"pesantrenku_backend/internals/constants"
)

var (
	ErrKamarTidakDitemukan      = errors.New("kamar tidak ditemukan")
	ErrSantriTidakDitemukan     = errors.New("santri tidak ditemukan")
	ErrPenempatanTidakDitemukan = errors.New("penempatan tidak ditemukan")
)

/*
PenempatanKamarService menangani siklus penempatan santri ke kamar.

Satu santri maksimal satu penempatan kamar aktif: saat penempatan baru
dibuat, penempatan aktif sebelumnya dinonaktifkan dalam transaksi yang
sama (tanggal_keluar ikut diisi).
*/
type PenempatanKamarService struct {
	DB *gorm.DB
}

// Tempatkan membuat penempatan baru untuk santri di kamar tujuan.
func (s *PenempatanKamarService) Tempatkan(kamarID, santriID uuid.UUID) (*kamarModel.KamarSantriModel, error) {
	var penempatan kamarModel.KamarSantriModel

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var kamar kamarModel.KamarModel
		if err := tx.First(&kamar, "id = ? AND is_active = ?", kamarID, true).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrKamarTidakDitemukan
			}
			return err
		}

		var santri userModel.UserModel
		if err := tx.First(&santri,
			"id = ? AND role = ? AND is_active = ?", santriID, constants.RoleSantri, true,
		).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrSantriTidakDitemukan
			}
			return err
		}

		// nonaktifkan penempatan aktif sebelumnya (kalau ada)
		now := time.Now()
		if err := tx.Model(&kamarModel.KamarSantriModel{}).
			Where("santri_id = ? AND is_active = ?", santriID, true).
			Updates(map[string]any{
				"is_active":      false,
				"tanggal_keluar": now,
			}).Error; err != nil {
			return err
		}

		penempatan = kamarModel.KamarSantriModel{
			KamarID:      kamarID,
			SantriID:     santriID,
			TanggalMasuk: now,
			IsActive:     true,
		}
		return tx.Create(&penempatan).Error
	})
	if err != nil {
		return nil, err
	}
	return &penempatan, nil
}

// Keluarkan menonaktifkan penempatan aktif santri di kamar tertentu
// dan mengisi tanggal_keluar.
func (s *PenempatanKamarService) Keluarkan(kamarID, santriID uuid.UUID) error {
	res := s.DB.Model(&kamarModel.KamarSantriModel{}).
		Where("kamar_id = ? AND santri_id = ? AND is_active = ?", kamarID, santriID, true).
		Updates(map[string]any{
			"is_active":      false,
			"tanggal_keluar": time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPenempatanTidakDitemukan
	}
	return nil
}

// DaftarPenghuni mengembalikan santri aktif penghuni kamar, urut nama.
func (s *PenempatanKamarService) DaftarPenghuni(kamarID uuid.UUID) ([]userModel.UserModel, error) {
	var penghuni []userModel.UserModel
	err := s.DB.
		Joins("JOIN kamar_santri ks ON ks.santri_id = users.id").
		Where("ks.kamar_id = ? AND ks.is_active = ? AND users.is_active = ?", kamarID, true, true).
		Order("users.nama ASC").
		Find(&penghuni).Error
	return penghuni, err
}

// OpsiSantri mengembalikan santri aktif yang belum punya penempatan kamar
// aktif, difilter gender. Gender selain "Perempuan" jatuh ke "Laki-laki".
func (s *PenempatanKamarService) OpsiSantri(gender string) ([]userModel.UserModel, error) {
	gender = constants.NormalizeGender(gender)

	var santri []userModel.UserModel
	err := s.DB.
		Where("role = ? AND is_active = ? AND gender = ?", constants.RoleSantri, true, gender).
		Where("id NOT IN (?)",
			s.DB.Model(&kamarModel.KamarSantriModel{}).
				Select("santri_id").
				Where("is_active = ?", true),
		).
		Order("nama ASC").
		Find(&santri).Error
	return santri, err
}
