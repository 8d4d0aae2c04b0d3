// file: internals/features/asrama/kelas/service/penempatan_service.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	kelasModel "pesantrenku_backend/internals/features/asrama/kelas/model"
	userModel "pesantrenku_backend/internals/features/users/user/model"
)

var (
	ErrKelasTidakDitemukan      = errors.New("kelas tidak ditemukan")
	ErrSantriTidakDitemukan     = errors.New("santri tidak ditemukan")
	ErrPenempatanTidakDitemukan = errors.New("penempatan tidak ditemukan")
)

// PenempatanKelasService menangani penempatan santri ke kelas.
// Aturan satu-penempatan-aktif sama dengan penempatan kamar.
type PenempatanKelasService struct {
	DB *gorm.DB
}

func (s *PenempatanKelasService) Tempatkan(kelasID, santriID uuid.UUID) (*kelasModel.KelasSantriModel, error) {
	var penempatan kelasModel.KelasSantriModel

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var kelas kelasModel.KelasModel
		if err := tx.First(&kelas, "id = ? AND is_active = ?", kelasID, true).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrKelasTidakDitemukan
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

		if err := tx.Model(&kelasModel.KelasSantriModel{}).
			Where("santri_id = ? AND is_active = ?", santriID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}

		penempatan = kelasModel.KelasSantriModel{
			KelasID:      kelasID,
			SantriID:     santriID,
			TanggalMasuk: time.Now(),
			IsActive:     true,
		}
		return tx.Create(&penempatan).Error
	})
	if err != nil {
		return nil, err
	}
	return &penempatan, nil
}

func (s *PenempatanKelasService) Keluarkan(kelasID, santriID uuid.UUID) error {
	res := s.DB.Model(&kelasModel.KelasSantriModel{}).
		Where("kelas_id = ? AND santri_id = ? AND is_active = ?", kelasID, santriID, true).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrPenempatanTidakDitemukan
	}
	return nil
}

// DaftarAnggota mengembalikan santri aktif anggota kelas, urut nama.
func (s *PenempatanKelasService) DaftarAnggota(kelasID uuid.UUID) ([]userModel.UserModel, error) {
	var anggota []userModel.UserModel
	err := s.DB.
		Joins("JOIN kelas_santri ks ON ks.santri_id = users.id").
		Where("ks.kelas_id = ? AND ks.is_active = ? AND users.is_active = ?", kelasID, true, true).
		Order("users.nama ASC").
		Find(&anggota).Error
	return anggota, err
}

// OpsiSantri mengembalikan santri aktif yang belum terdaftar di kelas manapun.
func (s *PenempatanKelasService) OpsiSantri() ([]userModel.UserModel, error) {
	var santri []userModel.UserModel
	err := s.DB.
		Where("role = ? AND is_active = ?", constants.RoleSantri, true).
		Where("id NOT IN (?)",
			s.DB.Model(&kelasModel.KelasSantriModel{}).
				Select("santri_id").
				Where("is_active = ?", true),
		).
		Order("nama ASC").
		Find(&santri).Error
	return santri, err
}
