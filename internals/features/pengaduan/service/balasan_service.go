// file: internals/features/pengaduan/service/balasan_service.go
package service

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	pengaduanModel "pesantrenku_backend/internals/features/pengaduan/model"
)

var (
	ErrPengaduanTidakDitemukan = errors.New("pengaduan tidak ditemukan")
	ErrPengaduanSudahSelesai   = errors.New("pengaduan sudah selesai, tidak bisa dibalas")
	ErrRoleTidakBolehMembalas  = errors.New("role ini tidak boleh membalas pengaduan")
)

/*
CanReply adalah satu-satunya sumber kebenaran izin balas pengaduan:
role (dinormalisasi) harus orangtua atau staff, dan thread belum Selesai.
Dipakai server-side; UI hanya mencerminkan hasil yang sama.
*/
func CanReply(role, pengaduanStatus string) bool {
	r := constants.NormalizeRole(role)
	if r != constants.RoleOrangtua && !constants.IsStaff(r) {
		return false
	}
	return pengaduanStatus != constants.PengaduanSelesai
}

type BalasanService struct {
	DB *gorm.DB
}

/*
Tambah menyimpan balasan baru. Status "Selesai" divalidasi ulang dari DB
sesaat sebelum insert — bukan dari klaim klien.
*/
func (s *BalasanService) Tambah(pengaduanID, penulisID uuid.UUID, role, isi string) (*pengaduanModel.PengaduanBalasanModel, error) {
	var balasan pengaduanModel.PengaduanBalasanModel

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var pengaduan pengaduanModel.PengaduanModel
		if err := tx.First(&pengaduan, "id = ? AND is_active = ?", pengaduanID, true).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPengaduanTidakDitemukan
			}
			return err
		}

		if !CanReply(role, pengaduan.Status) {
			if pengaduan.Status == constants.PengaduanSelesai {
				return ErrPengaduanSudahSelesai
			}
			return ErrRoleTidakBolehMembalas
		}

		balasan = pengaduanModel.PengaduanBalasanModel{
			PengaduanID: pengaduanID,
			PenulisID:   penulisID,
			Isi:         isi,
		}
		return tx.Create(&balasan).Error
	})
	if err != nil {
		return nil, err
	}
	return &balasan, nil
}
