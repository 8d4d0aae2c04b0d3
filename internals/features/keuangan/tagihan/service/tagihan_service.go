// file: internals/features/keuangan/tagihan/service/tagihan_service.go
package service

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	tagihanModel "pesantrenku_backend/internals/features/keuangan/tagihan/model"
	userModel "pesantrenku_backend/internals/features/users/user/model"
)

var (
	ErrTargetKosong               = errors.New("daftar santri target kosong")
	ErrJenisTagihanTidakDitemukan = errors.New("jenis tagihan tidak ditemukan")
	ErrSantriTidakDitemukan       = errors.New("santri target tidak ditemukan")
	ErrTagihanTidakDitemukan      = errors.New("tagihan tidak ditemukan")
)

// TagihanTemplate adalah isi tagihan yang di-fan-out ke banyak santri.
// Semua baris hasil ekspansi identik kecuali santri_id.
type TagihanTemplate struct {
	JenisTagihanID uuid.UUID
	Nama           string
	Nominal        int64
	TanggalTagihan time.Time
	JatuhTempo     time.Time
}

// TargetSantri: semua santri aktif (All) atau daftar id eksplisit.
type TargetSantri struct {
	All bool
	IDs []uuid.UUID
}

type TagihanService struct {
	DB *gorm.DB
}

/*
BuatMassal mengekspansi satu template menjadi satu baris tagihan per
santri target di dalam satu transaksi: semua baris masuk atau tidak
sama sekali. Return jumlah tagihan yang dibuat.
*/
func (s *TagihanService) BuatMassal(tpl TagihanTemplate, target TargetSantri) (int, error) {
	if !target.All && len(target.IDs) == 0 {
		return 0, ErrTargetKosong
	}

	created := 0
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var jenis tagihanModel.JenisTagihanModel
		if err := tx.First(&jenis, "id = ? AND is_active = ?", tpl.JenisTagihanID, true).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrJenisTagihanTidakDitemukan
			}
			return err
		}

		targetIDs, err := s.resolveTargetIDs(tx, target)
		if err != nil {
			return err
		}

		rows := make([]tagihanModel.TagihanModel, 0, len(targetIDs))
		for _, sid := range targetIDs {
			rows = append(rows, tagihanModel.TagihanModel{
				SantriID:       sid,
				JenisTagihanID: tpl.JenisTagihanID,
				Nama:           tpl.Nama,
				Nominal:        tpl.Nominal,
				TanggalTagihan: tpl.TanggalTagihan,
				JatuhTempo:     tpl.JatuhTempo,
				Status:         constants.TagihanAktif,
				IsActive:       true,
			})
		}
		if len(rows) == 0 {
			return ErrTargetKosong
		}

		if err := tx.CreateInBatches(&rows, 200).Error; err != nil {
			return err
		}
		created = len(rows)
		return nil
	})
	if err != nil {
		return 0, err
	}
	return created, nil
}

func (s *TagihanService) resolveTargetIDs(tx *gorm.DB, target TargetSantri) ([]uuid.UUID, error) {
	if target.All {
		var ids []uuid.UUID
		err := tx.Model(&userModel.UserModel{}).
			Where("role = ? AND is_active = ?", constants.RoleSantri, true).
			Pluck("id", &ids).Error
		return ids, err
	}

	// daftar eksplisit: semua id harus santri aktif
	var count int64
	if err := tx.Model(&userModel.UserModel{}).
		Where("id IN ? AND role = ? AND is_active = ?", target.IDs, constants.RoleSantri, true).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count != int64(len(target.IDs)) {
		return nil, ErrSantriTidakDitemukan
	}
	return target.IDs, nil
}

// UbahStatus mengubah status tagihan (Aktif|Lunas). Aksi manual pengurus,
// terpisah total dari verifikasi pembayaran.
func (s *TagihanService) UbahStatus(tagihanID uuid.UUID, status string) (*tagihanModel.TagihanModel, error) {
	var tagihan tagihanModel.TagihanModel
	if err := s.DB.First(&tagihan, "id = ? AND is_active = ?", tagihanID, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTagihanTidakDitemukan
		}
		return nil, err
	}
	tagihan.Status = status
	if err := s.DB.Save(&tagihan).Error; err != nil {
		return nil, err
	}
	return &tagihan, nil
}
