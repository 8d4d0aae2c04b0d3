// file: internals/features/layanan/dto/layanan_dto.go
package dto

import (
	"strings"

	"gorm.io/datatypes"

	"pesantrenku_backend/internals/features/layanan/model"
)

type PengajuanCreateDTO struct {
	Jenis      string         `json:"jenis" validate:"required,max=100"`
	Keterangan string         `json:"keterangan" validate:"required"`
	Detail     datatypes.JSON `json:"detail,omitempty"`
}

// PengajuanStatusDTO: transisi status oleh pengurus, dengan catatan opsional.
type PengajuanStatusDTO struct {
	Status         string  `json:"status" validate:"required,oneof=Menunggu Diproses Selesai Ditolak"`
	CatatanPetugas *string `json:"catatan_petugas,omitempty"`
}

func (in PengajuanCreateDTO) ToModel() model.PengajuanLayananModel {
	return model.PengajuanLayananModel{
		Jenis:      strings.TrimSpace(in.Jenis),
		Keterangan: strings.TrimSpace(in.Keterangan),
		Detail:     in.Detail,
		IsActive:   true,
	}
}
