// file: internals/features/asrama/kelas/dto/kelas_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"pesantrenku_backend/internals/features/asrama/kelas/model"
)

type KelasCreateDTO struct {
	Nama        string     `json:"nama" validate:"required,max=100"`
	TahunAjaran string     `json:"tahun_ajaran" validate:"required,max=20"`
	WaliKelasID *uuid.UUID `json:"wali_kelas_id,omitempty"`
}

type KelasUpdateDTO struct {
	Nama        *string    `json:"nama,omitempty" validate:"omitempty,max=100"`
	TahunAjaran *string    `json:"tahun_ajaran,omitempty" validate:"omitempty,max=20"`
	WaliKelasID *uuid.UUID `json:"wali_kelas_id,omitempty"`
}

type PenempatanCreateDTO struct {
	KelasID  uuid.UUID `json:"kelas_id" validate:"required"`
	SantriID uuid.UUID `json:"santri_id" validate:"required"`
}

func (in KelasCreateDTO) ToModel() model.KelasModel {
	return model.KelasModel{
		Nama:        strings.TrimSpace(in.Nama),
		TahunAjaran: strings.TrimSpace(in.TahunAjaran),
		WaliKelasID: in.WaliKelasID,
		IsActive:    true,
	}
}

func ApplyKelasUpdate(m *model.KelasModel, in KelasUpdateDTO) {
	if in.Nama != nil {
		m.Nama = strings.TrimSpace(*in.Nama)
	}
	if in.TahunAjaran != nil {
		m.TahunAjaran = strings.TrimSpace(*in.TahunAjaran)
	}
	if in.WaliKelasID != nil {
		m.WaliKelasID = in.WaliKelasID
	}
}
