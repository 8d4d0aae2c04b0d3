// file: internals/features/asrama/kamar/dto/kamar_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"pesantrenku_backend/internals/features/asrama/kamar/model"
)

type KamarCreateDTO struct {
	Nama      string  `json:"nama" validate:"required,max=100"`
	Kapasitas int     `json:"kapasitas" validate:"gte=0"`
	Gender    string  `json:"gender" validate:"required,oneof=Laki-laki Perempuan"`
	Lokasi    *string `json:"lokasi,omitempty" validate:"omitempty,max=255"`
}

type KamarUpdateDTO struct {
	Nama      *string `json:"nama,omitempty" validate:"omitempty,max=100"`
	Kapasitas *int    `json:"kapasitas,omitempty" validate:"omitempty,gte=0"`
	Gender    *string `json:"gender,omitempty" validate:"omitempty,oneof=Laki-laki Perempuan"`
	Lokasi    *string `json:"lokasi,omitempty" validate:"omitempty,max=255"`
}

// PenempatanCreateDTO: tempatkan satu santri ke satu kamar.
type PenempatanCreateDTO struct {
	KamarID  uuid.UUID `json:"kamar_id" validate:"required"`
	SantriID uuid.UUID `json:"santri_id" validate:"required"`
}

func (in KamarCreateDTO) ToModel() model.KamarModel {
	return model.KamarModel{
		Nama:      strings.TrimSpace(in.Nama),
		Kapasitas: in.Kapasitas,
		Gender:    in.Gender,
		Lokasi:    in.Lokasi,
		IsActive:  true,
	}
}

func ApplyKamarUpdate(m *model.KamarModel, in KamarUpdateDTO) {
	if in.Nama != nil {
		m.Nama = strings.TrimSpace(*in.Nama)
	}
	if in.Kapasitas != nil {
		m.Kapasitas = *in.Kapasitas
	}
	if in.Gender != nil {
		m.Gender = *in.Gender
	}
	if in.Lokasi != nil {
		m.Lokasi = in.Lokasi
	}
}
