// file: internals/features/keuangan/tagihan/dto/tagihan_dto.go
package dto

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"pesantrenku_backend/internals/features/keuangan/tagihan/model"
	"pesantrenku_backend/internals/features/keuangan/tagihan/service"
)

/*
TargetSantriDTO menerima dua bentuk JSON:
  "target_santri": "all"          → semua santri aktif
  "target_santri": ["<uuid>", …]  → daftar eksplisit
*/
type TargetSantriDTO struct {
	All bool
	IDs []uuid.UUID
}

func (t *TargetSantriDTO) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		if strings.EqualFold(strings.TrimSpace(s), "all") {
			t.All = true
			t.IDs = nil
			return nil
		}
		return fmt.Errorf(`target_santri harus "all" atau array id santri`)
	}

	var ids []uuid.UUID
	if err := json.Unmarshal(b, &ids); err != nil {
		return fmt.Errorf(`target_santri harus "all" atau array id santri`)
	}
	t.All = false
	t.IDs = ids
	return nil
}

func (t TargetSantriDTO) ToTarget() service.TargetSantri {
	return service.TargetSantri{All: t.All, IDs: t.IDs}
}

// TagihanBulkCreateDTO: template + target untuk pembuatan massal.
type TagihanBulkCreateDTO struct {
	JenisTagihanID uuid.UUID       `json:"jenis_tagihan_id" validate:"required"`
	Nama           string          `json:"nama" validate:"required,max=150"`
	Nominal        int64           `json:"nominal" validate:"required,gte=1"`
	TanggalTagihan time.Time       `json:"tanggal_tagihan" validate:"required"`
	JatuhTempo     time.Time       `json:"jatuh_tempo" validate:"required"`
	TargetSantri   TargetSantriDTO `json:"target_santri"`
}

func (in TagihanBulkCreateDTO) ToTemplate() service.TagihanTemplate {
	return service.TagihanTemplate{
		JenisTagihanID: in.JenisTagihanID,
		Nama:           strings.TrimSpace(in.Nama),
		Nominal:        in.Nominal,
		TanggalTagihan: in.TanggalTagihan,
		JatuhTempo:     in.JatuhTempo,
	}
}

// TagihanUpdateDTO: edit satu tagihan (bukan jalur massal).
type TagihanUpdateDTO struct {
	Nama           *string    `json:"nama,omitempty" validate:"omitempty,max=150"`
	Nominal        *int64     `json:"nominal,omitempty" validate:"omitempty,gte=1"`
	TanggalTagihan *time.Time `json:"tanggal_tagihan,omitempty"`
	JatuhTempo     *time.Time `json:"jatuh_tempo,omitempty"`
}

func ApplyTagihanUpdate(m *model.TagihanModel, in TagihanUpdateDTO) {
	if in.Nama != nil {
		m.Nama = strings.TrimSpace(*in.Nama)
	}
	if in.Nominal != nil {
		m.Nominal = *in.Nominal
	}
	if in.TanggalTagihan != nil {
		m.TanggalTagihan = *in.TanggalTagihan
	}
	if in.JatuhTempo != nil {
		m.JatuhTempo = *in.JatuhTempo
	}
}

// TagihanStatusDTO: toggle Aktif|Lunas oleh pengurus.
type TagihanStatusDTO struct {
	Status string `json:"status" validate:"required,oneof=Aktif Lunas"`
}

type JenisTagihanCreateDTO struct {
	Nama string `json:"nama" validate:"required,max=100"`
}

type JenisTagihanUpdateDTO struct {
	Nama string `json:"nama" validate:"required,max=100"`
}
