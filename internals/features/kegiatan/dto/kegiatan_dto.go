// file: internals/features/kegiatan/dto/kegiatan_dto.go
package dto

import (
	"strings"
	"time"

	"pesantrenku_backend/internals/features/kegiatan/model"
)

// KegiatanCreateDTO dikirim multipart: field teks + file "foto" opsional.
type KegiatanCreateDTO struct {
	Nama      string    `json:"nama" form:"nama" validate:"required,max=150"`
	Deskripsi *string   `json:"deskripsi,omitempty" form:"deskripsi"`
	Tanggal   time.Time `json:"tanggal" form:"tanggal" validate:"required"`
	Lokasi    *string   `json:"lokasi,omitempty" form:"lokasi" validate:"omitempty,max=255"`
}

type KegiatanUpdateDTO struct {
	Nama      *string    `json:"nama,omitempty" validate:"omitempty,max=150"`
	Deskripsi *string    `json:"deskripsi,omitempty"`
	Tanggal   *time.Time `json:"tanggal,omitempty"`
	Lokasi    *string    `json:"lokasi,omitempty" validate:"omitempty,max=255"`
}

type FeedbackCreateDTO struct {
	Rating   int     `json:"rating" validate:"required,gte=1,lte=5"`
	Komentar *string `json:"komentar,omitempty"`
}

// RekapFeedback: ringkasan untuk layar pengurus.
type RekapFeedback struct {
	KegiatanID    string  `json:"kegiatan_id"`
	JumlahMasuk   int64   `json:"jumlah_masuk"`
	RataRating    float64 `json:"rata_rating"`
}

func (in KegiatanCreateDTO) ToModel() model.KegiatanModel {
	return model.KegiatanModel{
		Nama:      strings.TrimSpace(in.Nama),
		Deskripsi: in.Deskripsi,
		Tanggal:   in.Tanggal,
		Lokasi:    in.Lokasi,
		IsActive:  true,
	}
}

func ApplyKegiatanUpdate(m *model.KegiatanModel, in KegiatanUpdateDTO) {
	if in.Nama != nil {
		m.Nama = strings.TrimSpace(*in.Nama)
	}
	if in.Deskripsi != nil {
		m.Deskripsi = in.Deskripsi
	}
	if in.Tanggal != nil {
		m.Tanggal = *in.Tanggal
	}
	if in.Lokasi != nil {
		m.Lokasi = in.Lokasi
	}
}
