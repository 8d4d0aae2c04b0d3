// file: internals/features/pengaduan/dto/pengaduan_dto.go
package dto

// PengaduanCreateDTO dikirim multipart: field teks + file "gambar" opsional.
type PengaduanCreateDTO struct {
	Judul string `json:"judul" form:"judul" validate:"required,max=150"`
	Isi   string `json:"isi" form:"isi" validate:"required"`
}

type PengaduanStatusDTO struct {
	Status string `json:"status" validate:"required,oneof=Menunggu Diproses Selesai"`
}

type BalasanCreateDTO struct {
	Isi string `json:"isi" validate:"required"`
}
