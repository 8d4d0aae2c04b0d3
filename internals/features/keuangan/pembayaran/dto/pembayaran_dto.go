// file: internals/features/keuangan/pembayaran/dto/pembayaran_dto.go
package dto

// VerifikasiDTO: aksi pengurus atas satu pembayaran Pending.
// Jumlah opsional = koreksi nominal yang sebenarnya ditransfer.
type VerifikasiDTO struct {
	Status  string  `json:"status" validate:"required,oneof=Berhasil Gagal"`
	Jumlah  *int64  `json:"jumlah,omitempty" validate:"omitempty,gte=1"`
	Catatan *string `json:"catatan,omitempty"`
}
