package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PembayaranModel merepresentasikan tabel pembayaran (bukti transfer santri).
// Jumlah bisa dikoreksi pengurus saat verifikasi; koreksi tidak mengubah
// status tagihan induk.
type PembayaranModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TagihanID uuid.UUID `gorm:"type:uuid;not null;index" json:"tagihan_id"`

	TanggalBayar time.Time `gorm:"not null" json:"tanggal_bayar"`
	Jumlah       int64     `gorm:"not null" json:"jumlah"`
	BuktiBayar   string    `gorm:"size:255;not null" json:"bukti_bayar"`
	Metode       string    `gorm:"type:varchar(30);not null;default:'Transfer'" json:"metode"`
	Status       string    `gorm:"type:varchar(20);not null;default:'Pending'" json:"status"` // Pending|Berhasil|Gagal
	Catatan      *string   `json:"catatan,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PembayaranModel) TableName() string {
	return "pembayaran"
}

func (p *PembayaranModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
