package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PengajuanLayananModel merepresentasikan tabel pengajuan_layanan
// (izin pulang, perbaikan fasilitas, surat keterangan, dsb).
// Detail menampung field tambahan per jenis layanan sebagai JSON.
type PengajuanLayananModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	PemohonID  uuid.UUID      `gorm:"type:uuid;not null;index" json:"pemohon_id"`
	Jenis      string         `gorm:"size:100;not null" json:"jenis"`
	Keterangan string         `gorm:"not null" json:"keterangan"`
	Detail     datatypes.JSON `json:"detail,omitempty"`

	Status         string  `gorm:"type:varchar(20);not null;default:'Menunggu'" json:"status"` // Menunggu|Diproses|Selesai|Ditolak
	CatatanPetugas *string `json:"catatan_petugas,omitempty"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (PengajuanLayananModel) TableName() string {
	return "pengajuan_layanan"
}

func (p *PengajuanLayananModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
