package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PengaduanModel merepresentasikan tabel pengaduan.
type PengaduanModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PelaporID  uuid.UUID `gorm:"type:uuid;not null;index" json:"pelapor_id"`
	Judul      string    `gorm:"size:150;not null" json:"judul"`
	Isi        string    `gorm:"not null" json:"isi"`
	Gambar     *string   `gorm:"size:255" json:"gambar,omitempty"`
	Status     string    `gorm:"type:varchar(20);not null;default:'Menunggu'" json:"status"` // Menunggu|Diproses|Selesai

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Balasan []PengaduanBalasanModel `gorm:"foreignKey:PengaduanID" json:"balasan,omitempty"`
}

func (PengaduanModel) TableName() string {
	return "pengaduan"
}

func (p *PengaduanModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
