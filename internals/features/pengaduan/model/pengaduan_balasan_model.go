package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PengaduanBalasanModel merepresentasikan tabel pengaduan_balasan.
type PengaduanBalasanModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	PengaduanID uuid.UUID `gorm:"type:uuid;not null;index" json:"pengaduan_id"`
	PenulisID   uuid.UUID `gorm:"type:uuid;not null" json:"penulis_id"`
	Isi         string    `gorm:"not null" json:"isi"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (PengaduanBalasanModel) TableName() string {
	return "pengaduan_balasan"
}

func (b *PengaduanBalasanModel) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}
