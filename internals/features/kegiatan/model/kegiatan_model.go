package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KegiatanModel merepresentasikan tabel kegiatan.
type KegiatanModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Nama      string    `gorm:"size:150;not null" json:"nama"`
	Deskripsi *string   `json:"deskripsi,omitempty"`
	Tanggal   time.Time `gorm:"not null" json:"tanggal"`
	Lokasi    *string   `gorm:"size:255" json:"lokasi,omitempty"`
	Foto      *string   `gorm:"size:255" json:"foto,omitempty"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (KegiatanModel) TableName() string {
	return "kegiatan"
}

func (k *KegiatanModel) BeforeCreate(tx *gorm.DB) error {
	if k.ID == uuid.Nil {
		k.ID = uuid.New()
	}
	return nil
}
