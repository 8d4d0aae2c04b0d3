package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KamarSantriModel adalah join-record penempatan santri ke kamar.
// Satu santri maksimal satu penempatan kamar aktif: penempatan lama
// dinonaktifkan dalam transaksi yang sama saat penempatan baru dibuat.
type KamarSantriModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	KamarID  uuid.UUID `gorm:"type:uuid;not null;index" json:"kamar_id"`
	SantriID uuid.UUID `gorm:"type:uuid;not null;index" json:"santri_id"`

	TanggalMasuk  time.Time  `gorm:"not null" json:"tanggal_masuk"`
	TanggalKeluar *time.Time `json:"tanggal_keluar,omitempty"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (KamarSantriModel) TableName() string {
	return "kamar_santri"
}

func (k *KamarSantriModel) BeforeCreate(tx *gorm.DB) error {
	if k.ID == uuid.Nil {
		k.ID = uuid.New()
	}
	return nil
}
