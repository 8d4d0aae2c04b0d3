package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KelasSantriModel adalah join-record penempatan santri ke kelas.
type KelasSantriModel struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	KelasID  uuid.UUID `gorm:"type:uuid;not null;index" json:"kelas_id"`
	SantriID uuid.UUID `gorm:"type:uuid;not null;index" json:"santri_id"`

	TanggalMasuk time.Time `gorm:"not null" json:"tanggal_masuk"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (KelasSantriModel) TableName() string {
	return "kelas_santri"
}

func (k *KelasSantriModel) BeforeCreate(tx *gorm.DB) error {
	if k.ID == uuid.Nil {
		k.ID = uuid.New()
	}
	return nil
}
