package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KelasModel merepresentasikan tabel kelas.
type KelasModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Nama        string     `gorm:"size:100;not null" json:"nama"`
	TahunAjaran string     `gorm:"size:20;not null" json:"tahun_ajaran"`
	WaliKelasID *uuid.UUID `gorm:"type:uuid" json:"wali_kelas_id,omitempty"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (KelasModel) TableName() string {
	return "kelas"
}

func (k *KelasModel) BeforeCreate(tx *gorm.DB) error {
	if k.ID == uuid.Nil {
		k.ID = uuid.New()
	}
	return nil
}
