package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KamarModel merepresentasikan tabel kamar.
// Kapasitas bersifat advisory: tidak pernah dicek saat penempatan.
type KamarModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Nama      string    `gorm:"size:100;not null" json:"nama"`
	Kapasitas int       `gorm:"not null;default:0" json:"kapasitas"`
	Gender    string    `gorm:"type:varchar(20);not null;default:'Laki-laki'" json:"gender"`
	Lokasi    *string   `gorm:"size:255" json:"lokasi,omitempty"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (KamarModel) TableName() string {
	return "kamar"
}

func (k *KamarModel) BeforeCreate(tx *gorm.DB) error {
	if k.ID == uuid.Nil {
		k.ID = uuid.New()
	}
	return nil
}
