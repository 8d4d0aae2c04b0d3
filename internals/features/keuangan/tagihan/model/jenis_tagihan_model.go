package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JenisTagihanModel merepresentasikan tabel jenis_tagihan (SPP, Makan, dsb).
type JenisTagihanModel struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Nama string    `gorm:"size:100;not null" json:"nama"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (JenisTagihanModel) TableName() string {
	return "jenis_tagihan"
}

func (j *JenisTagihanModel) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}
