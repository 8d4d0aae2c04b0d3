package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// FeedbackKegiatanModel merepresentasikan tabel feedback_kegiatan.
// Satu santri satu feedback per kegiatan (unique index gabungan).
type FeedbackKegiatanModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	KegiatanID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_feedback_kegiatan_santri" json:"kegiatan_id"`
	SantriID   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_feedback_kegiatan_santri" json:"santri_id"`

	Rating   int     `gorm:"not null" json:"rating"` // 1..5
	Komentar *string `json:"komentar,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (FeedbackKegiatanModel) TableName() string {
	return "feedback_kegiatan"
}

func (f *FeedbackKegiatanModel) BeforeCreate(tx *gorm.DB) error {
	if f.ID == uuid.Nil {
		f.ID = uuid.New()
	}
	return nil
}
