package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TagihanModel merepresentasikan tabel tagihan (satu baris per santri).
// Status hanya berubah lewat aksi pengurus, tidak pernah diturunkan
// otomatis dari status pembayaran.
type TagihanModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	SantriID       uuid.UUID `gorm:"type:uuid;not null;index" json:"santri_id"`
	JenisTagihanID uuid.UUID `gorm:"type:uuid;not null;index" json:"jenis_tagihan_id"`

	Nama           string    `gorm:"size:150;not null" json:"nama"`
	Nominal        int64     `gorm:"not null" json:"nominal"`
	TanggalTagihan time.Time `gorm:"not null" json:"tanggal_tagihan"`
	JatuhTempo     time.Time `gorm:"not null" json:"jatuh_tempo"`
	Status         string    `gorm:"type:varchar(20);not null;default:'Aktif'" json:"status"` // Aktif|Lunas

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TagihanModel) TableName() string {
	return "tagihan"
}

func (t *TagihanModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
