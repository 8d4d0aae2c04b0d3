package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel merepresentasikan tabel users.
// Role: admin | pengurus | ustadz | santri | orangtua.
// NomorInduk: NIS untuk santri, NIP untuk ustadz/pengurus.
type UserModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Nama       string    `gorm:"size:100;not null" json:"nama"`
	NomorInduk string    `gorm:"size:30;unique;not null" json:"nomor_induk"`
	Email      *string   `gorm:"size:255;unique" json:"email,omitempty"`
	Password   string    `gorm:"not null" json:"-"`
	Role       string    `gorm:"type:varchar(20);not null;default:'santri'" json:"role"`
	Gender     string    `gorm:"type:varchar(20);not null;default:'Laki-laki'" json:"gender"`
	Telepon    *string   `gorm:"size:20" json:"telepon,omitempty"`
	Alamat     *string   `json:"alamat,omitempty"`
	Foto       *string   `gorm:"size:255" json:"foto,omitempty"`
	// relasi orangtua → santri (diisi untuk role orangtua)
	SantriID *uuid.UUID `gorm:"type:uuid" json:"santri_id,omitempty"`

	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
