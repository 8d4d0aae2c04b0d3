// file: internals/features/users/user/dto/user_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"pesantrenku_backend/internals/features/users/user/model"
)

type UserCreateDTO struct {
	Nama       string     `json:"nama" validate:"required,min=3,max=100"`
	NomorInduk string     `json:"nomor_induk" validate:"required,max=30"`
	Email      *string    `json:"email,omitempty" validate:"omitempty,email"`
	Password   string     `json:"password" validate:"required,min=8"`
	Role       string     `json:"role" validate:"required,oneof=admin pengurus ustadz santri orangtua"`
	Gender     string     `json:"gender" validate:"required,oneof=Laki-laki Perempuan"`
	Telepon    *string    `json:"telepon,omitempty" validate:"omitempty,max=20"`
	Alamat     *string    `json:"alamat,omitempty"`
	SantriID   *uuid.UUID `json:"santri_id,omitempty"`
}

type UserUpdateDTO struct {
	Nama    *string `json:"nama,omitempty" validate:"omitempty,min=3,max=100"`
	Email   *string `json:"email,omitempty" validate:"omitempty,email"`
	Gender  *string `json:"gender,omitempty" validate:"omitempty,oneof=Laki-laki Perempuan"`
	Telepon *string `json:"telepon,omitempty" validate:"omitempty,max=20"`
	Alamat  *string `json:"alamat,omitempty"`
}

func (in UserCreateDTO) ToModel(passwordHash string) model.UserModel {
	return model.UserModel{
		Nama:       strings.TrimSpace(in.Nama),
		NomorInduk: strings.TrimSpace(in.NomorInduk),
		Email:      in.Email,
		Password:   passwordHash,
		Role:       strings.ToLower(strings.TrimSpace(in.Role)),
		Gender:     in.Gender,
		Telepon:    in.Telepon,
		Alamat:     in.Alamat,
		SantriID:   in.SantriID,
		IsActive:   true,
	}
}

func ApplyUserUpdate(m *model.UserModel, in UserUpdateDTO) {
	if in.Nama != nil {
		m.Nama = strings.TrimSpace(*in.Nama)
	}
	if in.Email != nil {
		m.Email = in.Email
	}
	if in.Gender != nil {
		m.Gender = *in.Gender
	}
	if in.Telepon != nil {
		m.Telepon = in.Telepon
	}
	if in.Alamat != nil {
		m.Alamat = in.Alamat
	}
}
