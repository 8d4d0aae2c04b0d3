// file: internals/features/users/auth/controller/auth_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	authService "pesantrenku_backend/internals/features/users/auth/service"
	userModel "pesantrenku_backend/internals/features/users/user/model"
	helper "pesantrenku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

type LoginDTO struct {
	NomorInduk string `json:"nomor_induk" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// Login: POST /api/auth/login
// Verifikasi nomor induk + password, lalu kembalikan access token,
// profil ringkas, dan landing route sesuai role.
func (ctl *AuthController) Login(c *fiber.Ctx) error {
	var in LoginDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := helper.Validate(in); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	var user userModel.UserModel
	if err := ctl.DB.First(&user,
		"nomor_induk = ? AND is_active = ?", strings.TrimSpace(in.NomorInduk), true,
	).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Nomor induk atau password salah")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	if !authService.CheckPassword(user.Password, in.Password) {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Nomor induk atau password salah")
	}

	token, err := authService.GenerateAccessToken(user.ID, user.Role, user.Nama)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat token")
	}

	return helper.JsonOK(c, "Login berhasil", fiber.Map{
		"access_token":  token,
		"user":          user,
		"landing_route": constants.LandingRouteFor(user.Role),
	})
}

// Me: GET /api/auth/me — profil user dari token.
func (ctl *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := ctl.DB.First(&user, "id = ? AND is_active = ?", userID, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", user)
}
