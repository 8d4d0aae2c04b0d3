// file: internals/features/users/user/controller/user_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/constants"
	authService "pesantrenku_backend/internals/features/users/auth/service"
	"pesantrenku_backend/internals/features/users/user/dto"
	"pesantrenku_backend/internals/features/users/user/model"
	helper "pesantrenku_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

/* =========================
   List (GET /api/pengurus/users)
   Filter: ?role= &q= (nama/nomor induk) + paging
========================= */

func (ctl *UserController) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.UserModel{}).Where("is_active = ?", true)

	if role := constants.NormalizeRole(c.Query("role")); role != "" {
		if !constants.ValidRole(role) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Filter role tidak dikenal")
		}
		q = q.Where("role = ?", role)
	}
	if s := strings.TrimSpace(c.Query("q")); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		q = q.Where("LOWER(nama) LIKE ? OR LOWER(nomor_induk) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var users []model.UserModel
	if err := q.Order("nama ASC").Offset(pg.Offset).Limit(pg.Limit).Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", users, helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

func (ctl *UserController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var user model.UserModel
	if err := ctl.DB.First(&user, "id = ? AND is_active = ?", id, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", user)
}

func (ctl *UserController) Create(c *fiber.Ctx) error {
	var in dto.UserCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := helper.Validate(in); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	hash, err := authService.HashPassword(in.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := in.ToModel(hash)
	if err := ctl.DB.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Nomor induk atau email sudah terdaftar")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "User berhasil dibuat", user)
}

func (ctl *UserController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var in dto.UserUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := helper.Validate(in); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	var user model.UserModel
	if err := ctl.DB.First(&user, "id = ? AND is_active = ?", id, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyUserUpdate(&user, in)
	if err := ctl.DB.Save(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "User berhasil diperbarui", user)
}

// Delete melakukan soft delete (is_active=false); baris tidak pernah
// dihapus fisik.
func (ctl *UserController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.Model(&model.UserModel{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User tidak ditemukan")
	}

	return helper.JsonDeleted(c, "User berhasil dihapus", fiber.Map{"id": id})
}

func isUniqueViolation(err error) bool {
	return err != nil &&
		(strings.Contains(err.Error(), "duplicate key value") ||
			strings.Contains(err.Error(), "unique constraint") ||
			strings.Contains(err.Error(), "UNIQUE constraint"))
}
