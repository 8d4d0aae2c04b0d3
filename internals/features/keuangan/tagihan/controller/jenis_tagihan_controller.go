// file: internals/features/keuangan/tagihan/controller/jenis_tagihan_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/keuangan/tagihan/dto"
	"pesantrenku_backend/internals/features/keuangan/tagihan/model"
	helper "pesantrenku_backend/internals/helpers"
)

type JenisTagihanController struct {
	DB *gorm.DB
}

func (ctl *JenisTagihanController) List(c *fiber.Ctx) error {
	var jenis []model.JenisTagihanModel
	if err := ctl.DB.Where("is_active = ?", true).Order("nama ASC").Find(&jenis).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", jenis)
}

func (ctl *JenisTagihanController) Create(c *fiber.Ctx) error {
	var in dto.JenisTagihanCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := helper.Validate(in); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	jenis := model.JenisTagihanModel{Nama: strings.TrimSpace(in.Nama), IsActive: true}
	if err := ctl.DB.Create(&jenis).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Jenis tagihan berhasil dibuat", jenis)
}

func (ctl *JenisTagihanController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var in dto.JenisTagihanUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := helper.Validate(in); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	var jenis model.JenisTagihanModel
	if err := ctl.DB.First(&jenis, "id = ? AND is_active = ?", id, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Jenis tagihan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	jenis.Nama = strings.TrimSpace(in.Nama)
	if err := ctl.DB.Save(&jenis).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Jenis tagihan berhasil diperbarui", jenis)
}

func (ctl *JenisTagihanController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.Model(&model.JenisTagihanModel{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Jenis tagihan tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Jenis tagihan berhasil dihapus", fiber.Map{"id": id})
}
