// file: internals/features/asrama/kelas/controller/kelas_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/asrama/kelas/dto"
	"pesantrenku_backend/internals/features/asrama/kelas/model"
	helper "pesantrenku_backend/internals/helpers"
)

type KelasController struct {
	DB *gorm.DB
}

func (ctl *KelasController) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.KelasModel{}).Where("is_active = ?", true)
	if ta := c.Query("tahun_ajaran"); ta != "" {
		q = q.Where("tahun_ajaran = ?", ta)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var kelas []model.KelasModel
	if err := q.Order("nama ASC").Offset(pg.Offset).Limit(pg.Limit).Find(&kelas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", kelas, helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

func (ctl *KelasController) Create(c *fiber.Ctx) error {
	var in dto.KelasCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := helper.Validate(in); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	kelas := in.ToModel()
	if err := ctl.DB.Create(&kelas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Kelas berhasil dibuat", kelas)
}

func (ctl *KelasController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var in dto.KelasUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := helper.Validate(in); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	var kelas model.KelasModel
	if err := ctl.DB.First(&kelas, "id = ? AND is_active = ?", id, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyKelasUpdate(&kelas, in)
	if err := ctl.DB.Save(&kelas).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Kelas berhasil diperbarui", kelas)
}

func (ctl *KelasController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.Model(&model.KelasModel{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kelas tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Kelas berhasil dihapus", fiber.Map{"id": id})
}
