// file: internals/features/asrama/kamar/controller/kamar_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/asrama/kamar/dto"
	"pesantrenku_backend/internals/features/asrama/kamar/model"
	helper "pesantrenku_backend/internals/helpers"
)

type KamarController struct {
	DB *gorm.DB
}

func (ctl *KamarController) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.KamarModel{}).Where("is_active = ?", true)
	if g := c.Query("gender"); g != "" {
		q = q.Where("gender = ?", g)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var kamar []model.KamarModel
	if err := q.Order("nama ASC").Offset(pg.Offset).Limit(pg.Limit).Find(&kamar).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", kamar, helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

func (ctl *KamarController) Create(c *fiber.Ctx) error {
	var in dto.KamarCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := helper.Validate(in); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	kamar := in.ToModel()
	if err := ctl.DB.Create(&kamar).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Kamar berhasil dibuat", kamar)
}

func (ctl *KamarController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var in dto.KamarUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := helper.Validate(in); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	var kamar model.KamarModel
	if err := ctl.DB.First(&kamar, "id = ? AND is_active = ?", id, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kamar tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyKamarUpdate(&kamar, in)
	if err := ctl.DB.Save(&kamar).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Kamar berhasil diperbarui", kamar)
}

func (ctl *KamarController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.Model(&model.KamarModel{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kamar tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Kamar berhasil dihapus", fiber.Map{"id": id})
}
