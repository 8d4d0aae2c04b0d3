// file: internals/features/layanan/controller/layanan_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/layanan/dto"
	"pesantrenku_backend/internals/features/layanan/model"
	helper "pesantrenku_backend/internals/helpers"
)

type LayananController struct {
	DB *gorm.DB
}

// Create: POST /api/santri/layanan — santri mengajukan layanan.
func (ctl *LayananController) Create(c *fiber.Ctx) error {
	pemohonID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var in dto.PengajuanCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := helper.Validate(in); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	pengajuan := in.ToModel()
	pengajuan.PemohonID = pemohonID
	if err := ctl.DB.Create(&pengajuan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Pengajuan layanan berhasil dikirim", pengajuan)
}

// ListMilikSendiri: GET /api/santri/layanan
func (ctl *LayananController) ListMilikSendiri(c *fiber.Ctx) error {
	pemohonID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []model.PengajuanLayananModel
	if err := ctl.DB.
		Where("pemohon_id = ? AND is_active = ?", pemohonID, true).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", rows)
}

// List: GET /api/pengurus/layanan?status=
func (ctl *LayananController) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.PengajuanLayananModel{}).Where("is_active = ?", true)
	if s := c.Query("status"); s != "" {
		q = q.Where("status = ?", s)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.PengajuanLayananModel
	if err := q.Order("created_at ASC").Offset(pg.Offset).Limit(pg.Limit).Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

// UbahStatus: PATCH /api/pengurus/layanan/:id/status
func (ctl *LayananController) UbahStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var in dto.PengajuanStatusDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := helper.Validate(in); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	var pengajuan model.PengajuanLayananModel
	if err := ctl.DB.First(&pengajuan, "id = ? AND is_active = ?", id, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengajuan layanan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	pengajuan.Status = in.Status
	if in.CatatanPetugas != nil {
		pengajuan.CatatanPetugas = in.CatatanPetugas
	}
	if err := ctl.DB.Save(&pengajuan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Status pengajuan berhasil diperbarui", pengajuan)
}
