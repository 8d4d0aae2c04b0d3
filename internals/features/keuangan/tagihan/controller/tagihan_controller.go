// file: internals/features/keuangan/tagihan/controller/tagihan_controller.go
package controller

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/keuangan/tagihan/dto"
	"pesantrenku_backend/internals/features/keuangan/tagihan/model"
	"pesantrenku_backend/internals/features/keuangan/tagihan/service"
	helper "pesantrenku_backend/internals/helpers"
)

type TagihanController struct {
	DB      *gorm.DB
	Service *service.TagihanService
}

func NewTagihanController(db *gorm.DB) *TagihanController {
	return &TagihanController{DB: db, Service: &service.TagihanService{DB: db}}
}

/*
BuatMassal: POST /api/pengurus/keuangan/tagihan
Body: template + target_santri ("all" | [id...]). Ekspansi berjalan dalam
satu transaksi — semua baris masuk atau tidak sama sekali.
*/
func (ctl *TagihanController) BuatMassal(c *fiber.Ctx) error {
	var in dto.TagihanBulkCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := helper.Validate(in); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	created, err := ctl.Service.BuatMassal(in.ToTemplate(), in.TargetSantri.ToTarget())
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTargetKosong):
			return helper.JsonError(c, fiber.StatusBadRequest, "Daftar santri target tidak boleh kosong")
		case errors.Is(err, service.ErrJenisTagihanTidakDitemukan),
			errors.Is(err, service.ErrSantriTidakDitemukan):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return helper.JsonCreated(c,
		fmt.Sprintf("Berhasil membuat tagihan untuk %d santri", created),
		fiber.Map{"jumlah_tagihan": created},
	)
}

/*
List: GET /api/pengurus/keuangan/tagihan
Filter: ?santri_id= &jenis_tagihan_id= &status= + paging.
*/
func (ctl *TagihanController) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 200)

	q := ctl.DB.Model(&model.TagihanModel{}).Where("is_active = ?", true)
	if v := c.Query("santri_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Filter santri_id tidak valid")
		}
		q = q.Where("santri_id = ?", id)
	}
	if v := c.Query("jenis_tagihan_id"); v != "" {
		id, err := uuid.Parse(v)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Filter jenis_tagihan_id tidak valid")
		}
		q = q.Where("jenis_tagihan_id = ?", id)
	}
	if v := c.Query("status"); v != "" {
		q = q.Where("status = ?", v)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var tagihan []model.TagihanModel
	if err := q.Order("jatuh_tempo ASC").Offset(pg.Offset).Limit(pg.Limit).Find(&tagihan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", tagihan, helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

// ListMilikSendiri: GET /api/santri/tagihan — tagihan milik santri login.
func (ctl *TagihanController) ListMilikSendiri(c *fiber.Ctx) error {
	santriID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var tagihan []model.TagihanModel
	if err := ctl.DB.
		Where("santri_id = ? AND is_active = ?", santriID, true).
		Order("jatuh_tempo ASC").
		Find(&tagihan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", tagihan)
}

// Update: PUT /api/pengurus/keuangan/tagihan/:id — edit satu tagihan.
func (ctl *TagihanController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var in dto.TagihanUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := helper.Validate(in); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	var tagihan model.TagihanModel
	if err := ctl.DB.First(&tagihan, "id = ? AND is_active = ?", id, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tagihan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyTagihanUpdate(&tagihan, in)
	if err := ctl.DB.Save(&tagihan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Tagihan berhasil diperbarui", tagihan)
}

/*
UbahStatus: PATCH /api/pengurus/keuangan/tagihan/:id/status
Aksi manual pengurus; independen dari verifikasi pembayaran.
*/
func (ctl *TagihanController) UbahStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var in dto.TagihanStatusDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := helper.Validate(in); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	tagihan, err := ctl.Service.UbahStatus(id, in.Status)
	if err != nil {
		if errors.Is(err, service.ErrTagihanTidakDitemukan) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tagihan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Status tagihan berhasil diperbarui", tagihan)
}

// Delete: DELETE /api/pengurus/keuangan/tagihan/:id — soft delete.
func (ctl *TagihanController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.Model(&model.TagihanModel{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Tagihan tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Tagihan berhasil dihapus", fiber.Map{"id": id})
}
