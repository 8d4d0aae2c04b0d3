// file: internals/features/pengaduan/controller/pengaduan_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/pengaduan/dto"
	"pesantrenku_backend/internals/features/pengaduan/model"
	"pesantrenku_backend/internals/features/pengaduan/service"
	helper "pesantrenku_backend/internals/helpers"
	"pesantrenku_backend/internals/helpers/storage"
)

type PengaduanController struct {
	DB      *gorm.DB
	Balasan *service.BalasanService
	Blob    *storage.LocalBlobService
}

func NewPengaduanController(db *gorm.DB, blob *storage.LocalBlobService) *PengaduanController {
	return &PengaduanController{
		DB:      db,
		Balasan: &service.BalasanService{DB: db},
		Blob:    blob,
	}
}

// Create: POST /api/orangtua/pengaduan (multipart; file "gambar" opsional)
func (ctl *PengaduanController) Create(c *fiber.Ctx) error {
	pelaporID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var in dto.PengaduanCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := helper.Validate(in); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	var gambarURL *string
	if fh, err := c.FormFile("gambar"); err == nil && fh != nil {
		url, err := ctl.Blob.Save(fh, "pengaduan")
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return helper.JsonError(c, fe.Code, fe.Message)
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan gambar")
		}
		gambarURL = &url
	}

	pengaduan := model.PengaduanModel{
		PelaporID: pelaporID,
		Judul:     in.Judul,
		Isi:       in.Isi,
		Gambar:    gambarURL,
		IsActive:  true,
	}
	if err := ctl.DB.Create(&pengaduan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Pengaduan berhasil dibuat", pengaduan)
}

// ListMilikSendiri: GET /api/orangtua/pengaduan
func (ctl *PengaduanController) ListMilikSendiri(c *fiber.Ctx) error {
	pelaporID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []model.PengaduanModel
	if err := ctl.DB.
		Preload("Balasan", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Where("pelapor_id = ? AND is_active = ?", pelaporID, true).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", rows)
}

// List: GET /api/pengurus/pengaduan?status=
func (ctl *PengaduanController) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.PengaduanModel{}).Where("is_active = ?", true)
	if s := c.Query("status"); s != "" {
		q = q.Where("status = ?", s)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var rows []model.PengaduanModel
	if err := q.Preload("Balasan", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Order("created_at DESC").
		Offset(pg.Offset).Limit(pg.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", rows, helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

// UbahStatus: PATCH /api/pengurus/pengaduan/:id/status
func (ctl *PengaduanController) UbahStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var in dto.PengaduanStatusDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := helper.Validate(in); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	var pengaduan model.PengaduanModel
	if err := ctl.DB.First(&pengaduan, "id = ? AND is_active = ?", id, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Pengaduan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	pengaduan.Status = in.Status
	if err := ctl.DB.Save(&pengaduan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Status pengaduan berhasil diperbarui", pengaduan)
}

/*
TambahBalasan: POST /api/orangtua/pengaduan/:id/balasan (juga dipakai staf).
Izin dicek server-side lewat policy service: role boleh membalas DAN
status thread di DB belum Selesai.
*/
func (ctl *PengaduanController) TambahBalasan(c *fiber.Ctx) error {
	penulisID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	pengaduanID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID pengaduan tidak valid")
	}

	var in dto.BalasanCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := helper.Validate(in); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	balasan, err := ctl.Balasan.Tambah(pengaduanID, penulisID, helper.GetRoleFromToken(c), in.Isi)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPengaduanTidakDitemukan):
			return helper.JsonError(c, fiber.StatusNotFound, "Pengaduan tidak ditemukan")
		case errors.Is(err, service.ErrPengaduanSudahSelesai):
			return helper.JsonError(c, fiber.StatusForbidden, "Pengaduan sudah selesai dan tidak bisa dibalas")
		case errors.Is(err, service.ErrRoleTidakBolehMembalas):
			return helper.JsonError(c, fiber.StatusForbidden, "Anda tidak memiliki izin membalas pengaduan")
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return helper.JsonCreated(c, "Balasan berhasil dikirim", balasan)
}
