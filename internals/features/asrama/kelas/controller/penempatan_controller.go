// file: internals/features/asrama/kelas/controller/penempatan_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/asrama/kelas/dto"
	"pesantrenku_backend/internals/features/asrama/kelas/service"
	helper "pesantrenku_backend/internals/helpers"
)

type PenempatanKelasController struct {
	Service *service.PenempatanKelasService
}

func NewPenempatanKelasController(db *gorm.DB) *PenempatanKelasController {
	return &PenempatanKelasController{Service: &service.PenempatanKelasService{DB: db}}
}

// Tempatkan: POST /api/pengurus/penempatan-kelas
func (ctl *PenempatanKelasController) Tempatkan(c *fiber.Ctx) error {
	var in dto.PenempatanCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := helper.Validate(in); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	penempatan, err := ctl.Service.Tempatkan(in.KelasID, in.SantriID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrKelasTidakDitemukan),
			errors.Is(err, service.ErrSantriTidakDitemukan):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return helper.JsonCreated(c, "Santri berhasil ditempatkan ke kelas", penempatan)
}

// Keluarkan: DELETE /api/pengurus/kelas/:idKelas/santri/:idSantri
func (ctl *PenempatanKelasController) Keluarkan(c *fiber.Ctx) error {
	kelasID, err := uuid.Parse(c.Params("idKelas"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}
	santriID, err := uuid.Parse(c.Params("idSantri"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID santri tidak valid")
	}

	if err := ctl.Service.Keluarkan(kelasID, santriID); err != nil {
		if errors.Is(err, service.ErrPenempatanTidakDitemukan) {
			return helper.JsonError(c, fiber.StatusNotFound, "Penempatan aktif tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "Santri berhasil dikeluarkan dari kelas", fiber.Map{
		"kelas_id":  kelasID,
		"santri_id": santriID,
	})
}

// Anggota: GET /api/pengurus/kelas/:id/santri
func (ctl *PenempatanKelasController) Anggota(c *fiber.Ctx) error {
	kelasID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kelas tidak valid")
	}

	anggota, err := ctl.Service.DaftarAnggota(kelasID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", anggota)
}

// Opsi: GET /api/pengurus/kelas/opsi-santri
func (ctl *PenempatanKelasController) Opsi(c *fiber.Ctx) error {
	santri, err := ctl.Service.OpsiSantri()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", santri)
}
