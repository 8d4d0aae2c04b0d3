// file: internals/features/asrama/kamar/controller/penempatan_controller.go
package controller

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/asrama/kamar/dto"
	"pesantrenku_backend/internals/features/asrama/kamar/service"
	helper "pesantrenku_backend/internals/helpers"
)

type PenempatanKamarController struct {
	Service *service.PenempatanKamarService
}

func NewPenempatanKamarController(db *gorm.DB) *PenempatanKamarController {
	return &PenempatanKamarController{Service: &service.PenempatanKamarService{DB: db}}
}

// Tempatkan: POST /api/pengurus/penempatan-kamar
func (ctl *PenempatanKamarController) Tempatkan(c *fiber.Ctx) error {
	var in dto.PenempatanCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := helper.Validate(in); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	penempatan, err := ctl.Service.Tempatkan(in.KamarID, in.SantriID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrKamarTidakDitemukan),
			errors.Is(err, service.ErrSantriTidakDitemukan):
			return helper.JsonError(c, fiber.StatusNotFound, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return helper.JsonCreated(c, "Santri berhasil ditempatkan ke kamar", penempatan)
}

// Keluarkan: DELETE /api/pengurus/kamar/:idKamar/santri/:idSantri
func (ctl *PenempatanKamarController) Keluarkan(c *fiber.Ctx) error {
	kamarID, err := uuid.Parse(c.Params("idKamar"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kamar tidak valid")
	}
	santriID, err := uuid.Parse(c.Params("idSantri"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID santri tidak valid")
	}

	if err := ctl.Service.Keluarkan(kamarID, santriID); err != nil {
		if errors.Is(err, service.ErrPenempatanTidakDitemukan) {
			return helper.JsonError(c, fiber.StatusNotFound, "Penempatan aktif tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonDeleted(c, "Santri berhasil dikeluarkan dari kamar", fiber.Map{
		"kamar_id":  kamarID,
		"santri_id": santriID,
	})
}

// Penghuni: GET /api/pengurus/kamar/:id/santri
func (ctl *PenempatanKamarController) Penghuni(c *fiber.Ctx) error {
	kamarID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kamar tidak valid")
	}

	penghuni, err := ctl.Service.DaftarPenghuni(kamarID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", penghuni)
}

// Opsi: GET /api/pengurus/kamar/opsi-santri?gender=
// Santri aktif tanpa penempatan kamar, untuk picker frontend.
func (ctl *PenempatanKamarController) Opsi(c *fiber.Ctx) error {
	santri, err := ctl.Service.OpsiSantri(c.Query("gender"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", santri)
}
