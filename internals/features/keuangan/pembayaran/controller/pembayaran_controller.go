// file: internals/features/keuangan/pembayaran/controller/pembayaran_controller.go
package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/keuangan/pembayaran/dto"
	"pesantrenku_backend/internals/features/keuangan/pembayaran/model"
	"pesantrenku_backend/internals/features/keuangan/pembayaran/service"
	helper "pesantrenku_backend/internals/helpers"
	"pesantrenku_backend/internals/helpers/storage"
)

type PembayaranController struct {
	DB      *gorm.DB
	Service *service.PembayaranService
	Blob    *storage.LocalBlobService
}

func NewPembayaranController(db *gorm.DB, blob *storage.LocalBlobService) *PembayaranController {
	return &PembayaranController{
		DB:      db,
		Service: &service.PembayaranService{DB: db},
		Blob:    blob,
	}
}

/*
Submit: POST /api/santri/tagihan/:id/pembayaran (multipart, field bukti_bayar)
Tagihan bukan milik santri → 404, dan file bukti yang terlanjur tersimpan
dihapus lagi dari disk.
*/
func (ctl *PembayaranController) Submit(c *fiber.Ctx) error {
	santriID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	tagihanID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tagihan tidak valid")
	}

	fh, err := c.FormFile("bukti_bayar")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "File bukti_bayar wajib diunggah")
	}

	buktiURL, err := ctl.Blob.Save(fh, "bukti-bayar")
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan file bukti")
	}

	pembayaran, err := ctl.Service.Submit(santriID, tagihanID, buktiURL)
	if err != nil {
		// bukti yang sudah tersimpan tidak boleh tertinggal di disk
		if rmErr := ctl.Blob.Remove(buktiURL); rmErr != nil {
			log.Printf("[WARN] gagal hapus bukti yatim %s: %v", buktiURL, rmErr)
		}
		if errors.Is(err, service.ErrTagihanTidakDitemukan) {
			return helper.JsonError(c, fiber.StatusNotFound, "Tagihan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Bukti pembayaran berhasil dikirim", pembayaran)
}

/*
Verifikasi: PUT /api/pengurus/keuangan/pembayaran/:id/verify
Hanya baris pembayaran yang berubah; status tagihan induk tidak disentuh.
*/
func (ctl *PembayaranController) Verifikasi(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var in dto.VerifikasiDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := helper.Validate(in); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	pembayaran, err := ctl.Service.Verifikasi(id, in.Status, in.Jumlah, in.Catatan)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPembayaranTidakDitemukan):
			return helper.JsonError(c, fiber.StatusNotFound, "Pembayaran tidak ditemukan")
		case errors.Is(err, service.ErrStatusTidakValid):
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		default:
			return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
		}
	}

	return helper.JsonUpdated(c, "Pembayaran berhasil diverifikasi", pembayaran)
}

// ListPending: GET /api/pengurus/keuangan/pembayaran/pending
func (ctl *PembayaranController) ListPending(c *fiber.Ctx) error {
	rows, err := ctl.Service.DaftarPending()
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	return helper.JsonOK(c, "ok", rows)
}

// ListByTagihan: GET /api/pengurus/keuangan/tagihan/:id/pembayaran
func (ctl *PembayaranController) ListByTagihan(c *fiber.Ctx) error {
	tagihanID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tagihan tidak valid")
	}

	var rows []model.PembayaranModel
	if err := ctl.DB.
		Where("tagihan_id = ?", tagihanID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", rows)
}

// ListMilikSendiri: GET /api/santri/pembayaran — riwayat setoran bukti
// milik santri login (join lewat tagihan).
func (ctl *PembayaranController) ListMilikSendiri(c *fiber.Ctx) error {
	santriID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []model.PembayaranModel
	if err := ctl.DB.
		Joins("JOIN tagihan t ON t.id = pembayaran.tagihan_id").
		Where("t.santri_id = ?", santriID).
		Order("pembayaran.created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "ok", rows)
}
