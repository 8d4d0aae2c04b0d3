// file: internals/features/kegiatan/controller/kegiatan_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"pesantrenku_backend/internals/features/kegiatan/dto"
	"pesantrenku_backend/internals/features/kegiatan/model"
	helper "pesantrenku_backend/internals/helpers"
	"pesantrenku_backend/internals/helpers/storage"
)

type KegiatanController struct {
	DB   *gorm.DB
	Blob *storage.LocalBlobService
}

func NewKegiatanController(db *gorm.DB, blob *storage.LocalBlobService) *KegiatanController {
	return &KegiatanController{DB: db, Blob: blob}
}

func (ctl *KegiatanController) List(c *fiber.Ctx) error {
	pg := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.Model(&model.KegiatanModel{}).Where("is_active = ?", true)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	var kegiatan []model.KegiatanModel
	if err := q.Order("tanggal DESC").Offset(pg.Offset).Limit(pg.Limit).Find(&kegiatan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "ok", kegiatan, helper.BuildPaginationFromPage(total, pg.Page, pg.PerPage))
}

// Create: POST /api/pengurus/kegiatan (multipart; file "foto" opsional)
func (ctl *KegiatanController) Create(c *fiber.Ctx) error {
	var in dto.KegiatanCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := helper.Validate(in); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	kegiatan := in.ToModel()
	if fh, err := c.FormFile("foto"); err == nil && fh != nil {
		url, err := ctl.Blob.Save(fh, "kegiatan")
		if err != nil {
			var fe *fiber.Error
			if errors.As(err, &fe) {
				return helper.JsonError(c, fe.Code, fe.Message)
			}
			return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menyimpan foto")
		}
		kegiatan.Foto = &url
	}

	if err := ctl.DB.Create(&kegiatan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Kegiatan berhasil dibuat", kegiatan)
}

func (ctl *KegiatanController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	var in dto.KegiatanUpdateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := helper.Validate(in); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	var kegiatan model.KegiatanModel
	if err := ctl.DB.First(&kegiatan, "id = ? AND is_active = ?", id, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kegiatan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	dto.ApplyKegiatanUpdate(&kegiatan, in)
	if err := ctl.DB.Save(&kegiatan).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Kegiatan berhasil diperbarui", kegiatan)
}

func (ctl *KegiatanController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID tidak valid")
	}

	res := ctl.DB.Model(&model.KegiatanModel{}).
		Where("id = ? AND is_active = ?", id, true).
		Update("is_active", false)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, res.Error.Error())
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Kegiatan tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Kegiatan berhasil dihapus", fiber.Map{"id": id})
}

/*
SubmitFeedback: POST /api/santri/kegiatan/:id/feedback
Satu santri satu feedback per kegiatan (unique index); duplikat → 409.
*/
func (ctl *KegiatanController) SubmitFeedback(c *fiber.Ctx) error {
	santriID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	kegiatanID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kegiatan tidak valid")
	}

	var in dto.FeedbackCreateDTO
	if err := c.BodyParser(&in); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := helper.Validate(in); err != nil {
		return helper.ValidationErrorResponse(c, err)
	}

	var kegiatan model.KegiatanModel
	if err := ctl.DB.First(&kegiatan, "id = ? AND is_active = ?", kegiatanID, true).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Kegiatan tidak ditemukan")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	feedback := model.FeedbackKegiatanModel{
		KegiatanID: kegiatanID,
		SantriID:   santriID,
		Rating:     in.Rating,
		Komentar:   in.Komentar,
	}
	if err := ctl.DB.Create(&feedback).Error; err != nil {
		if isUniqueViolation(err) {
			return helper.JsonError(c, fiber.StatusConflict, "Anda sudah mengirim feedback untuk kegiatan ini")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Feedback berhasil dikirim", feedback)
}

// RekapFeedback: GET /api/pengurus/kegiatan/:id/feedback
func (ctl *KegiatanController) RekapFeedback(c *fiber.Ctx) error {
	kegiatanID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID kegiatan tidak valid")
	}

	var rows []model.FeedbackKegiatanModel
	if err := ctl.DB.
		Where("kegiatan_id = ?", kegiatanID).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	rekap := dto.RekapFeedback{KegiatanID: kegiatanID.String(), JumlahMasuk: int64(len(rows))}
	if len(rows) > 0 {
		var sum int
		for _, r := range rows {
			sum += r.Rating
		}
		rekap.RataRating = float64(sum) / float64(len(rows))
	}

	return helper.JsonOK(c, "ok", fiber.Map{
		"rekap":    rekap,
		"feedback": rows,
	})
}

func isUniqueViolation(err error) bool {
	return err != nil &&
		(strings.Contains(err.Error(), "duplicate key value") ||
			strings.Contains(err.Error(), "unique constraint") ||
			strings.Contains(err.Error(), "UNIQUE constraint"))
}
