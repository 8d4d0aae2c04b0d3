// file: internals/features/keuangan/pembayaran/controller/pembayaran_controller_test.go
package controller

import (
	"bytes"
	"io/fs"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pesantrenku_backend/internals/constants"
	pembayaranModel "pesantrenku_backend/internals/features/keuangan/pembayaran/model"
	tagihanModel "pesantrenku_backend/internals/features/keuangan/tagihan/model"
	userModel "pesantrenku_backend/internals/features/users/user/model"
	helper "pesantrenku_backend/internals/helpers"
	"pesantrenku_backend/internals/helpers/storage"
)

var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&tagihanModel.JenisTagihanModel{},
		&tagihanModel.TagihanModel{},
		&pembayaranModel.PembayaranModel{},
	))
	return db
}

func seedTagihan(t *testing.T, db *gorm.DB, nomorInduk string) (userModel.UserModel, tagihanModel.TagihanModel) {
	t.Helper()

	santri := userModel.UserModel{
		Nama:       "Santri " + nomorInduk,
		NomorInduk: nomorInduk,
		Password:   "rahasia",
		Role:       constants.RoleSantri,
		Gender:     constants.GenderLakiLaki,
		IsActive:   true,
	}
	require.NoError(t, db.Create(&santri).Error)

	jenis := tagihanModel.JenisTagihanModel{Nama: "SPP", IsActive: true}
	require.NoError(t, db.Create(&jenis).Error)

	now := time.Now()
	tagihan := tagihanModel.TagihanModel{
		SantriID:       santri.ID,
		JenisTagihanID: jenis.ID,
		Nama:           "SPP September 2026",
		Nominal:        350_000,
		TanggalTagihan: now,
		JatuhTempo:     now.AddDate(0, 1, 0),
		Status:         constants.TagihanAktif,
		IsActive:       true,
	}
	require.NoError(t, db.Create(&tagihan).Error)
	return santri, tagihan
}

// newSubmitApp memasang ctl.Submit di belakang middleware yang menyuntik
// user id login ke Locals, seperti yang dilakukan middleware auth.
func newSubmitApp(ctl *PembayaranController, loginID uuid.UUID) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals(helper.LocUserID, loginID)
		return c.Next()
	})
	app.Post("/tagihan/:id/pembayaran", ctl.Submit)
	return app
}

func buildSubmitRequest(t *testing.T, tagihanID uuid.UUID) *http.Request {
	t.Helper()

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	fw, err := w.CreateFormFile("bukti_bayar", "bukti.png")
	require.NoError(t, err)
	_, err = fw.Write(pngBytes)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req, err := http.NewRequest(http.MethodPost, "/tagihan/"+tagihanID.String()+"/pembayaran", &body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func countFiles(t *testing.T, dir string) int {
	t.Helper()
	n := 0
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			n++
		}
		return nil
	})
	require.NoError(t, err)
	return n
}

func TestSubmit_TagihanSantriLainBuktiTidakTertinggal(t *testing.T) {
	db := openTestDB(t)
	blob := storage.NewLocalBlobService(t.TempDir())
	ctl := NewPembayaranController(db, blob)

	_, tagihanOrang := seedTagihan(t, db, "NIS-001")
	penyusup, _ := seedTagihan(t, db, "NIS-002")

	app := newSubmitApp(ctl, penyusup.ID)
	resp, err := app.Test(buildSubmitRequest(t, tagihanOrang.ID), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	// bukti yang sempat tersimpan harus sudah dihapus lagi dari disk
	assert.Zero(t, countFiles(t, blob.BaseDir))

	var total int64
	require.NoError(t, db.Model(&pembayaranModel.PembayaranModel{}).Count(&total).Error)
	assert.EqualValues(t, 0, total)
}

func TestSubmit_TagihanSendiriBuktiTersimpan(t *testing.T) {
	db := openTestDB(t)
	blob := storage.NewLocalBlobService(t.TempDir())
	ctl := NewPembayaranController(db, blob)

	santri, tagihan := seedTagihan(t, db, "NIS-001")

	app := newSubmitApp(ctl, santri.ID)
	resp, err := app.Test(buildSubmitRequest(t, tagihan.ID), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	assert.Equal(t, 1, countFiles(t, blob.BaseDir))

	var pembayaran pembayaranModel.PembayaranModel
	require.NoError(t, db.First(&pembayaran, "tagihan_id = ?", tagihan.ID).Error)
	assert.Equal(t, constants.PembayaranPending, pembayaran.Status)
}
