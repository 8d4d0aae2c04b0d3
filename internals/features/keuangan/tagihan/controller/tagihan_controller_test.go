// file: internals/features/keuangan/tagihan/controller/tagihan_controller_test.go
package controller

import (
	"net/http"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	tagihanModel "pesantrenku_backend/internals/features/keuangan/tagihan/model"
	userModel "pesantrenku_backend/internals/features/users/user/model"
)

func newListApp(t *testing.T) *fiber.App {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&tagihanModel.JenisTagihanModel{},
		&tagihanModel.TagihanModel{},
	))

	ctl := NewTagihanController(db)
	app := fiber.New()
	app.Get("/tagihan", ctl.List)
	return app
}

func TestList_FilterTidakValidDitolak(t *testing.T) {
	app := newListApp(t)

	kasus := []struct {
		nama string
		url  string
		want int
	}{
		{"santri_id bukan uuid", "/tagihan?santri_id=bukan-uuid", fiber.StatusBadRequest},
		{"jenis_tagihan_id bukan uuid", "/tagihan?jenis_tagihan_id=123", fiber.StatusBadRequest},
		{"tanpa filter", "/tagihan", fiber.StatusOK},
		{"filter uuid valid", "/tagihan?santri_id=0b54dca5-4a97-45f5-8ee2-9b6c1a2a2b3c", fiber.StatusOK},
	}

	for _, k := range kasus {
		t.Run(k.nama, func(t *testing.T) {
			req, err := http.NewRequest(http.MethodGet, k.url, nil)
			require.NoError(t, err)
			resp, err := app.Test(req, -1)
			require.NoError(t, err)
			assert.Equal(t, k.want, resp.StatusCode)
		})
	}
}
