// file: internals/features/asrama/kamar/service/penempatan_service_test.go
package service

import (
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pesantrenku_backend/internals/constants"
	kamarModel "pesantrenku_backend/internals/features/asrama/kamar/model"
	userModel "pesantrenku_backend/internals/features/users/user/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&userModel.UserModel{},
		&kamarModel.KamarModel{},
		&kamarModel.KamarSantriModel{},
	))
	return db
}

func seedSantri(t *testing.T, db *gorm.DB, nama, gender string) userModel.UserModel {
	t.Helper()
	u := userModel.UserModel{
		Nama:       nama,
		NomorInduk: fmt.Sprintf("NIS-%s", nama),
		Password:   "rahasia",
		Role:       constants.RoleSantri,
		Gender:     gender,
		IsActive:   true,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func seedKamar(t *testing.T, db *gorm.DB, nama, gender string) kamarModel.KamarModel {
	t.Helper()
	k := kamarModel.KamarModel{Nama: nama, Kapasitas: 4, Gender: gender, IsActive: true}
	require.NoError(t, db.Create(&k).Error)
	return k
}

func TestTempatkan_PindahKamarMenonaktifkanPenempatanLama(t *testing.T) {
	db := openTestDB(t)
	svc := &PenempatanKamarService{DB: db}

	santri := seedSantri(t, db, "Ahmad", constants.GenderLakiLaki)
	kamarA := seedKamar(t, db, "Al-Fatih 1", constants.GenderLakiLaki)
	kamarB := seedKamar(t, db, "Al-Fatih 2", constants.GenderLakiLaki)

	pertama, err := svc.Tempatkan(kamarA.ID, santri.ID)
	require.NoError(t, err)
	assert.True(t, pertama.IsActive)

	kedua, err := svc.Tempatkan(kamarB.ID, santri.ID)
	require.NoError(t, err)
	assert.Equal(t, kamarB.ID, kedua.KamarID)

	// penempatan lama nonaktif + tanggal_keluar terisi
	var lama kamarModel.KamarSantriModel
	require.NoError(t, db.First(&lama, "id = ?", pertama.ID).Error)
	assert.False(t, lama.IsActive)
	assert.NotNil(t, lama.TanggalKeluar)

	// tepat satu penempatan aktif tersisa
	var aktif int64
	require.NoError(t, db.Model(&kamarModel.KamarSantriModel{}).
		Where("santri_id = ? AND is_active = ?", santri.ID, true).
		Count(&aktif).Error)
	assert.EqualValues(t, 1, aktif)
}

func TestTempatkan_Validasi(t *testing.T) {
	db := openTestDB(t)
	svc := &PenempatanKamarService{DB: db}

	santri := seedSantri(t, db, "Budi", constants.GenderLakiLaki)
	kamar := seedKamar(t, db, "An-Nur", constants.GenderLakiLaki)

	kamarMati := seedKamar(t, db, "Gudang", constants.GenderLakiLaki)
	require.NoError(t, db.Model(&kamarModel.KamarModel{}).
		Where("id = ?", kamarMati.ID).Update("is_active", false).Error)

	pengurus := userModel.UserModel{
		Nama: "Pak Ustadz", NomorInduk: "NIP-1", Password: "rahasia",
		Role: constants.RolePengurus, Gender: constants.GenderLakiLaki, IsActive: true,
	}
	require.NoError(t, db.Create(&pengurus).Error)

	_, err := svc.Tempatkan(kamarMati.ID, santri.ID)
	assert.ErrorIs(t, err, ErrKamarTidakDitemukan)

	// bukan role santri
	_, err = svc.Tempatkan(kamar.ID, pengurus.ID)
	assert.ErrorIs(t, err, ErrSantriTidakDitemukan)

	// gagal validasi → tidak ada baris penempatan tertulis
	var total int64
	require.NoError(t, db.Model(&kamarModel.KamarSantriModel{}).Count(&total).Error)
	assert.EqualValues(t, 0, total)
}

func TestKeluarkan(t *testing.T) {
	db := openTestDB(t)
	svc := &PenempatanKamarService{DB: db}

	santri := seedSantri(t, db, "Citra", constants.GenderPerempuan)
	kamar := seedKamar(t, db, "Khadijah", constants.GenderPerempuan)

	penempatan, err := svc.Tempatkan(kamar.ID, santri.ID)
	require.NoError(t, err)

	penghuni, err := svc.DaftarPenghuni(kamar.ID)
	require.NoError(t, err)
	require.Len(t, penghuni, 1)
	assert.Equal(t, santri.ID, penghuni[0].ID)

	require.NoError(t, svc.Keluarkan(kamar.ID, santri.ID))

	// setelah dikeluarkan, daftar penghuni tidak memuat santri itu lagi
	penghuni, err = svc.DaftarPenghuni(kamar.ID)
	require.NoError(t, err)
	assert.Empty(t, penghuni)

	var row kamarModel.KamarSantriModel
	require.NoError(t, db.First(&row, "id = ?", penempatan.ID).Error)
	assert.False(t, row.IsActive)
	assert.NotNil(t, row.TanggalKeluar)

	// sudah tidak ada penempatan aktif → sentinel
	assert.ErrorIs(t, svc.Keluarkan(kamar.ID, santri.ID), ErrPenempatanTidakDitemukan)
}

func TestOpsiSantri(t *testing.T) {
	db := openTestDB(t)
	svc := &PenempatanKamarService{DB: db}

	kamar := seedKamar(t, db, "Al-Fatih 1", constants.GenderLakiLaki)
	bebas := seedSantri(t, db, "Dedi", constants.GenderLakiLaki)
	terisi := seedSantri(t, db, "Eko", constants.GenderLakiLaki)
	seedSantri(t, db, "Fatimah", constants.GenderPerempuan)

	_, err := svc.Tempatkan(kamar.ID, terisi.ID)
	require.NoError(t, err)

	opsi, err := svc.OpsiSantri(constants.GenderLakiLaki)
	require.NoError(t, err)
	require.Len(t, opsi, 1)
	assert.Equal(t, bebas.ID, opsi[0].ID)

	// gender tak dikenal jatuh ke Laki-laki
	fallback, err := svc.OpsiSantri("campur")
	require.NoError(t, err)
	require.Len(t, fallback, 1)
	assert.Equal(t, bebas.ID, fallback[0].ID)

	perempuan, err := svc.OpsiSantri(constants.GenderPerempuan)
	require.NoError(t, err)
	assert.Len(t, perempuan, 1)
}
