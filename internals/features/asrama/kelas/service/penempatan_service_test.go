// file: internals/features/asrama/kelas/service/penempatan_service_test.go
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
	kelasModel "pesantrenku_backend/internals/features/asrama/kelas/model"
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
		&kelasModel.KelasModel{},
		&kelasModel.KelasSantriModel{},
	))
	return db
}

func seedSantri(t *testing.T, db *gorm.DB, nama string) userModel.UserModel {
	t.Helper()
	u := userModel.UserModel{
		Nama:       nama,
		NomorInduk: fmt.Sprintf("NIS-%s", nama),
		Password:   "rahasia",
		Role:       constants.RoleSantri,
		Gender:     constants.GenderLakiLaki,
		IsActive:   true,
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func seedKelas(t *testing.T, db *gorm.DB, nama string) kelasModel.KelasModel {
	t.Helper()
	k := kelasModel.KelasModel{Nama: nama, TahunAjaran: "2026/2027", IsActive: true}
	require.NoError(t, db.Create(&k).Error)
	return k
}

func TestTempatkanKelas_PindahKelasMenonaktifkanYangLama(t *testing.T) {
	db := openTestDB(t)
	svc := &PenempatanKelasService{DB: db}

	santri := seedSantri(t, db, "Ahmad")
	kelasA := seedKelas(t, db, "1 Tsanawiyah A")
	kelasB := seedKelas(t, db, "1 Tsanawiyah B")

	pertama, err := svc.Tempatkan(kelasA.ID, santri.ID)
	require.NoError(t, err)

	_, err = svc.Tempatkan(kelasB.ID, santri.ID)
	require.NoError(t, err)

	var lama kelasModel.KelasSantriModel
	require.NoError(t, db.First(&lama, "id = ?", pertama.ID).Error)
	assert.False(t, lama.IsActive)

	var aktif int64
	require.NoError(t, db.Model(&kelasModel.KelasSantriModel{}).
		Where("santri_id = ? AND is_active = ?", santri.ID, true).
		Count(&aktif).Error)
	assert.EqualValues(t, 1, aktif)
}

func TestDaftarAnggotaDanOpsi(t *testing.T) {
	db := openTestDB(t)
	svc := &PenempatanKelasService{DB: db}

	kelas := seedKelas(t, db, "2 Aliyah")
	anggota := seedSantri(t, db, "Budi")
	bebas := seedSantri(t, db, "Ahmad")

	_, err := svc.Tempatkan(kelas.ID, anggota.ID)
	require.NoError(t, err)

	daftar, err := svc.DaftarAnggota(kelas.ID)
	require.NoError(t, err)
	require.Len(t, daftar, 1)
	assert.Equal(t, anggota.ID, daftar[0].ID)

	opsi, err := svc.OpsiSantri()
	require.NoError(t, err)
	require.Len(t, opsi, 1)
	assert.Equal(t, bebas.ID, opsi[0].ID)

	// keluarkan → hilang dari daftar anggota, kembali jadi opsi
	require.NoError(t, svc.Keluarkan(kelas.ID, anggota.ID))
	assert.ErrorIs(t, svc.Keluarkan(kelas.ID, anggota.ID), ErrPenempatanTidakDitemukan)

	daftar, err = svc.DaftarAnggota(kelas.ID)
	require.NoError(t, err)
	assert.Empty(t, daftar)

	opsi, err = svc.OpsiSantri()
	require.NoError(t, err)
	assert.Len(t, opsi, 2)
}
