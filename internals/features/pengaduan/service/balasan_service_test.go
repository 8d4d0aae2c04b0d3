// file: internals/features/pengaduan/service/balasan_service_test.go
package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pesantrenku_backend/internals/constants"
	pengaduanModel "pesantrenku_backend/internals/features/pengaduan/model"
)

func TestCanReply(t *testing.T) {
	kasus := []struct {
		nama   string
		role   string
		status string
		want   bool
	}{
		{"orangtua pada thread menunggu", constants.RoleOrangtua, constants.PengaduanMenunggu, true},
		{"orangtua pada thread diproses", constants.RoleOrangtua, constants.PengaduanDiproses, true},
		{"orangtua pada thread selesai", constants.RoleOrangtua, constants.PengaduanSelesai, false},
		{"admin pada thread diproses", constants.RoleAdmin, constants.PengaduanDiproses, true},
		{"pengurus pada thread selesai", constants.RolePengurus, constants.PengaduanSelesai, false},
		{"santri tidak pernah boleh", constants.RoleSantri, constants.PengaduanMenunggu, false},
		{"ustadz tidak pernah boleh", constants.RoleUstadz, constants.PengaduanMenunggu, false},
		{"role dari token tidak dinormalisasi klien", "  Orangtua ", constants.PengaduanMenunggu, true},
		{"role kosong", "", constants.PengaduanMenunggu, false},
	}

	for _, k := range kasus {
		t.Run(k.nama, func(t *testing.T) {
			assert.Equal(t, k.want, CanReply(k.role, k.status))
		})
	}
}

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&pengaduanModel.PengaduanModel{},
		&pengaduanModel.PengaduanBalasanModel{},
	))
	return db
}

func seedPengaduan(t *testing.T, db *gorm.DB, status string) pengaduanModel.PengaduanModel {
	t.Helper()
	p := pengaduanModel.PengaduanModel{
		PelaporID: uuid.New(),
		Judul:     "AC kamar rusak",
		Isi:       "Sudah tiga hari AC kamar Al-Fatih 1 mati.",
		Status:    status,
		IsActive:  true,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func TestTambahBalasan(t *testing.T) {
	db := openTestDB(t)
	svc := &BalasanService{DB: db}

	pengaduan := seedPengaduan(t, db, constants.PengaduanDiproses)
	penulis := uuid.New()

	balasan, err := svc.Tambah(pengaduan.ID, penulis, constants.RolePengurus, "Teknisi dijadwalkan besok.")
	require.NoError(t, err)
	assert.Equal(t, pengaduan.ID, balasan.PengaduanID)
	assert.Equal(t, penulis, balasan.PenulisID)
}

func TestTambahBalasan_Ditolak(t *testing.T) {
	db := openTestDB(t)
	svc := &BalasanService{DB: db}

	selesai := seedPengaduan(t, db, constants.PengaduanSelesai)
	terbuka := seedPengaduan(t, db, constants.PengaduanMenunggu)

	// status dibaca ulang dari DB, bukan klaim klien
	_, err := svc.Tambah(selesai.ID, uuid.New(), constants.RoleOrangtua, "masih rusak")
	assert.ErrorIs(t, err, ErrPengaduanSudahSelesai)

	_, err = svc.Tambah(terbuka.ID, uuid.New(), constants.RoleSantri, "ikut lapor")
	assert.ErrorIs(t, err, ErrRoleTidakBolehMembalas)

	_, err = svc.Tambah(uuid.New(), uuid.New(), constants.RoleOrangtua, "halo")
	assert.ErrorIs(t, err, ErrPengaduanTidakDitemukan)

	// tidak ada balasan yang tertulis
	var total int64
	require.NoError(t, db.Model(&pengaduanModel.PengaduanBalasanModel{}).Count(&total).Error)
	assert.EqualValues(t, 0, total)
}
