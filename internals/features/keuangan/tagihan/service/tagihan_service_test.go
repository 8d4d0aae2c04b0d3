// file: internals/features/keuangan/tagihan/service/tagihan_service_test.go
package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"pesantrenku_backend/internals/constants"
	tagihanModel "pesantrenku_backend/internals/features/keuangan/tagihan/model"
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
		&tagihanModel.JenisTagihanModel{},
		&tagihanModel.TagihanModel{},
	))
	return db
}

func seedSantri(t *testing.T, db *gorm.DB, nama string, aktif bool) userModel.UserModel {
	t.Helper()
	u := userModel.UserModel{
		Nama:       nama,
		NomorInduk: fmt.Sprintf("NIS-%s", nama),
		Password:   "rahasia",
		Role:       constants.RoleSantri,
		Gender:     constants.GenderLakiLaki,
		IsActive:   aktif,
	}
	require.NoError(t, db.Create(&u).Error)
	if !aktif {
		// default:true di kolom; paksa nonaktif setelah insert
		require.NoError(t, db.Model(&userModel.UserModel{}).
			Where("id = ?", u.ID).Update("is_active", false).Error)
	}
	return u
}

func seedJenis(t *testing.T, db *gorm.DB, nama string) tagihanModel.JenisTagihanModel {
	t.Helper()
	j := tagihanModel.JenisTagihanModel{Nama: nama, IsActive: true}
	require.NoError(t, db.Create(&j).Error)
	return j
}

func templateSPP(jenisID uuid.UUID) TagihanTemplate {
	now := time.Now()
	return TagihanTemplate{
		JenisTagihanID: jenisID,
		Nama:           "SPP September 2026",
		Nominal:        350_000,
		TanggalTagihan: now,
		JatuhTempo:     now.AddDate(0, 1, 0),
	}
}

func TestBuatMassal_SemuaSantriAktif(t *testing.T) {
	db := openTestDB(t)
	svc := &TagihanService{DB: db}

	jenis := seedJenis(t, db, "SPP")
	a := seedSantri(t, db, "Ahmad", true)
	b := seedSantri(t, db, "Budi", true)
	seedSantri(t, db, "Cuti", false) // nonaktif, tidak kebagian

	// bukan santri, tidak kebagian
	pengurus := userModel.UserModel{
		Nama: "Admin Keu", NomorInduk: "NIP-9", Password: "rahasia",
		Role: constants.RolePengurus, Gender: constants.GenderLakiLaki, IsActive: true,
	}
	require.NoError(t, db.Create(&pengurus).Error)

	created, err := svc.BuatMassal(templateSPP(jenis.ID), TargetSantri{All: true})
	require.NoError(t, err)
	assert.Equal(t, 2, created)

	var rows []tagihanModel.TagihanModel
	require.NoError(t, db.Order("created_at ASC").Find(&rows).Error)
	require.Len(t, rows, 2)

	penerima := map[uuid.UUID]bool{}
	for _, r := range rows {
		penerima[r.SantriID] = true
		// semua baris identik kecuali santri_id
		assert.Equal(t, "SPP September 2026", r.Nama)
		assert.EqualValues(t, 350_000, r.Nominal)
		assert.Equal(t, constants.TagihanAktif, r.Status)
		assert.Equal(t, jenis.ID, r.JenisTagihanID)
	}
	assert.True(t, penerima[a.ID])
	assert.True(t, penerima[b.ID])
}

func TestBuatMassal_DaftarEksplisit(t *testing.T) {
	db := openTestDB(t)
	svc := &TagihanService{DB: db}

	jenis := seedJenis(t, db, "Uang Makan")
	a := seedSantri(t, db, "Ahmad", true)
	seedSantri(t, db, "Budi", true)

	created, err := svc.BuatMassal(templateSPP(jenis.ID), TargetSantri{IDs: []uuid.UUID{a.ID}})
	require.NoError(t, err)
	assert.Equal(t, 1, created)

	var total int64
	require.NoError(t, db.Model(&tagihanModel.TagihanModel{}).Count(&total).Error)
	assert.EqualValues(t, 1, total)
}

func TestBuatMassal_TargetInvalidTidakMenulisApapun(t *testing.T) {
	db := openTestDB(t)
	svc := &TagihanService{DB: db}

	jenis := seedJenis(t, db, "SPP")
	a := seedSantri(t, db, "Ahmad", true)

	kasus := []struct {
		nama   string
		target TargetSantri
		want   error
	}{
		{"daftar kosong", TargetSantri{}, ErrTargetKosong},
		{"id tidak dikenal", TargetSantri{IDs: []uuid.UUID{a.ID, uuid.New()}}, ErrSantriTidakDitemukan},
	}
	for _, k := range kasus {
		t.Run(k.nama, func(t *testing.T) {
			created, err := svc.BuatMassal(templateSPP(jenis.ID), k.target)
			assert.ErrorIs(t, err, k.want)
			assert.Zero(t, created)
		})
	}

	// atomik: tidak ada baris parsial yang masuk
	var total int64
	require.NoError(t, db.Model(&tagihanModel.TagihanModel{}).Count(&total).Error)
	assert.EqualValues(t, 0, total)
}

func TestBuatMassal_JenisTidakDitemukan(t *testing.T) {
	db := openTestDB(t)
	svc := &TagihanService{DB: db}
	seedSantri(t, db, "Ahmad", true)

	_, err := svc.BuatMassal(templateSPP(uuid.New()), TargetSantri{All: true})
	assert.ErrorIs(t, err, ErrJenisTagihanTidakDitemukan)
}

func TestUbahStatus(t *testing.T) {
	db := openTestDB(t)
	svc := &TagihanService{DB: db}

	jenis := seedJenis(t, db, "SPP")
	a := seedSantri(t, db, "Ahmad", true)
	_, err := svc.BuatMassal(templateSPP(jenis.ID), TargetSantri{IDs: []uuid.UUID{a.ID}})
	require.NoError(t, err)

	var tagihan tagihanModel.TagihanModel
	require.NoError(t, db.First(&tagihan).Error)

	updated, err := svc.UbahStatus(tagihan.ID, constants.TagihanLunas)
	require.NoError(t, err)
	assert.Equal(t, constants.TagihanLunas, updated.Status)

	_, err = svc.UbahStatus(uuid.New(), constants.TagihanLunas)
	assert.ErrorIs(t, err, ErrTagihanTidakDitemukan)
}
