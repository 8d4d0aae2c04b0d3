// file: internals/features/keuangan/tagihan/dto/tagihan_dto_test.go
package dto

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetSantriDTO_UnmarshalJSON(t *testing.T) {
	id1 := uuid.New()
	id2 := uuid.New()

	t.Run("bentuk all", func(t *testing.T) {
		var target TargetSantriDTO
		require.NoError(t, json.Unmarshal([]byte(`"all"`), &target))
		assert.True(t, target.All)
		assert.Nil(t, target.IDs)
	})

	t.Run("all tidak case sensitive", func(t *testing.T) {
		var target TargetSantriDTO
		require.NoError(t, json.Unmarshal([]byte(`" ALL "`), &target))
		assert.True(t, target.All)
	})

	t.Run("bentuk array id", func(t *testing.T) {
		raw := []byte(`["` + id1.String() + `","` + id2.String() + `"]`)
		var target TargetSantriDTO
		require.NoError(t, json.Unmarshal(raw, &target))
		assert.False(t, target.All)
		assert.Equal(t, []uuid.UUID{id1, id2}, target.IDs)
	})

	t.Run("string selain all ditolak", func(t *testing.T) {
		var target TargetSantriDTO
		assert.Error(t, json.Unmarshal([]byte(`"semua"`), &target))
	})

	t.Run("array berisi bukan uuid ditolak", func(t *testing.T) {
		var target TargetSantriDTO
		assert.Error(t, json.Unmarshal([]byte(`["bukan-uuid"]`), &target))
	})

	t.Run("angka ditolak", func(t *testing.T) {
		var target TargetSantriDTO
		assert.Error(t, json.Unmarshal([]byte(`42`), &target))
	})
}

func TestTagihanBulkCreateDTO_DibungkusJSON(t *testing.T) {
	jenisID := uuid.New()
	raw := []byte(`{
		"jenis_tagihan_id": "` + jenisID.String() + `",
		"nama": "  SPP September 2026  ",
		"nominal": 350000,
		"tanggal_tagihan": "2026-09-01T00:00:00Z",
		"jatuh_tempo": "2026-09-30T00:00:00Z",
		"target_santri": "all"
	}`)

	var in TagihanBulkCreateDTO
	require.NoError(t, json.Unmarshal(raw, &in))

	tpl := in.ToTemplate()
	assert.Equal(t, jenisID, tpl.JenisTagihanID)
	assert.Equal(t, "SPP September 2026", tpl.Nama) // nama di-trim
	assert.EqualValues(t, 350000, tpl.Nominal)
	assert.True(t, in.TargetSantri.ToTarget().All)
}
