// file: internals/helpers/pagination_test.go
package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPaginationFromPage(t *testing.T) {
	kasus := []struct {
		nama    string
		total   int64
		page    int
		perPage int
		want    Pagination
	}{
		{
			nama: "halaman tengah", total: 45, page: 2, perPage: 20,
			want: Pagination{Page: 2, PerPage: 20, Total: 45, TotalPages: 3, HasNext: true, HasPrev: true},
		},
		{
			nama: "halaman terakhir", total: 45, page: 3, perPage: 20,
			want: Pagination{Page: 3, PerPage: 20, Total: 45, TotalPages: 3, HasNext: false, HasPrev: true},
		},
		{
			nama: "data kosong tetap 1 halaman", total: 0, page: 1, perPage: 20,
			want: Pagination{Page: 1, PerPage: 20, Total: 0, TotalPages: 1, HasNext: false, HasPrev: false},
		},
		{
			nama: "perPage nol pakai default", total: 10, page: 0, perPage: 0,
			want: Pagination{Page: 1, PerPage: 20, Total: 10, TotalPages: 1, HasNext: false, HasPrev: false},
		},
		{
			nama: "total pas kelipatan", total: 40, page: 1, perPage: 20,
			want: Pagination{Page: 1, PerPage: 20, Total: 40, TotalPages: 2, HasNext: true, HasPrev: false},
		},
	}

	for _, k := range kasus {
		t.Run(k.nama, func(t *testing.T) {
			assert.Equal(t, k.want, BuildPaginationFromPage(k.total, k.page, k.perPage))
		})
	}
}
