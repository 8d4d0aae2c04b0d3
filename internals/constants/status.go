package constants

// Status tagihan — transisi hanya lewat aksi pengurus, tidak pernah
// diturunkan otomatis dari pembayaran.
const (
	TagihanAktif = "Aktif"
	TagihanLunas = "Lunas"
)

// Status pembayaran
const (
	PembayaranPending  = "Pending"
	PembayaranBerhasil = "Berhasil"
	PembayaranGagal    = "Gagal"
)

// Status pengaduan
const (
	PengaduanMenunggu = "Menunggu"
	PengaduanDiproses = "Diproses"
	PengaduanSelesai  = "Selesai"
)

// Status pengajuan layanan
const (
	LayananMenunggu = "Menunggu"
	LayananDiproses = "Diproses"
	LayananSelesai  = "Selesai"
	LayananDitolak  = "Ditolak"
)

// Gender values (mengikuti data asrama)
const (
	GenderLakiLaki  = "Laki-laki"
	GenderPerempuan = "Perempuan"
)

func ValidTagihanStatus(s string) bool {
	return s == TagihanAktif || s == TagihanLunas
}

func ValidPembayaranVerifyStatus(s string) bool {
	return s == PembayaranBerhasil || s == PembayaranGagal
}

func ValidLayananStatus(s string) bool {
	switch s {
	case LayananMenunggu, LayananDiproses, LayananSelesai, LayananDitolak:
		return true
	}
	return false
}

func ValidPengaduanStatus(s string) bool {
	switch s {
	case PengaduanMenunggu, PengaduanDiproses, PengaduanSelesai:
		return true
	}
	return false
}

// NormalizeGender: selain "Perempuan" dianggap "Laki-laki".
func NormalizeGender(g string) string {
	if g == GenderPerempuan {
		return GenderPerempuan
	}
	return GenderLakiLaki
}
