// file: internals/helpers/storage/local_blob_service.go
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// MaxUploadSize membatasi semua file upload (bukti bayar, foto, gambar).
const MaxUploadSize = 2 << 20 // 2MB

// allowedMime: gambar + PDF saja.
var allowedMime = map[string]string{
	"image/jpeg":      ".jpg",
	"image/png":       ".png",
	"image/webp":      ".webp",
	"application/pdf": ".pdf",
}

/*
LocalBlobService menyimpan file multipart ke disk lokal di bawah baseDir
dan mengembalikan public URL di bawah publicPrefix (di-serve statis
lewat app.Static di main.go).
*/
type LocalBlobService struct {
	BaseDir      string // contoh: ./uploads
	PublicPrefix string // contoh: /uploads
}

func NewLocalBlobService(baseDir string) *LocalBlobService {
	return &LocalBlobService{
		BaseDir:      baseDir,
		PublicPrefix: "/uploads",
	}
}

// Save memvalidasi (ukuran + mime) lalu menyimpan file ke <BaseDir>/<slot>/.
// Return public URL untuk disimpan di DB.
func (s *LocalBlobService) Save(fh *multipart.FileHeader, slot string) (string, error) {
	if fh == nil {
		return "", fiber.NewError(fiber.StatusBadRequest, "File tidak ditemukan")
	}
	if fh.Size > MaxUploadSize {
		return "", fiber.NewError(fiber.StatusBadRequest, "Ukuran file maksimal 2MB")
	}

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	// sniff content type dari isi file, bukan header client
	head := make([]byte, 512)
	n, err := src.Read(head)
	if err != nil && err != io.EOF {
		return "", err
	}
	contentType := http.DetectContentType(head[:n])
	ext, ok := allowedMime[normalizeMime(contentType)]
	if !ok {
		return "", fiber.NewError(fiber.StatusBadRequest, "Tipe file harus gambar (JPG/PNG/WebP) atau PDF")
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	dir := filepath.Join(s.BaseDir, slot)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%s%s", uuid.New().String(), ext)
	dstPath := filepath.Join(dir, name)

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		_ = os.Remove(dstPath)
		return "", err
	}

	return path.Join(s.PublicPrefix, slot, name), nil
}

// Remove menghapus file berdasarkan public URL yang dihasilkan Save.
// Aman dipanggil ulang: file yang sudah hilang bukan error.
func (s *LocalBlobService) Remove(publicURL string) error {
	rel, ok := strings.CutPrefix(publicURL, s.PublicPrefix+"/")
	if !ok {
		return fmt.Errorf("bukan URL upload lokal: %s", publicURL)
	}
	// tolak path traversal
	rel = filepath.Clean(rel)
	if strings.HasPrefix(rel, "..") || filepath.IsAbs(rel) {
		return fmt.Errorf("path upload tidak valid: %s", publicURL)
	}
	err := os.Remove(filepath.Join(s.BaseDir, rel))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func normalizeMime(ct string) string {
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	return strings.ToLower(strings.TrimSpace(ct))
}
