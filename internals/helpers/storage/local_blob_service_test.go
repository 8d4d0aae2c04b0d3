// file: internals/helpers/storage/local_blob_service_test.go
package storage

import (
	"bytes"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// pngBytes: header PNG valid supaya lolos sniffing content type.
var pngBytes = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n', 0, 0, 0, 0}

func buildFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	form, err := multipart.NewReader(&buf, w.Boundary()).ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	files := form.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func newTestBlob(t *testing.T) *LocalBlobService {
	t.Helper()
	return NewLocalBlobService(t.TempDir())
}

func TestSave_PNGValid(t *testing.T) {
	blob := newTestBlob(t)
	fh := buildFileHeader(t, "bukti.png", pngBytes)

	url, err := blob.Save(fh, "bukti-bayar")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(url, "/uploads/bukti-bayar/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	// file benar-benar ada di disk
	rel := strings.TrimPrefix(url, "/uploads/")
	onDisk, err := os.ReadFile(filepath.Join(blob.BaseDir, rel))
	require.NoError(t, err)
	assert.Equal(t, pngBytes, onDisk)
}

func TestSave_TolakFileTerlaluBesar(t *testing.T) {
	blob := newTestBlob(t)

	besar := make([]byte, MaxUploadSize+1)
	copy(besar, pngBytes)
	fh := buildFileHeader(t, "besar.png", besar)

	_, err := blob.Save(fh, "bukti-bayar")
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)
}

func TestSave_TolakTipeFile(t *testing.T) {
	blob := newTestBlob(t)
	fh := buildFileHeader(t, "skrip.html", []byte("<html><script>alert(1)</script></html>"))

	_, err := blob.Save(fh, "bukti-bayar")
	var fe *fiber.Error
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)

	// tidak ada file tertulis
	entries, err := os.ReadDir(blob.BaseDir)
	if err == nil {
		assert.Empty(t, entries)
	}
}

func TestRemove(t *testing.T) {
	blob := newTestBlob(t)
	fh := buildFileHeader(t, "bukti.png", pngBytes)

	url, err := blob.Save(fh, "bukti-bayar")
	require.NoError(t, err)

	require.NoError(t, blob.Remove(url))

	rel := strings.TrimPrefix(url, "/uploads/")
	_, statErr := os.Stat(filepath.Join(blob.BaseDir, rel))
	assert.True(t, os.IsNotExist(statErr))

	// idempoten: file sudah hilang bukan error
	assert.NoError(t, blob.Remove(url))
}

func TestRemove_TolakPathInvalid(t *testing.T) {
	blob := newTestBlob(t)

	assert.Error(t, blob.Remove("/etc/passwd"))
	assert.Error(t, blob.Remove("/uploads/../../etc/passwd"))
}
