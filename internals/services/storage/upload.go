package storage

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

var (
	// MIME allowlists mirror what the upload routes accept.
	PDFOnly     = []string{"application/pdf"}
	PDFAndExcel = []string{
		"application/pdf",
		"application/vnd.ms-excel",
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	}

	ErrNoFile          = errors.New("no file uploaded")
	ErrInvalidFileType = errors.New("invalid file type")
)

const MaxUploadSize = 10 << 20 // 10 MB

// SaveUploadedFile validates and persists a single multipart file from the
// request. The returned path is relative (e.g. "uploads/1735500000000.pdf")
// and is what gets stored on the owning row.
func SaveUploadedFile(c *fiber.Ctx, field, dir string, allowedMIMEs []string) (string, error) {
	fh, err := c.FormFile(field)
	if err != nil {
		return "", ErrNoFile
	}
	if fh.Size > MaxUploadSize {
		return "", fmt.Errorf("file exceeds %d bytes", int64(MaxUploadSize))
	}
	if !mimeAllowed(fh, allowedMIMEs) {
		return "", ErrInvalidFileType
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	name := fmt.Sprintf("%d%s", time.Now().UnixMilli(), ext)
	dst := filepath.Join(dir, name)
	if err := c.SaveFile(fh, dst); err != nil {
		return "", err
	}
	return filepath.ToSlash(dst), nil
}

func mimeAllowed(fh *multipart.FileHeader, allowed []string) bool {
	ct := fh.Header.Get("Content-Type")
	if i := strings.Index(ct, ";"); i >= 0 {
		ct = ct[:i]
	}
	ct = strings.TrimSpace(strings.ToLower(ct))
	for _, a := range allowed {
		if ct == a {
			return true
		}
	}
	return false
}
