// file: internals/helpers/storage/screenshot_store.go
package storage

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/chai2010/webp"
	"github.com/disintegration/imaging"
	"github.com/google/uuid"

	"coursepay_backend/internals/configs"
)

const (
	maxUploadSize = int64(5 * 1024 * 1024)
	maxWidth      = 1600
	webpQuality   = 80
)

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

// StoredFile describes a persisted screenshot: the public URL handed back to
// the client plus the metadata kept alongside the ledger entry.
type StoredFile struct {
	URL  string         `json:"url"`
	Meta map[string]any `json:"meta"`
}

// SavePaymentScreenshot normalizes an uploaded proof-of-payment image
// (downscale + re-encode to WebP) and writes it under UPLOAD_DIR. The file is
// served statically under /uploads.
func SavePaymentScreenshot(fh *multipart.FileHeader) (*StoredFile, error) {
	if fh.Size > maxUploadSize {
		return nil, fmt.Errorf("file too large (max %d bytes)", maxUploadSize)
	}
	contentType := strings.ToLower(strings.TrimSpace(fh.Header.Get("Content-Type")))
	if !allowedTypes[contentType] {
		return nil, fmt.Errorf("unsupported content type %q", contentType)
	}

	src, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer src.Close()

	raw, err := io.ReadAll(io.LimitReader(src, maxUploadSize+1))
	if err != nil {
		return nil, err
	}
	if int64(len(raw)) > maxUploadSize {
		return nil, fmt.Errorf("file too large (max %d bytes)", maxUploadSize)
	}

	img, err := decodeImage(raw, contentType)
	if err != nil {
		return nil, fmt.Errorf("not a decodable image: %w", err)
	}
	if img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("webp encode: %w", err)
	}

	dir := filepath.Join(configs.UploadDir, "payment-screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	name := uuid.New().String() + ".webp"
	if err := os.WriteFile(filepath.Join(dir, name), buf.Bytes(), 0o644); err != nil {
		return nil, err
	}

	return &StoredFile{
		URL: "/uploads/payment-screenshots/" + name,
		Meta: map[string]any{
			"original_name": fh.Filename,
			"original_size": fh.Size,
			"content_type":  contentType,
			"stored_format": "webp",
			"width":         img.Bounds().Dx(),
			"height":        img.Bounds().Dy(),
			"stored_size":   buf.Len(),
		},
	}, nil
}

func decodeImage(raw []byte, contentType string) (image.Image, error) {
	if contentType == "image/webp" {
		return webp.Decode(bytes.NewReader(raw))
	}
	return imaging.Decode(bytes.NewReader(raw))
}
