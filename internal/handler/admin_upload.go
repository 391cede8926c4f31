package handler

import (
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/zeruamusic/site-api/internal/model"
)

// MaxUploadBytes caps one uploaded image at 5 MB.
const MaxUploadBytes = 5 * 1024 * 1024

// acceptedMimeTypes are the image formats the site serves.
var acceptedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/avif": true,
}

var unsafeNameChars = regexp.MustCompile(`[^a-zA-Z0-9._-]`)

// storagePath sanitizes the original filename and prefixes it with a
// millisecond timestamp so repeated uploads of the same name never collide.
func storagePath(filename string, now time.Time) string {
	safe := unsafeNameChars.ReplaceAllString(filename, "_")
	return fmt.Sprintf("%d-%s", now.UnixMilli(), safe)
}

// Upload handles POST /api/admin/upload?bucket=<name> with a multipart
// "file" field, storing the image and returning its path and public URL.
func (h *AdminHandler) Upload(c echo.Context) error {
	bucket := c.QueryParam("bucket")
	if !model.AllowedBucket(bucket) {
		return jsonError(c, http.StatusBadRequest, "Invalid bucket")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return jsonError(c, http.StatusBadRequest, "file is required")
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if !acceptedMimeTypes[contentType] {
		return jsonError(c, http.StatusBadRequest, "Unsupported file type")
	}
	if fileHeader.Size > MaxUploadBytes {
		return jsonError(c, http.StatusBadRequest, "File too large (max 5MB)")
	}

	src, err := fileHeader.Open()
	if err != nil {
		return h.failRead(c, err)
	}
	defer src.Close()

	path := storagePath(fileHeader.Filename, time.Now())
	result, err := h.DB.UploadFile(c.Request().Context(), bucket, path, contentType, src)
	if err != nil {
		return h.failRead(c, err)
	}
	return jsonData(c, result)
}
