// Package media handles image uploads to object storage.
package media

import (
	"context"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"fiber-ent-market-pg/internal/blob"
	"fiber-ent-market-pg/internal/httpx/kit"
)

const (
	maxUploadBytes  = 10 << 20 // 10 MiB
	presignTTLSec   = 15 * 60
	uploadKeyPrefix = "media/"
)

var allowedExt = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".gif":  "image/gif",
}

// UploadHandler accepts a multipart image and stores it in object storage,
// returning the object key and a presigned GET URL.
//
//	@Summary      Upload image
//	@Tags         media
//	@Accept       multipart/form-data
//	@Produce      json
//	@Security     BearerAuth
//	@Param        file  formData  file  true  "image file"
//	@Success      201   {object}  map[string]interface{}
//	@Failure      400   {object}  map[string]interface{}
//	@Router       /api/v1/media/upload [post]
func UploadHandler(store blob.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if store == nil {
			return kit.InternalError("media storage not configured", nil)
		}
		fh, err := c.FormFile("file")
		if err != nil {
			return kit.BadRequest("file required", nil)
		}
		if fh.Size > maxUploadBytes {
			return kit.BadRequest("file too large", fh.Size)
		}
		ext := strings.ToLower(filepath.Ext(fh.Filename))
		contentType, ok := allowedExt[ext]
		if !ok {
			return kit.BadRequest("unsupported file type", ext)
		}

		f, err := fh.Open()
		if err != nil {
			return kit.InternalError("open upload failed", err.Error())
		}
		defer f.Close()
		data, err := io.ReadAll(io.LimitReader(f, maxUploadBytes+1))
		if err != nil {
			return kit.InternalError("read upload failed", err.Error())
		}
		if len(data) > maxUploadBytes {
			return kit.BadRequest("file too large", nil)
		}

		key := uploadKeyPrefix + uuid.NewString() + ext
		ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
		defer cancel()
		if _, err := store.PutObject(ctx, key, data, contentType); err != nil {
			return kit.InternalError("store upload failed", nil)
		}
		url, err := store.PresignGet(ctx, key, presignTTLSec)
		if err != nil {
			return kit.InternalError("presign failed", nil)
		}
		return kit.Created(c, fiber.Map{"key": key, "url": url, "size": len(data)})
	}
}
