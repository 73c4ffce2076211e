package handler

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	// register decoders for DecodeConfig
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/webp"
)

const maxUploadSize = 10 << 20 // 10 MiB

// UploadImage streams a multipart image into the bucket under a unique key
// and returns its public URL with the decoded dimensions.
func (a *API) UploadImage(c *gin.Context) {
	if a.store == nil {
		respondError(c, http.StatusServiceUnavailable, CodeInternalError, "object storage is not configured")
		return
	}

	file, err := c.FormFile("image")
	if err != nil {
		respondError(c, http.StatusBadRequest, CodeBadRequest, "no image in request")
		return
	}
	if file.Size > maxUploadSize {
		respondError(c, http.StatusBadRequest, CodeBadRequest, "image exceeds 10MB")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		respondError(c, http.StatusBadRequest, CodeBadRequest, "only image uploads are allowed")
		return
	}

	src, err := file.Open()
	if err != nil {
		respondInternal(c, err)
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		respondInternal(c, err)
		return
	}

	width, height := 0, 0
	if cfg, _, err := image.DecodeConfig(bytes.NewReader(data)); err == nil {
		width, height = cfg.Width, cfg.Height
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	key := fmt.Sprintf("%s-%s%s", time.Now().Format("20060102"), uuid.New().String(), ext)

	url, err := a.store.Upload(c.Request.Context(), key, bytes.NewReader(data), int64(len(data)), contentType)
	if err != nil {
		respondInternal(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"url":    url,
		"key":    key,
		"width":  width,
		"height": height,
	})
}
