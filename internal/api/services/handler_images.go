package services

import (
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"servicetrack/database"
	"servicetrack/internal/domain/services"
	"servicetrack/internal/infra/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// maxImageSize is the per-file upload ceiling. Oversized files are skipped,
// never abort the batch.
const maxImageSize = 5 << 20 // 5 MiB

// ------------------------------
// POST /services/:id/images  (multipart, field "images", multiple)
// ------------------------------
func UploadImages(c *gin.Context) {
	svc, ok := loadService(c)
	if !ok {
		return
	}
	if !mustOwn(c, svc) {
		return
	}
	userID := c.GetUint("user_id")

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid multipart form"})
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No images provided"})
		return
	}

	var stored []string
	var skipped []string

	for _, fh := range files {
		if fh.Size > maxImageSize {
			skipped = append(skipped, fh.Filename)
			continue
		}

		src, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to read %s", fh.Filename)})
			return
		}
		data, err := io.ReadAll(src)
		src.Close()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": fmt.Sprintf("Failed to read %s", fh.Filename)})
			return
		}

		// Key mixes owner, record, time and a random suffix so concurrent
		// uploads against the same record can never collide.
		now := time.Now().UnixMilli()
		ext := strings.ToLower(filepath.Ext(fh.Filename))
		key := fmt.Sprintf("%d/%s_%d_%s%s", userID, svc.ID, now, uuid.NewString()[:8], ext)

		url, err := storage.Files.Put(key, data)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store image", "details": err.Error()})
			return
		}

		// Cache-busting query; the stored reference keeps it, identity is
		// the whole string.
		stored = append(stored, fmt.Sprintf("%s?t=%d", url, now))
	}

	if len(stored) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"image_url": svc.ImageURL,
			"images":    svc.Images,
			"skipped":   skipped,
		})
		return
	}

	// Placement over the whole batch from one snapshot, then one atomic
	// (image_url, images) update.
	main, gallery := services.PlaceUploads(svc.ImageURL, svc.Images, stored)

	svc.ImageURL = main
	svc.Images = gallery
	if err := database.DB.Model(&svc).
		Select("ImageURL", "Images").
		Updates(services.Service{ImageURL: main, Images: gallery}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save images"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"image_url": svc.ImageURL,
		"images":    svc.Images,
		"skipped":   skipped,
	})
}

// ------------------------------
// DELETE /services/:id/images
// ------------------------------
// The request body is the captured removal intent (url + is_main) the client
// confirmed. Only the reference is detached; the blob stays in storage.
func RemoveImage(c *gin.Context) {
	var req services.RemovalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	svc, ok := loadService(c)
	if !ok {
		return
	}
	if !mustOwn(c, svc) {
		return
	}

	main, gallery := services.RemoveImage(svc.ImageURL, svc.Images, req)

	svc.ImageURL = main
	svc.Images = gallery
	if err := database.DB.Model(&svc).
		Select("ImageURL", "Images").
		Updates(services.Service{ImageURL: main, Images: gallery}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove image"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"image_url": svc.ImageURL,
		"images":    svc.Images,
	})
}
