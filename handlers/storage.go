package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"carexyz/config"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// StorageHandler handles admin image uploads for services and hero slides.
type StorageHandler struct {
	Cld    *cloudinary.Cloudinary
	Logger *zap.Logger
}

// NewStorageHandler creates a new StorageHandler instance.
func NewStorageHandler(cld *cloudinary.Cloudinary, logger *zap.Logger) *StorageHandler {
	return &StorageHandler{Cld: cld, Logger: logger}
}

// UploadImage handles POST /api/admin/uploads. The returned secure URL is what
// admins paste into service imageUrl / slide imageUrl fields.
func (h *StorageHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file not provided", "detail": err.Error()})
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file", "detail": err.Error()})
		return
	}
	defer os.Remove(tempFilePath)

	result, err := h.Cld.Upload.Upload(c, tempFilePath, uploader.UploadParams{
		Folder: config.AppConfig.CloudinaryFolder,
	})
	if err != nil {
		h.Logger.Error("cloudinary upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to upload file", "detail": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"publicId": result.PublicID,
		"url":      result.SecureURL,
	})
}
