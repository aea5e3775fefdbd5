package server

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	app "skinserv/src/app"
	db "skinserv/src/repository"
)

type (
	ImageHandler struct {
		store    db.ImageStore
		analyzer *app.AnalysisService
		log      *zap.Logger
	}

	AnalyzeRequest struct {
		ImageID  string `json:"image_id"`
		Detailed bool   `json:"detailed"`
	}

	UploadResponse struct {
		ImageID string `json:"image_id"`
		Message string `json:"message"`
	}
)

const uploadFormField = "file"

func NewImageHandler(store db.ImageStore, analyzer *app.AnalysisService, log *zap.Logger) *ImageHandler {
	return &ImageHandler{
		store:    store,
		analyzer: analyzer,
		log:      log,
	}
}

func (h *ImageHandler) UploadImage(c *gin.Context) {
	fileHeader, err := c.FormFile(uploadFormField)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   app.ErrCodeMissingFilename,
			"message": "Uploaded file must have a filename",
		})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   app.ErrCodeStorageFailure,
			"message": "Failed to read uploaded file",
		})
		return
	}
	defer file.Close()

	contents, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   app.ErrCodeStorageFailure,
			"message": "Failed to read uploaded file",
		})
		return
	}

	extension, verr := app.ValidateUpload(fileHeader.Filename, fileHeader.Header.Get("Content-Type"), len(contents))
	if verr != nil {
		h.log.Warn("upload rejected",
			zap.String("reason", verr.Code),
			zap.String("filename", fileHeader.Filename))
		c.JSON(verr.Status, gin.H{"error": verr.Code, "message": verr.Message})
		return
	}

	imageID := h.store.GenerateID()
	if _, err := h.store.Save(imageID, contents, extension); err != nil {
		h.log.Error("can not save image", zap.String("image_id", imageID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   app.ErrCodeStorageFailure,
			"message": "Failed to persist uploaded image",
		})
		return
	}

	h.log.Info("image uploaded",
		zap.String("image_id", imageID),
		zap.Int("size_bytes", len(contents)))

	c.JSON(http.StatusCreated, UploadResponse{
		ImageID: imageID,
		Message: "Image uploaded successfully",
	})
}

func (h *ImageHandler) AnalyzeImage(c *gin.Context) {
	var requestBody AnalyzeRequest
	if err := c.ShouldBindJSON(&requestBody); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"message": "Request body must be JSON with an image_id field",
		})
		return
	}

	info, ok := h.store.Info(requestBody.ImageID)
	if !ok {
		h.log.Warn("image not found", zap.String("image_id", requestBody.ImageID))
		c.JSON(http.StatusNotFound, gin.H{
			"error": app.ErrCodeImageNotFound,
			"message": fmt.Sprintf("No image found with ID '%s'. Please upload an image first using the /upload endpoint.",
				requestBody.ImageID),
		})
		return
	}

	if requestBody.Detailed {
		result := h.analyzer.AnalyzeDetailed(info.ImageID, info.Extension, info.SizeBytes)
		c.JSON(http.StatusOK, result)
		return
	}

	result := h.analyzer.Analyze(info.ImageID, info.Extension, info.SizeBytes)
	c.JSON(http.StatusOK, result)
}

func (h *ImageHandler) GetImageInfo(c *gin.Context) {
	imageID := c.Param("image_id")

	info, ok := h.store.Info(imageID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   app.ErrCodeImageNotFound,
			"message": fmt.Sprintf("No image found with ID '%s'", imageID),
		})
		return
	}

	c.JSON(http.StatusOK, info)
}
