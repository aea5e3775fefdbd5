package app

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateUpload(t *testing.T) {
	t.Run("AcceptsValidJpeg", func(t *testing.T) {
		extension, err := ValidateUpload("face.jpg", "image/jpeg", 1024)
		assert.Nil(t, err, "ValidateUpload() rejected a valid upload")
		assert.Equal(t, ".jpg", extension)
	})

	t.Run("NormalizesExtensionCase", func(t *testing.T) {
		extension, err := ValidateUpload("FACE.JPG", "image/jpeg", 1024)
		assert.Nil(t, err)
		assert.Equal(t, ".jpg", extension)
	})

	t.Run("RejectsMissingFilename", func(t *testing.T) {
		_, err := ValidateUpload("", "image/jpeg", 1024)
		assert.NotNil(t, err)
		assert.Equal(t, ErrCodeMissingFilename, err.Code)
		assert.Equal(t, http.StatusBadRequest, err.Status)
	})

	t.Run("RejectsDisallowedExtension", func(t *testing.T) {
		_, err := ValidateUpload("photo.gif", "image/png", 1024)
		assert.NotNil(t, err)
		assert.Equal(t, ErrCodeInvalidFileType, err.Code)
		assert.Contains(t, err.Message, ".jpg, .jpeg, .png")
	})

	t.Run("RejectsWrongContentType", func(t *testing.T) {
		_, err := ValidateUpload("photo.jpg", "text/plain", 1024)
		assert.NotNil(t, err)
		assert.Equal(t, ErrCodeInvalidContentType, err.Code)
	})

	t.Run("RejectsAbsentContentType", func(t *testing.T) {
		_, err := ValidateUpload("photo.jpg", "", 1024)
		assert.NotNil(t, err)
		assert.Equal(t, ErrCodeInvalidContentType, err.Code)
	})

	t.Run("RejectsEmptyFile", func(t *testing.T) {
		_, err := ValidateUpload("photo.png", "image/png", 0)
		assert.NotNil(t, err)
		assert.Equal(t, ErrCodeEmptyFile, err.Code)
	})

	t.Run("RejectsOversizedFile", func(t *testing.T) {
		_, err := ValidateUpload("photo.jpg", "image/jpeg", 6*1024*1024)
		assert.NotNil(t, err)
		assert.Equal(t, ErrCodeFileTooLarge, err.Code)
		assert.Equal(t, http.StatusRequestEntityTooLarge, err.Status)
		assert.Contains(t, err.Message, "6.00MB")
		assert.Contains(t, err.Message, "5MB")
	})

	t.Run("ExtensionCheckedBeforeContentType", func(t *testing.T) {
		// first failing rule wins
		_, err := ValidateUpload("photo.gif", "text/plain", 0)
		assert.NotNil(t, err)
		assert.Equal(t, ErrCodeInvalidFileType, err.Code)
	})
}
