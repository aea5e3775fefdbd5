package app

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
)

// MaxFileSize is the upload size ceiling in bytes (5 MiB).
const MaxFileSize = 5 * 1024 * 1024

var (
	allowedExtensions   = []string{".jpg", ".jpeg", ".png"}
	allowedContentTypes = []string{"image/jpeg", "image/png"}
)

// ValidateUpload applies the upload acceptance rules in a fixed order and
// returns the normalized (lower-cased) extension on success. Only the
// filename suffix and the declared header are checked; file content is
// never sniffed.
func ValidateUpload(filename, contentType string, size int) (string, *RequestError) {
	if filename == "" {
		return "", newBadRequest(ErrCodeMissingFilename, "Uploaded file must have a filename")
	}

	extension := strings.ToLower(filepath.Ext(filename))
	if !checkIn(extension, allowedExtensions) {
		return "", newBadRequest(ErrCodeInvalidFileType,
			fmt.Sprintf("File type '%s' is not allowed. Allowed types: %s",
				extension, strings.Join(allowedExtensions, ", ")))
	}

	if !checkIn(contentType, allowedContentTypes) {
		return "", newBadRequest(ErrCodeInvalidContentType,
			fmt.Sprintf("Content type '%s' is not allowed. Allowed types: %s",
				contentType, strings.Join(allowedContentTypes, ", ")))
	}

	if size == 0 {
		return "", newBadRequest(ErrCodeEmptyFile, "Uploaded file is empty")
	}

	if size > MaxFileSize {
		actualMB := float64(size) / (1024 * 1024)
		maxMB := float64(MaxFileSize) / (1024 * 1024)
		return "", &RequestError{
			Status: http.StatusRequestEntityTooLarge,
			Code:   ErrCodeFileTooLarge,
			Message: fmt.Sprintf("File size (%.2fMB) exceeds maximum allowed size (%.0fMB)",
				actualMB, maxMB),
		}
	}

	return extension, nil
}

func checkIn(value string, allowed []string) bool {
	for _, a := range allowed {
		if a == value {
			return true
		}
	}
	return false
}
