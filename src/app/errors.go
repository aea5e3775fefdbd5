package app

import "net/http"

// Error codes returned to clients in the "error" field.
const (
	ErrCodeMissingFilename    = "missing_filename"
	ErrCodeInvalidFileType    = "invalid_file_type"
	ErrCodeInvalidContentType = "invalid_content_type"
	ErrCodeEmptyFile          = "empty_file"
	ErrCodeFileTooLarge       = "file_too_large"
	ErrCodeInvalidAPIKey      = "invalid_api_key"
	ErrCodeImageNotFound      = "image_not_found"
	ErrCodeStorageFailure     = "storage_failure"
)

type (
	// RequestError is a terminal, client-visible request failure. It keeps
	// the machine-readable code together with the human message and the
	// HTTP status the handler should answer with.
	RequestError struct {
		Status  int
		Code    string
		Message string
	}
)

func (e *RequestError) Error() string {
	return e.Message
}

func newBadRequest(code, message string) *RequestError {
	return &RequestError{Status: http.StatusBadRequest, Code: code, Message: message}
}
