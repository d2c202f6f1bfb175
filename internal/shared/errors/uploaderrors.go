package errors

import (
	"fmt"
	"net/http"
)

// Upload-specific error types
const (
	ErrorTypeTooLarge        ErrorType = "file_too_large"
	ErrorTypeUnsupportedType ErrorType = "unsupported_file_type"
	ErrorTypeNoFiles         ErrorType = "no_files"
)

// NewTooLargeError creates an error for uploads exceeding the size ceiling
func NewTooLargeError(maxBytes int64) *AppError {
	return &AppError{
		Type:    ErrorTypeTooLarge,
		Message: fmt.Sprintf("File exceeds the maximum size of %d bytes", maxBytes),
		Code:    http.StatusBadRequest,
	}
}

// NewUnsupportedTypeError creates an error for disallowed file types
func NewUnsupportedTypeError(details ...string) *AppError {
	return newAppError(ErrorTypeUnsupportedType, http.StatusBadRequest,
		"Only JPEG, PNG, GIF and WebP images are allowed", details...)
}

// NewNoFilesError creates an error for batch uploads with no files attached
func NewNoFilesError() *AppError {
	return &AppError{
		Type:    ErrorTypeNoFiles,
		Message: "No files provided",
		Code:    http.StatusBadRequest,
	}
}
