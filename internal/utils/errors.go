package utils

import (
	"fmt"
	"net/http"
)

// Stage codes surfaced to clients so the UI can say which step failed.
const (
	CodeBadRequest          = "bad_request"
	CodeUnsupportedFileType = "unsupported_file_type"
	CodeStorageError        = "storage_error"
	CodeExtractionError     = "extraction_error"
	CodeGenerationError     = "generation_error"
	CodeInternalError       = "internal_error"
)

type AppError struct {
	StatusCode int
	Code       string
	Message    string
	Err        error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewBadRequestError(message string) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Code: CodeBadRequest, Message: message}
}

func NewUnsupportedFileTypeError(message string) *AppError {
	return &AppError{StatusCode: http.StatusBadRequest, Code: CodeUnsupportedFileType, Message: message}
}

func NewStorageError(err error) *AppError {
	return &AppError{
		StatusCode: http.StatusBadGateway,
		Code:       CodeStorageError,
		Message:    "Failed to store document",
		Err:        err,
	}
}

func NewExtractionError(err error) *AppError {
	return &AppError{
		StatusCode: http.StatusBadGateway,
		Code:       CodeExtractionError,
		Message:    "Text extraction failed",
		Err:        err,
	}
}

func NewGenerationError(err error) *AppError {
	return &AppError{
		StatusCode: http.StatusBadGateway,
		Code:       CodeGenerationError,
		Message:    "Insight generation failed",
		Err:        err,
	}
}

func NewInternalError(message string) *AppError {
	return &AppError{StatusCode: http.StatusInternalServerError, Code: CodeInternalError, Message: message}
}
