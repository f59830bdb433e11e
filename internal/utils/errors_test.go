package utils

import (
	"errors"
	"net/http"
	"testing"
)

func TestAppErrorStatusAndCode(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantStatus int
		wantCode   string
	}{
		{"bad request", NewBadRequestError("nope"), http.StatusBadRequest, CodeBadRequest},
		{"unsupported type", NewUnsupportedFileTypeError("nope"), http.StatusBadRequest, CodeUnsupportedFileType},
		{"storage", NewStorageError(errors.New("boom")), http.StatusBadGateway, CodeStorageError},
		{"extraction", NewExtractionError(errors.New("boom")), http.StatusBadGateway, CodeExtractionError},
		{"generation", NewGenerationError(errors.New("boom")), http.StatusBadGateway, CodeGenerationError},
		{"internal", NewInternalError("nope"), http.StatusInternalServerError, CodeInternalError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.StatusCode != tt.wantStatus {
				t.Errorf("StatusCode = %d, want %d", tt.err.StatusCode, tt.wantStatus)
			}
			if tt.err.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", tt.err.Code, tt.wantCode)
			}
		})
	}
}

func TestAppErrorUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := NewExtractionError(cause)

	if !errors.Is(err, cause) {
		t.Error("AppError should unwrap to its cause")
	}
	if msg := err.Error(); msg == "" || msg == cause.Error() {
		t.Errorf("Error() = %q, should include the stage message", msg)
	}
}
