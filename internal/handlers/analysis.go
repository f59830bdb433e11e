package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/docuinsight/document-insight-api/internal/intake"
	"github.com/docuinsight/document-insight-api/internal/models"
	"github.com/docuinsight/document-insight-api/internal/preview"
	"github.com/docuinsight/document-insight-api/internal/services"
	"github.com/docuinsight/document-insight-api/internal/utils"
)

const MaxFileSize = 5 << 20 // 5MB

type AnalysisHandler struct {
	service  services.AnalysisService
	defaults models.InferenceParams
	logger   *utils.Logger
}

func NewAnalysisHandler(service services.AnalysisService, defaults models.InferenceParams, logger *utils.Logger) *AnalysisHandler {
	return &AnalysisHandler{
		service:  service,
		defaults: defaults,
		logger:   logger,
	}
}

// Analyze accepts a multipart upload (file + prompt + optional inference
// parameters) and runs the full store/extract/generate pass synchronously.
func (h *AnalysisHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	if r.ContentLength > MaxFileSize {
		h.respondError(w, utils.NewBadRequestError("File size exceeds 5MB limit"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, MaxFileSize)

	if err := r.ParseMultipartForm(MaxFileSize); err != nil {
		if strings.Contains(err.Error(), "request body too large") {
			h.respondError(w, utils.NewBadRequestError("File size exceeds 5MB limit"))
			return
		}
		h.respondError(w, utils.NewBadRequestError("Invalid form data"))
		return
	}

	prompt := strings.TrimSpace(r.FormValue("prompt"))
	if prompt == "" {
		h.respondError(w, utils.NewBadRequestError("An analysis prompt is required"))
		return
	}

	data, filename, err := h.readUpload(r)
	if err != nil {
		h.respondError(w, err)
		return
	}

	sub, err := intake.New(filename, data)
	if err != nil {
		h.logger.Warn("Upload rejected", "filename", filename, "error", err)
		h.respondError(w, err)
		return
	}

	params := h.parseInferenceParams(r)

	result, err := h.service.Analyze(r.Context(), sub, prompt, params)
	if err != nil {
		h.respondError(w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
}

// Preview returns the page count and plain-text preview for an uploaded PDF.
// Image previews are rendered client-side and never hit this endpoint.
func (h *AnalysisHandler) Preview(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxFileSize)

	if err := r.ParseMultipartForm(MaxFileSize); err != nil {
		h.respondError(w, utils.NewBadRequestError("Invalid form data"))
		return
	}

	data, filename, err := h.readUpload(r)
	if err != nil {
		h.respondError(w, err)
		return
	}

	if strings.ToLower(filepath.Ext(filename)) != ".pdf" {
		h.respondError(w, utils.NewBadRequestError("Preview is only available for PDF files"))
		return
	}

	info, err := preview.InspectPDF(data)
	if err != nil {
		h.respondError(w, utils.NewBadRequestError("The uploaded PDF could not be read"))
		return
	}

	h.respondJSON(w, http.StatusOK, &models.PreviewResponse{
		Filename:  filename,
		PageCount: info.PageCount,
		Text:      info.Text,
	})
}

func (h *AnalysisHandler) readUpload(r *http.Request) ([]byte, string, error) {
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, "", utils.NewBadRequestError("No file provided")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, MaxFileSize+1))
	if err != nil {
		return nil, "", utils.NewInternalError("Failed to read file")
	}

	if len(data) > MaxFileSize {
		return nil, "", utils.NewBadRequestError("File size exceeds 5MB limit")
	}

	return data, header.Filename, nil
}

// parseInferenceParams reads optional per-request generation knobs, falling
// back to configured defaults and clamping to the supported ranges.
func (h *AnalysisHandler) parseInferenceParams(r *http.Request) models.InferenceParams {
	params := h.defaults

	if v := r.FormValue("max_new_tokens"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			params.MaxNewTokens = clampInt(n, 100, 2000)
		}
	}
	if v := r.FormValue("temperature"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			params.Temperature = clampFloat(f, 0, 1)
		}
	}
	if v := r.FormValue("top_p"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			params.TopP = clampFloat(f, 0, 1)
		}
	}
	if v := r.FormValue("top_k"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			params.TopK = clampInt(n, 1, 100)
		}
	}

	return params
}

func clampInt(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}

func clampFloat(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}

func (h *AnalysisHandler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Error("Failed to encode JSON response", "error", err)
	}
}

func (h *AnalysisHandler) respondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := utils.CodeInternalError
	message := "Internal server error"

	if appErr, ok := err.(*utils.AppError); ok {
		status = appErr.StatusCode
		code = appErr.Code
		message = appErr.Message
	}

	h.logger.Error("Request error", "status", status, "code", code, "error", err)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message, "code": code})
}
