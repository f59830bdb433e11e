package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/docuinsight/document-insight-api/internal/models"
	"github.com/docuinsight/document-insight-api/internal/utils"
)

type noopService struct{}

func (noopService) Analyze(ctx context.Context, sub *models.DocumentSubmission, prompt string, params models.InferenceParams) (*models.AnalysisResult, error) {
	return &models.AnalysisResult{}, nil
}

func newTestRouter() http.Handler {
	return NewRouter(noopService{}, models.InferenceParams{}, utils.NewLogger("error"))
}

func TestHealthEndpoint(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "healthy") {
		t.Errorf("body = %q", rec.Body.String())
	}
}

func TestRootServesUI(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/html") {
		t.Errorf("Content-Type = %q, want text/html", ct)
	}
	if !strings.Contains(rec.Body.String(), "Document Insight") {
		t.Error("UI page should be served at /")
	}
}

func TestAnalyzeRequiresPost(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/documents/analyze", nil))

	// GET on the analyze route falls through to the UI handler's 404.
	if rec.Code == http.StatusOK {
		t.Errorf("GET analyze should not succeed, got %d", rec.Code)
	}
}

func TestCORSPreflight(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/health", nil)
	newTestRouter().ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q", got)
	}
}
