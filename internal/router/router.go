package router

import (
	"net/http"

	"github.com/docuinsight/document-insight-api/internal/handlers"
	"github.com/docuinsight/document-insight-api/internal/middleware"
	"github.com/docuinsight/document-insight-api/internal/models"
	"github.com/docuinsight/document-insight-api/internal/services"
	"github.com/docuinsight/document-insight-api/internal/utils"
	"github.com/docuinsight/document-insight-api/internal/web"

	"github.com/gorilla/mux"
)

func NewRouter(svc services.AnalysisService, defaults models.InferenceParams, logger *utils.Logger) http.Handler {
	r := mux.NewRouter()

	// Middlewares
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Recovery(logger))

	analysisHandler := handlers.NewAnalysisHandler(svc, defaults, logger)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	}).Methods(http.MethodGet)

	// Analysis endpoints
	api.HandleFunc("/documents/analyze", analysisHandler.Analyze).Methods(http.MethodPost)
	api.HandleFunc("/documents/preview", analysisHandler.Preview).Methods(http.MethodPost)

	// Web UI. Left method-unrestricted so OPTIONS preflights reach the
	// middleware chain.
	r.PathPrefix("/").Handler(web.Handler())

	return r
}
