package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/docuinsight/document-insight-api/internal/utils"
)

// Recovery converts handler panics into 500 responses so one bad request
// cannot take the process down.
func Recovery(logger *utils.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("Panic recovered",
						"panic", rec,
						"path", r.URL.Path,
						"stack", string(debug.Stack()))

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"error":"Internal server error","code":"internal_error"}`))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
