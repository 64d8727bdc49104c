package handler

import (
	"net/http"

	"github.com/pkordes/trip-planner/backend/spec"
	"github.com/pkordes/trip-planner/backend/web"
)

// GetOpenAPI handles GET /openapi.yaml by serving the embedded document.
func (s *Server) GetOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}

// UI serves the embedded browser client. It only calls the JSON API.
func (s *Server) UI() http.Handler {
	return http.FileServerFS(web.FS)
}
