package handler

import (
	"net/http"

	"travelplanner/spec"
)

// healthResponse is the body of the liveness probe.
type healthResponse struct {
	Message string `json:"message"`
}

// dbHealthResponse is the body of the database connectivity probe.
type dbHealthResponse struct {
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// getHealth handles GET /healthz. It only confirms the process is serving;
// it does not touch the database.
func (s *Server) getHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Message: "Healthy"})
}

// getDBHealth handles GET /health/db. Store unavailability is reported as a
// structured 503 body rather than a generic failure, so the probe stays
// usable while the database is down.
func (s *Server) getDBHealth(w http.ResponseWriter, r *http.Request) {
	if err := s.db.Ping(r.Context()); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, dbHealthResponse{Database: "unavailable", Error: err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, dbHealthResponse{Database: "ok"})
}

// getOpenAPI serves the embedded OpenAPI document. Serving it from the binary
// means the spec and the running code are always in sync.
func (s *Server) getOpenAPI(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(spec.OpenAPI)
}
