// Package serve is the HTTP request adapter: it validates the input shape,
// runs the resolver and the metrics engine in sequence, and maps errors to
// response classes.
package serve

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/dtnitsch/docstats/internal/metrics"
	"github.com/dtnitsch/docstats/internal/resolve"
	"github.com/dtnitsch/docstats/models"
)

// maxRequestBytes bounds the request body; inline text beyond this is not a
// reasonable scoring request.
const maxRequestBytes = 10 * 1024 * 1024

type Server struct {
	resolver *resolve.Resolver
	engine   *metrics.Engine
	logger   *slog.Logger
}

func NewServer(resolver *resolve.Resolver, engine *metrics.Engine, logger *slog.Logger) *Server {
	return &Server{resolver: resolver, engine: engine, logger: logger}
}

func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/scores/", s.handleScores)
	mux.HandleFunc("/healthz", s.handleHealthz)
	return mux
}

func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (s *Server) handleScores(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	src, err := models.ParseSource(body)
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	text, provenance, err := s.resolver.Resolve(r.Context(), src)
	if err != nil {
		s.respondPipelineError(w, err)
		return
	}

	scores, err := s.engine.Score(text, provenance)
	if err != nil {
		s.respondPipelineError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, scores)
}

// respondPipelineError maps the core's two error kinds to a client-error
// response and everything else to an opaque server error. Resolution and
// metrics failures both mean the request's input could not be turned into a
// valid score, so they share a status.
func (s *Server) respondPipelineError(w http.ResponseWriter, err error) {
	var resErr *resolve.ResolutionError
	var metErr *metrics.MetricsError
	if errors.As(err, &resErr) || errors.As(err, &metErr) {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	s.logger.Error("unexpected pipeline failure", "error", err)
	writeError(w, http.StatusInternalServerError, "server error")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
