package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/joseph-ayodele/contracts-analyzer/internal/extract"
)

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warn("server.encode_response_error", "error", err)
	}
}

// writeError maps the error taxonomy onto status codes: input errors are the
// caller's fault (400); structured-output errors and the remaining failures,
// mostly generation-service transport errors, surface as 502.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var inputErr *extract.InputError
	if errors.As(err, &inputErr) {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: inputErr.Message})
		return
	}
	var outputErr *extract.OutputError
	if errors.As(err, &outputErr) {
		s.log.Error("server.structured_output_error", "schema", outputErr.Schema, "error", outputErr.Err)
		s.writeJSON(w, http.StatusBadGateway, errorResponse{Error: outputErr.Error()})
		return
	}
	s.log.Error("server.request_failed", "error", err)
	s.writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error()})
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body: " + err.Error()})
		return false
	}
	return true
}
