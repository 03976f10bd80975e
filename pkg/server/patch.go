package server

import (
	"encoding/json"
	"net/http"

	"github.com/vango-dev/keepfocus/internal/errors"
	"github.com/vango-dev/keepfocus/internal/playground"
)

// handlePatch serves POST /v1/patch.
func (s *Server) handlePatch(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxMessageBytes)

	var req playground.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		status := writeError(w, errors.FromError(err, "E040"))
		s.logger.Warn("patch: invalid request body", "error", err, "status", status)
		return
	}
	req.Journal = req.Journal || s.config.Journal

	resp, err := playground.Run(r.Context(), s.engine, req)
	if err != nil {
		status := writeError(w, err)
		if status >= http.StatusInternalServerError {
			s.logger.Error("patch failed", "error", err)
		}
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
