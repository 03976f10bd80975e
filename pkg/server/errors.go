package server

import (
	"encoding/json"
	stderrors "errors"
	"net/http"

	"github.com/vango-dev/keepfocus/internal/errors"
)

// statusFor maps an error onto an HTTP status. Input problems are the
// caller's fault; everything else is ours.
func statusFor(err error) int {
	var tooLarge *http.MaxBytesError
	if stderrors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	var e *errors.Error
	if !stderrors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Category {
	case errors.CategoryDescription, errors.CategoryCLI, errors.CategoryProtocol:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError replies with err's report and returns the status used.
func writeError(w http.ResponseWriter, err error) int {
	status := statusFor(err)
	writeJSON(w, status, errors.ReportOf(err))
	return status
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
