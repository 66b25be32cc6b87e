package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hundredplus/onboard-tracker/internal/common"
)

// errorResponse is the JSON body for every non-2xx reply.
type errorResponse struct {
	Error string `json:"error"`
}

// statusForError maps the pipeline/store error taxonomy to HTTP statuses.
// Network failures map to 502 so the UI can offer a retry; schema and file
// problems are 422 (terminal for that attempt); a missing API key is 503
// until configuration is fixed.
func statusForError(err error) int {
	switch {
	case errors.Is(err, common.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, common.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrScanInFlight), errors.Is(err, common.ErrSuperseded):
		return http.StatusConflict
	case errors.Is(err, common.ErrUnsupportedFormat),
		errors.Is(err, common.ErrFileRead),
		errors.Is(err, common.ErrSchemaViolation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, common.ErrNoDocument):
		return http.StatusBadRequest
	case errors.Is(err, common.ErrServiceUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, common.ErrNetwork):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusForError(err), errorResponse{Error: err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
