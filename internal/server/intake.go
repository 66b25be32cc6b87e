package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/hundredplus/onboard-tracker/internal/common"
)

// maxUploadBytes caps an onboarding document upload at 20 MiB.
const maxUploadBytes = 20 << 20

type intakeStateResponse struct {
	State    string `json:"state"`
	FileName string `json:"fileName,omitempty"`
	Error    string `json:"error,omitempty"`
}

func (h *Handler) intakeState(w http.ResponseWriter, _ *http.Request) {
	state, fileName, lastErr := h.session.State()
	resp := intakeStateResponse{State: string(state), FileName: fileName}
	if lastErr != nil {
		resp.Error = lastErr.Error()
	}
	writeJSON(w, http.StatusOK, resp)
}

// intakeSelect accepts a multipart upload under the "file" field and runs
// classification + normalization. A selection while a previous normalize
// or scan is in flight supersedes it.
func (h *Handler) intakeSelect(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, fmt.Errorf(`%w: multipart field "file": %v`, common.ErrInvalidInput, err))
		return
	}
	defer func() {
		_ = file.Close()
	}()

	if err := h.session.Select(r.Context(), header.Filename, file); err != nil {
		writeError(w, err)
		return
	}
	state, fileName, _ := h.session.State()
	writeJSON(w, http.StatusOK, intakeStateResponse{State: string(state), FileName: fileName})
}

func (h *Handler) intakeScan(w http.ResponseWriter, r *http.Request) {
	draft, err := h.session.Scan(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

func (h *Handler) intakeDraft(w http.ResponseWriter, _ *http.Request) {
	draft, ok := h.session.Draft()
	if !ok {
		writeError(w, fmt.Errorf("%w: no draft ready", common.ErrNotFound))
		return
	}
	writeJSON(w, http.StatusOK, draft)
}

// intakeConfirm commits the reviewed draft to the record store. This is
// the only place pipeline output reaches the store. TakeDraft consumes the
// draft atomically, so of two racing confirms only one creates a record.
func (h *Handler) intakeConfirm(w http.ResponseWriter, _ *http.Request) {
	draft, ok := h.session.TakeDraft()
	if !ok {
		writeError(w, fmt.Errorf("%w: no draft ready", common.ErrNotFound))
		return
	}
	stored, err := h.store.Create(draft)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, stored)
}

func (h *Handler) intakeReset(w http.ResponseWriter, _ *http.Request) {
	h.session.Reset()
	w.WriteHeader(http.StatusNoContent)
}

type insightsRequest struct {
	Question string `json:"question"`
}

type insightsResponse struct {
	Answer string `json:"answer"`
}

func (h *Handler) queryInsights(w http.ResponseWriter, r *http.Request) {
	var req insightsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, fmt.Errorf("%w: decode question: %v", common.ErrInvalidInput, err))
		return
	}
	answer, err := h.insights.QueryInsights(r.Context(), req.Question, h.store.List())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, insightsResponse{Answer: answer})
}
