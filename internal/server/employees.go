package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/hundredplus/onboard-tracker/internal/common"
	"github.com/hundredplus/onboard-tracker/internal/entity"
	"github.com/hundredplus/onboard-tracker/internal/hr"
)

func (h *Handler) listEmployees(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, h.store.List())
}

func (h *Handler) getEmployee(w http.ResponseWriter, r *http.Request) {
	emp, err := h.store.Get(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emp)
}

func (h *Handler) createEmployee(w http.ResponseWriter, r *http.Request) {
	var draft entity.Employee
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, fmt.Errorf("%w: decode employee: %v", common.ErrInvalidInput, err))
		return
	}
	if draft.Status != "" && !draft.Status.Valid() {
		writeError(w, fmt.Errorf("%w: status %q", common.ErrInvalidInput, draft.Status))
		return
	}
	stored, err := h.store.Create(draft)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, stored)
}

func (h *Handler) updateEmployee(w http.ResponseWriter, r *http.Request) {
	var patch hr.EmployeePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		writeError(w, fmt.Errorf("%w: decode patch: %v", common.ErrInvalidInput, err))
		return
	}
	id := chi.URLParam(r, "id")
	if err := h.store.Update(id, patch); err != nil {
		writeError(w, err)
		return
	}
	emp, err := h.store.Get(id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, emp)
}

func (h *Handler) deleteEmployee(w http.ResponseWriter, r *http.Request) {
	h.store.Delete(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) stats(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, hr.ComputeStats(h.store.List()))
}

func (h *Handler) exportEmployees(w http.ResponseWriter, _ *http.Request) {
	b, err := h.exporter.ExportEmployeesXLSX(h.store.List())
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="employees.xlsx"`)
	_, _ = w.Write(b)
}
