package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/hundredplus/onboard-tracker/internal/export"
	"github.com/hundredplus/onboard-tracker/internal/extract"
	"github.com/hundredplus/onboard-tracker/internal/hr"
	"github.com/hundredplus/onboard-tracker/internal/ingest"
)

// Handler is the HTTP surface consumed by the presentation collaborators.
// It only reads the store's output, recomputes stats on demand, and drives
// the ingestion session's public operations; the pipeline itself never
// writes to the store.
type Handler struct {
	store    *hr.Store
	session  *ingest.Session
	insights extract.InsightsQuerier
	exporter *export.Service
	logger   *slog.Logger
}

func NewHandler(store *hr.Store, session *ingest.Session, insights extract.InsightsQuerier, exporter *export.Service, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		store:    store,
		session:  session,
		insights: insights,
		exporter: exporter,
		logger:   logger,
	}
}

// Routes builds the router with logging and metrics middleware applied.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(RequestLogger(h.logger))
	r.Use(Metrics())

	r.Get("/healthz", h.health)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/employees", func(r chi.Router) {
			r.Get("/", h.listEmployees)
			r.Post("/", h.createEmployee)
			r.Get("/{id}", h.getEmployee)
			r.Patch("/{id}", h.updateEmployee)
			r.Delete("/{id}", h.deleteEmployee)
		})
		r.Get("/stats", h.stats)
		r.Route("/intake", func(r chi.Router) {
			r.Get("/", h.intakeState)
			r.Post("/select", h.intakeSelect)
			r.Post("/scan", h.intakeScan)
			r.Get("/draft", h.intakeDraft)
			r.Post("/confirm", h.intakeConfirm)
			r.Post("/reset", h.intakeReset)
		})
		r.Post("/insights", h.queryInsights)
		r.Get("/export/employees.xlsx", h.exportEmployees)
	})
	return r
}

func (h *Handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
