package http

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"time"

	"github.com/couchcryptid/weather-widget/internal/domain"
	"github.com/couchcryptid/weather-widget/internal/lookup"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

//go:embed templates/widget.html.tmpl
var templateFS embed.FS

var widgetTemplate = template.Must(template.ParseFS(templateFS, "templates/widget.html.tmpl"))

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server exposes the widget page, the lookup API, and health, readiness,
// and metrics endpoints.
type Server struct {
	httpServer *http.Server
	widget     *lookup.Service
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /, /api/v1/weather, /healthz, /readyz, and /metrics routes.
func NewServer(addr string, widget *lookup.Service, ready ReadinessChecker, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		widget: widget,
		logger: logger,
	}

	mux.HandleFunc("GET /{$}", s.handlePage)
	mux.HandleFunc("GET /api/v1/weather", s.handleLookup)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// handlePage renders the widget. Submitting the form (button or Enter) sends
// ?city=..., which triggers a lookup before rendering.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	view := newPageView(query.Get("city"))
	if query.Has("city") {
		if _, err := s.widget.Bind(view).Trigger(r.Context()); err != nil {
			s.logger.Warn("lookup not run", "error", err)
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := widgetTemplate.Execute(w, view); err != nil {
		s.logger.Error("render widget page", "error", err)
	}
}

// handleLookup runs a lookup and returns the rendered view as JSON.
// Every request binds a fresh widget, so Trigger never reports
// ErrLookupInFlight here today; errorStatus maps it should a widget be shared.
func (s *Server) handleLookup(w http.ResponseWriter, r *http.Request) {
	view := newPageView(r.URL.Query().Get("city"))
	res, err := s.widget.Bind(view).Trigger(r.Context())
	if err != nil {
		writeJSON(w, errorStatus(err), map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, statusFor(res), view)
}

// errorStatus maps an error returned by Trigger itself (not a lookup outcome).
func errorStatus(err error) int {
	if errors.Is(err, lookup.ErrLookupInFlight) {
		return http.StatusTooManyRequests
	}
	return http.StatusInternalServerError
}

// statusFor maps a lookup outcome to an HTTP status code.
func statusFor(res lookup.Result) int {
	switch res.Outcome() {
	case domain.OutcomeSuccess:
		return http.StatusOK
	case domain.OutcomeEmptyInput:
		return http.StatusBadRequest
	case domain.OutcomeUnknownCity:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response
}
