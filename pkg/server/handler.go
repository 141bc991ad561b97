package server

import (
	"bytes"
	"encoding/json"
	"html/template"
	"net/http"
	"sync/atomic"

	"github.com/ideamans/fontawesome/pkg/assets"
	"github.com/ideamans/fontawesome/pkg/fontawesome"
	"github.com/ideamans/fontawesome/pkg/shared/logging"
)

// Handler is the demo host: an index page rendered with the fa_* template
// functions, the local asset cache and a health check.
type Handler struct {
	fa       *fontawesome.FontAwesome
	index    *template.Template
	mux      *http.ServeMux
	logger   logging.Logger
	draining atomic.Bool
}

// NewHandler creates the HTTP handler for fa.
func NewHandler(fa *fontawesome.FontAwesome, logger logging.Logger) (*Handler, error) {
	index, err := assets.ParseIndex(fa.Funcs())
	if err != nil {
		return nil, err
	}

	h := &Handler{
		fa:     fa,
		index:  index,
		mux:    http.NewServeMux(),
		logger: logger.WithModule("http"),
	}
	h.mux.Handle(fa.Resolver().Prefix()+"/", fa.Handler())
	h.mux.HandleFunc("GET /healthz", h.handleHealth)
	h.mux.HandleFunc("GET /{$}", h.handleIndex)
	return h, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// SetDraining makes the health check report 503 during shutdown.
func (h *Handler) SetDraining() {
	h.draining.Store(true)
}

type healthResponse struct {
	Status     string `json:"status"`
	ServeLocal bool   `json:"serve_local"`
}

// handleHealth handles the health check endpoint
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{Status: "ok", ServeLocal: h.fa.ServeLocal()}
	status := http.StatusOK
	if h.draining.Load() {
		resp.Status = "draining"
		status = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(resp)
}

type indexData struct {
	Version    string
	Style      string
	ServeLocal bool
	Prefix     string
}

// handleIndex renders the demo page. The page is rendered into a buffer so a
// failed asset sync turns into a 502 instead of a truncated page.
func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	defaults := h.fa.Defaults()
	data := indexData{
		Version:    defaults.Version,
		Style:      defaults.Style.String(),
		ServeLocal: h.fa.ServeLocal(),
		Prefix:     h.fa.Resolver().Prefix(),
	}

	var buf bytes.Buffer
	if err := h.index.Execute(&buf, data); err != nil {
		h.logger.Error("Failed to render index", "error", err)
		http.Error(w, "failed to load Font Awesome assets", http.StatusBadGateway)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
