// Package handler contains the HTTP handlers of the pricing site.
//
// This file implements the pricing page, its htmx plan partial and the JSON
// view of the same page model.
package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/DukeRupert/felo-pricing/internal/catalog"
	"github.com/DukeRupert/felo-pricing/internal/domain"
	"github.com/DukeRupert/felo-pricing/internal/metrics"
	"github.com/DukeRupert/felo-pricing/internal/pricing"
)

// PricingHandler serves one catalog variant.
type PricingHandler struct {
	catalog  *catalog.Catalog
	renderer *Renderer
	logger   *slog.Logger
	baseURL  string
	now      func() time.Time
}

// NewPricingHandler creates a new PricingHandler.
func NewPricingHandler(cat *catalog.Catalog, renderer *Renderer, logger *slog.Logger, baseURL string) *PricingHandler {
	return &PricingHandler{
		catalog:  cat,
		renderer: renderer,
		logger:   logger,
		baseURL:  baseURL,
		now:      time.Now,
	}
}

// RegisterRoutes registers the pricing routes. limit wraps the endpoints that
// are cheap to hammer from scripts (the partial and JSON views).
func (h *PricingHandler) RegisterRoutes(
	mux *http.ServeMux,
	limit func(http.Handler) http.Handler,
) {
	mux.HandleFunc("GET /{$}", h.Root)
	mux.HandleFunc("GET /pricing", h.Page)
	mux.Handle("GET /pricing/plans", limit(http.HandlerFunc(h.Plans)))
	mux.Handle("GET /pricing.json", limit(http.HandlerFunc(h.JSON)))
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("/", h.NotFound)
}

// Root redirects to the pricing page, keeping any selection in the query.
func (h *PricingHandler) Root(w http.ResponseWriter, r *http.Request) {
	target := "/pricing"
	if r.URL.RawQuery != "" {
		target += "?" + r.URL.RawQuery
	}
	http.Redirect(w, r, target, http.StatusFound)
}

// Page renders the full pricing page.
func (h *PricingHandler) Page(w http.ResponseWriter, r *http.Request) {
	page, ok := h.resolve(w, r)
	if !ok {
		return
	}

	section, err := RenderSection(r.Context(), page)
	if err != nil {
		InternalErrorResponse(w, r, h.logger, err)
		return
	}

	h.renderer.RenderHTTP(w, "public/pricing", NewLivePageData(page, section, h.baseURL))
}

// Plans renders the plan section for an htmx swap. The segment tabs and the
// currency switcher ride along as out-of-band swaps so both follow the
// selection.
func (h *PricingHandler) Plans(w http.ResponseWriter, r *http.Request) {
	page, ok := h.resolve(w, r)
	if !ok {
		return
	}

	section, err := RenderSection(r.Context(), page)
	if err != nil {
		InternalErrorResponse(w, r, h.logger, err)
		return
	}

	data := NewLivePageData(page, section, h.baseURL)
	data.OOB = true

	var buf bytes.Buffer
	buf.WriteString(string(section))
	for _, partial := range []string{"tabs", "currency"} {
		if err := h.renderer.RenderPartial(&buf, partial, data); err != nil {
			InternalErrorResponse(w, r, h.logger, err)
			return
		}
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

// JSON writes the page model as JSON.
func (h *PricingHandler) JSON(w http.ResponseWriter, r *http.Request) {
	page, ok := h.resolve(w, r)
	if !ok {
		return
	}

	body, err := json.Marshal(page)
	if err != nil {
		InternalErrorResponse(w, r, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(body)
}

// Health reports liveness and the served catalog variant.
func (h *PricingHandler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"variant": h.catalog.Variant().String(),
	})
}

// NotFound handles every unregistered path.
func (h *PricingHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	NotFoundResponse(w, r, h.logger)
}

// resolve parses the selection from the query and builds the page. On invalid
// input it writes the error response and returns false.
func (h *PricingHandler) resolve(w http.ResponseWriter, r *http.Request) (pricing.Page, bool) {
	q := r.URL.Query()
	state, err := pricing.ParseViewState(h.catalog, q.Get("segment"), q.Get("currency"))
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			for field := range ve.Fields {
				metrics.SelectionRejected(field)
			}
		}
		ValidationErrorResponse(w, r, h.logger, err)
		return pricing.Page{}, false
	}

	metrics.PageViewed(h.catalog.Variant().String(), state.Segment.String(), state.Currency.String())
	return pricing.BuildPage(h.catalog, state, h.now()), true
}
