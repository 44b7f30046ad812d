// Package handler provides HTTP request handlers for phoneledger.
package handler

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/maidanad/phoneledger-go/internal/infra/buildinfo"
)

// handleHealth handles GET /health. Storage statistics are included
// when the engine is wired and reachable.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	payload := map[string]any{
		"status":  "healthy",
		"version": buildinfo.Version,
		"time":    time.Now().UTC().Format(time.RFC3339),
	}
	if h.svc.KV != nil {
		if stats, err := h.svc.KV.Stats(r.Context()); err == nil {
			payload["storage"] = stats
		}
	}

	h.writeJSON(w, r, http.StatusOK, payload)
}

// handleMetrics handles GET /metrics.
func (h *Handler) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if h.svc.Gatherer == nil {
		http.NotFound(w, r)
		return
	}
	promhttp.HandlerFor(h.svc.Gatherer, promhttp.HandlerOpts{}).ServeHTTP(w, r)
}
