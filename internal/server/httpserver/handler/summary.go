// Package handler provides HTTP request handlers for phoneledger.
package handler

import (
	"net/http"
	"strconv"
)

// handleMonthlySummary handles GET /summary/monthly.
func (h *Handler) handleMonthlySummary(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.svc.Summary.Monthly(r.Context()))
}

// handleAnnualSummary handles GET /summary/annual.
func (h *Handler) handleAnnualSummary(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.svc.Summary.Annual(r.Context()))
}

// handleCurrencySummary handles GET /summary/currency.
func (h *Handler) handleCurrencySummary(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.svc.Summary.Currency(r.Context()))
}

// handleExpiringWarranties handles GET /summary/warranties?days=N. The
// dashboard warranty widget polls this with its configured window.
func (h *Handler) handleExpiringWarranties(w http.ResponseWriter, r *http.Request) {
	days := 0
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.writeError(w, r, http.StatusBadRequest, "PL-ARG-1002", "days must be a non-negative integer", nil)
			return
		}
		days = n
	}

	h.writeJSON(w, r, http.StatusOK, h.svc.Summary.ExpiringWarranties(r.Context(), days))
}
