// Package handler provides HTTP request handlers for phoneledger.
package handler

import (
	"encoding/json"
	"net/http"
)

// handleGetPrefs handles GET /prefs.
func (h *Handler) handleGetPrefs(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, PrefsResponse{
		ExchangeRate: h.svc.Prefs.ExchangeRate(r.Context()),
		DarkMode:     h.svc.Prefs.DarkMode(r.Context()),
	})
}

// handleSetExchangeRate handles PUT /prefs/exchange-rate.
func (h *Handler) handleSetExchangeRate(w http.ResponseWriter, r *http.Request) {
	var req ExchangeRateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "PL-ARG-1002", "invalid request body", nil)
		return
	}

	if err := h.svc.Prefs.SetExchangeRate(r.Context(), req.Rate); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, ExchangeRateRequest{Rate: req.Rate})
}

// handleSetDarkMode handles PUT /prefs/dark-mode.
func (h *Handler) handleSetDarkMode(w http.ResponseWriter, r *http.Request) {
	var req DarkModeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "PL-ARG-1002", "invalid request body", nil)
		return
	}

	if err := h.svc.Prefs.SetDarkMode(r.Context(), req.Dark); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, DarkModeRequest{Dark: req.Dark})
}
