// Package handler provides HTTP request handlers for phoneledger.
package handler

import (
	"encoding/json"
	"net/http"
	"strings"
)

// handleLogin handles POST /auth/login.
func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "PL-ARG-1002", "invalid request body", nil)
		return
	}

	token, err := h.svc.Auth.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, LoginResponse{Token: token})
}

// handleLogout handles POST /auth/logout. Always succeeds: an unknown
// token already satisfies the caller's goal state.
func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	authHeader := r.Header.Get("Authorization")
	token := strings.TrimPrefix(authHeader, "Bearer ")
	h.svc.Auth.Logout(r.Context(), token)

	h.writeJSON(w, r, http.StatusOK, map[string]string{"status": "logged_out"})
}
