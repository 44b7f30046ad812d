// Package handler provides HTTP request handlers for phoneledger.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/maidanad/phoneledger-go/internal/core/domain"
	"github.com/maidanad/phoneledger-go/internal/core/service"
)

// handleListClients handles GET /clients.
func (h *Handler) handleListClients(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.svc.Clients.List(r.Context()))
}

// handleGetClient handles GET /clients/{id}.
func (h *Handler) handleGetClient(w http.ResponseWriter, r *http.Request) {
	client, err := h.svc.Clients.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, client)
}

// handleCreateClient handles POST /clients.
func (h *Handler) handleCreateClient(w http.ResponseWriter, r *http.Request) {
	var req service.CreateClientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "PL-ARG-1002", "invalid request body", nil)
		return
	}

	client, err := h.svc.Clients.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, client)
}

// handleUpdateClient handles PATCH /clients/{id}.
func (h *Handler) handleUpdateClient(w http.ResponseWriter, r *http.Request) {
	var patch domain.ClientPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "PL-ARG-1002", "invalid request body", nil)
		return
	}

	client, err := h.svc.Clients.Update(r.Context(), r.PathValue("id"), &patch)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, client)
}

// handleDeleteClient handles DELETE /clients/{id}.
func (h *Handler) handleDeleteClient(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Clients.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}
