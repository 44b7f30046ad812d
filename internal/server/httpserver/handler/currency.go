// Package handler provides HTTP request handlers for phoneledger.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/maidanad/phoneledger-go/internal/core/domain"
	"github.com/maidanad/phoneledger-go/internal/core/service"
)

// handleListTransactions handles GET /transactions.
func (h *Handler) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.svc.Currency.List(r.Context()))
}

// handleGetTransaction handles GET /transactions/{id}.
func (h *Handler) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	tx, err := h.svc.Currency.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, tx)
}

// handleCreateTransaction handles POST /transactions.
func (h *Handler) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req service.CreateTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "PL-ARG-1002", "invalid request body", nil)
		return
	}

	tx, err := h.svc.Currency.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, tx)
}

// handleUpdateTransaction handles PATCH /transactions/{id}.
func (h *Handler) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	var patch domain.TransactionPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "PL-ARG-1002", "invalid request body", nil)
		return
	}

	tx, err := h.svc.Currency.Update(r.Context(), r.PathValue("id"), &patch)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, tx)
}

// handleDeleteTransaction handles DELETE /transactions/{id}.
func (h *Handler) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Currency.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleImportTransactions handles POST /transactions/import. The
// payload replaces the whole collection.
func (h *Handler) handleImportTransactions(w http.ResponseWriter, r *http.Request) {
	var txs []*domain.CurrencyTransaction
	if err := json.NewDecoder(r.Body).Decode(&txs); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "PL-ARG-1002", "invalid request body", nil)
		return
	}

	if err := h.svc.Snapshot.ImportTransactions(r.Context(), txs); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, ImportResponse{Imported: len(txs)})
}
