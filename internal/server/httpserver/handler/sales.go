// Package handler provides HTTP request handlers for phoneledger.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/maidanad/phoneledger-go/internal/core/domain"
	"github.com/maidanad/phoneledger-go/internal/core/service"
)

// handleListSales handles GET /sales.
func (h *Handler) handleListSales(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.svc.Sales.List(r.Context()))
}

// handleGetSale handles GET /sales/{id}.
func (h *Handler) handleGetSale(w http.ResponseWriter, r *http.Request) {
	sale, err := h.svc.Sales.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, sale)
}

// handleCreateSale handles POST /sales.
func (h *Handler) handleCreateSale(w http.ResponseWriter, r *http.Request) {
	var req service.CreateSaleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "PL-ARG-1002", "invalid request body", nil)
		return
	}

	sale, err := h.svc.Sales.Create(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusCreated, sale)
}

// handleUpdateSale handles PATCH /sales/{id}.
func (h *Handler) handleUpdateSale(w http.ResponseWriter, r *http.Request) {
	var patch domain.SalePatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "PL-ARG-1002", "invalid request body", nil)
		return
	}

	sale, err := h.svc.Sales.Update(r.Context(), r.PathValue("id"), &patch)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, sale)
}

// handleDeleteSale handles DELETE /sales/{id}.
func (h *Handler) handleDeleteSale(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Sales.Delete(r.Context(), r.PathValue("id")); err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.writeJSON(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleIMEICheck handles GET /sales/imei-check?imei=...&exclude=...
//
// Used by the edit form for inline validation before submitting.
func (h *Handler) handleIMEICheck(w http.ResponseWriter, r *http.Request) {
	imei := r.URL.Query().Get("imei")
	if imei == "" {
		h.writeError(w, r, http.StatusBadRequest, "PL-ARG-1001", "imei query parameter is required", nil)
		return
	}
	exclude := r.URL.Query().Get("exclude")

	h.writeJSON(w, r, http.StatusOK, IMEICheckResponse{
		IMEI:   imei,
		Unique: h.svc.Sales.IsIMEIUnique(r.Context(), imei, exclude),
	})
}

// handleImportSales handles POST /sales/import. The payload replaces the
// whole collection.
func (h *Handler) handleImportSales(w http.ResponseWriter, r *http.Request) {
	var sales []*domain.Sale
	if err := json.NewDecoder(r.Body).Decode(&sales); err != nil {
		h.writeError(w, r, http.StatusBadRequest, "PL-ARG-1002", "invalid request body", nil)
		return
	}

	if err := h.svc.Snapshot.ImportSales(r.Context(), sales); err != nil {
		h.handleServiceError(w, r, err)
		return
	}

	h.writeJSON(w, r, http.StatusOK, ImportResponse{Imported: len(sales)})
}
