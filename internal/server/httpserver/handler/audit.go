// Package handler provides HTTP request handlers for phoneledger.
package handler

import (
	"net/http"
	"strconv"
)

// handleListAudit handles GET /audit?limit=N. The log is newest-first;
// limit 0 or absent returns everything retained.
func (h *Handler) handleListAudit(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			h.writeError(w, r, http.StatusBadRequest, "PL-ARG-1002", "limit must be a non-negative integer", nil)
			return
		}
		limit = n
	}

	h.writeJSON(w, r, http.StatusOK, h.svc.Audit.Entries(r.Context(), limit))
}
