// Package handler provides HTTP request handlers for phoneledger.
package handler

import "net/http"

// handleSnapshot handles GET /snapshot: the full-dataset JSON export
// the dashboard saves as a backup file.
func (h *Handler) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, r, http.StatusOK, h.svc.Snapshot.Export(r.Context()))
}
