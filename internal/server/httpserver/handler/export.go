// Package handler provides HTTP request handlers for phoneledger.
package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// handleExportYear handles GET /export/year.xlsx: the full-year report
// with the summary sheet, one sheet per month with sales and the
// currency transaction sheet. The client directory has its own export.
func (h *Handler) handleExportYear(w http.ResponseWriter, r *http.Request) {
	f, err := h.svc.Reports.YearWorkbook(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.writeWorkbook(w, r, f, "ventas-iphone.xlsx")
}

// handleExportMonth handles GET /export/month/{month} where month is
// 1-12. The download is named ventas-mes-NN.xlsx.
func (h *Handler) handleExportMonth(w http.ResponseWriter, r *http.Request) {
	month, err := strconv.Atoi(r.PathValue("month"))
	if err != nil || month < 1 || month > 12 {
		h.writeError(w, r, http.StatusBadRequest, "PL-ARG-1002", "month must be 1-12", nil)
		return
	}

	f, err := h.svc.Reports.MonthWorkbook(r.Context(), month-1)
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.writeWorkbook(w, r, f, fmt.Sprintf("ventas-mes-%02d.xlsx", month))
}

// handleExportClients handles GET /export/clients.xlsx.
func (h *Handler) handleExportClients(w http.ResponseWriter, r *http.Request) {
	f, err := h.svc.Reports.ClientsWorkbook(r.Context())
	if err != nil {
		h.handleServiceError(w, r, err)
		return
	}
	h.writeWorkbook(w, r, f, "clientes.xlsx")
}

// writeWorkbook streams a workbook as an attachment and closes it.
func (h *Handler) writeWorkbook(w http.ResponseWriter, r *http.Request, f *excelize.File, filename string) {
	defer f.Close()

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	if _, err := f.WriteTo(w); err != nil {
		h.logger.Error("failed to stream workbook",
			"request_id", getRequestID(r),
			"filename", filename,
			"error", err,
		)
	}
}
