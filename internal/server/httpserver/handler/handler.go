// Package handler provides HTTP request handlers for phoneledger.
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/maidanad/phoneledger-go/internal/core/domain"
	"github.com/maidanad/phoneledger-go/internal/core/service"
	"github.com/maidanad/phoneledger-go/internal/report"
	"github.com/maidanad/phoneledger-go/internal/storage"
)

// Services holds the business services the handlers call.
type Services struct {
	Sales    *service.SaleService
	Clients  *service.ClientService
	Currency *service.CurrencyService
	Audit    *service.AuditService
	Snapshot *service.SnapshotService
	Auth     *service.AuthService
	Prefs    *service.PreferenceService
	Summary  *service.SummaryService
	Reports  *report.Service

	// Gatherer serves /metrics. Nil disables the endpoint.
	Gatherer prometheus.Gatherer

	// KV reports storage statistics on /health. Optional.
	KV storage.KVEngine
}

// Handler is the main HTTP handler that routes requests to appropriate handlers.
type Handler struct {
	svc    *Services
	logger *slog.Logger
	mux    *http.ServeMux
}

// New creates a new Handler with the given services.
func New(svc *Services, logger *slog.Logger) *Handler {
	h := &Handler{
		svc:    svc,
		logger: logger,
		mux:    http.NewServeMux(),
	}

	h.registerRoutes()
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// registerRoutes registers all HTTP routes.
func (h *Handler) registerRoutes() {
	// Health and metrics (no auth required)
	h.mux.HandleFunc("GET /health", h.handleHealth)
	h.mux.HandleFunc("GET /metrics", h.handleMetrics)

	// Authentication
	h.mux.HandleFunc("POST /auth/login", h.handleLogin)
	h.mux.HandleFunc("POST /auth/logout", h.handleLogout)

	// Sale endpoints
	h.mux.HandleFunc("GET /sales", h.handleListSales)
	h.mux.HandleFunc("POST /sales", h.handleCreateSale)
	h.mux.HandleFunc("GET /sales/imei-check", h.handleIMEICheck)
	h.mux.HandleFunc("POST /sales/import", h.handleImportSales)
	h.mux.HandleFunc("GET /sales/{id}", h.handleGetSale)
	h.mux.HandleFunc("PATCH /sales/{id}", h.handleUpdateSale)
	h.mux.HandleFunc("DELETE /sales/{id}", h.handleDeleteSale)

	// Client endpoints
	h.mux.HandleFunc("GET /clients", h.handleListClients)
	h.mux.HandleFunc("POST /clients", h.handleCreateClient)
	h.mux.HandleFunc("GET /clients/{id}", h.handleGetClient)
	h.mux.HandleFunc("PATCH /clients/{id}", h.handleUpdateClient)
	h.mux.HandleFunc("DELETE /clients/{id}", h.handleDeleteClient)

	// Currency transaction endpoints
	h.mux.HandleFunc("GET /transactions", h.handleListTransactions)
	h.mux.HandleFunc("POST /transactions", h.handleCreateTransaction)
	h.mux.HandleFunc("POST /transactions/import", h.handleImportTransactions)
	h.mux.HandleFunc("GET /transactions/{id}", h.handleGetTransaction)
	h.mux.HandleFunc("PATCH /transactions/{id}", h.handleUpdateTransaction)
	h.mux.HandleFunc("DELETE /transactions/{id}", h.handleDeleteTransaction)

	// Audit log
	h.mux.HandleFunc("GET /audit", h.handleListAudit)

	// Dashboard summaries
	h.mux.HandleFunc("GET /summary/monthly", h.handleMonthlySummary)
	h.mux.HandleFunc("GET /summary/annual", h.handleAnnualSummary)
	h.mux.HandleFunc("GET /summary/currency", h.handleCurrencySummary)
	h.mux.HandleFunc("GET /summary/warranties", h.handleExpiringWarranties)

	// Snapshot export
	h.mux.HandleFunc("GET /snapshot", h.handleSnapshot)

	// Preferences
	h.mux.HandleFunc("GET /prefs", h.handleGetPrefs)
	h.mux.HandleFunc("PUT /prefs/exchange-rate", h.handleSetExchangeRate)
	h.mux.HandleFunc("PUT /prefs/dark-mode", h.handleSetDarkMode)

	// Excel reports
	h.mux.HandleFunc("GET /export/year.xlsx", h.handleExportYear)
	h.mux.HandleFunc("GET /export/clients.xlsx", h.handleExportClients)
	h.mux.HandleFunc("GET /export/month/{month}", h.handleExportMonth)
}

// writeJSON writes a JSON response with standard envelope format.
func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, status int, data any) {
	requestID := getRequestID(r)
	response := NewResponse(requestID, data)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Request-ID", requestID)
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

// writeError writes an error response with standard envelope format.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, details any) {
	requestID := getRequestID(r)
	response := NewErrorResponse(requestID, code, message, details)

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Error-Code", code)
	w.Header().Set("X-Request-ID", requestID)
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(response)
}

// getRequestID extracts request ID from the header set by middleware.
func getRequestID(r *http.Request) string {
	return r.Header.Get("X-Request-ID")
}

// handleServiceError converts service errors to HTTP responses.
func (h *Handler) handleServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if domain.IsDomainError(err, "") {
		code := domain.GetErrorCode(err)
		status := errorCodeToHTTPStatus(code)
		h.writeError(w, r, status, code, err.Error(), nil)
		return
	}

	// Generic internal error
	h.logger.Error("internal error", "error", err)
	h.writeError(w, r, http.StatusInternalServerError, "PL-SYS-5000", "internal server error", nil)
}

// errorCodeToHTTPStatus maps error codes to HTTP status codes.
func errorCodeToHTTPStatus(code string) int {
	switch {
	case strings.HasSuffix(code, "-4040"):
		return http.StatusNotFound
	case strings.HasSuffix(code, "-4090"):
		return http.StatusConflict
	case strings.HasSuffix(code, "-4290"):
		return http.StatusTooManyRequests
	case strings.HasSuffix(code, "-4010"), strings.HasSuffix(code, "-4011"):
		return http.StatusUnauthorized
	case strings.HasPrefix(code, "PL-ARG-"):
		return http.StatusBadRequest
	case strings.HasPrefix(code, "PL-SYS-5"):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
