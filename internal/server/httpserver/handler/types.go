// Package handler provides HTTP request handlers for phoneledger.
package handler

import "time"

// Response is the standard API response envelope.
// All JSON responses use this format (except /metrics which uses
// Prometheus format, and the Excel downloads).
type Response struct {
	Code      string `json:"code"`
	Message   string `json:"message"`
	RequestID string `json:"request_id"`
	Timestamp int64  `json:"timestamp"`
	Data      any    `json:"data,omitempty"`
	Details   any    `json:"details,omitempty"` // Additional error details
}

// NewResponse creates a success response.
func NewResponse(requestID string, data any) *Response {
	return &Response{
		Code:      "OK",
		Message:   "Success",
		RequestID: requestID,
		Timestamp: time.Now().UnixMilli(),
		Data:      data,
	}
}

// NewErrorResponse creates an error response.
func NewErrorResponse(requestID, code, message string, details any) *Response {
	return &Response{
		Code:      code,
		Message:   message,
		RequestID: requestID,
		Timestamp: time.Now().UnixMilli(),
		Details:   details,
	}
}

// LoginRequest is the request body for POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the response body for POST /auth/login.
type LoginResponse struct {
	Token string `json:"token"`
}

// IMEICheckResponse is the response body for GET /sales/imei-check.
type IMEICheckResponse struct {
	IMEI   string `json:"imei"`
	Unique bool   `json:"unique"`
}

// ExchangeRateRequest is the request body for PUT /prefs/exchange-rate.
type ExchangeRateRequest struct {
	Rate float64 `json:"rate"`
}

// DarkModeRequest is the request body for PUT /prefs/dark-mode.
type DarkModeRequest struct {
	Dark bool `json:"dark"`
}

// PrefsResponse is the response body for GET /prefs.
type PrefsResponse struct {
	ExchangeRate float64 `json:"exchangeRate"`
	DarkMode     bool    `json:"darkMode"`
}

// ImportResponse is the response body for the bulk import endpoints.
type ImportResponse struct {
	Imported int `json:"imported"`
}
