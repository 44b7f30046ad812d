// Package httpserver provides the HTTP server for phoneledger.
package httpserver

import (
	"log/slog"
	"net/http"

	"github.com/maidanad/phoneledger-go/internal/core/service"
	"github.com/maidanad/phoneledger-go/internal/server/httpserver/handler"
	"github.com/maidanad/phoneledger-go/internal/telemetry/metric"
)

// RouterConfig holds configuration for the HTTP router.
type RouterConfig struct {
	// Services holds the business services the handlers call.
	Services *handler.Services

	// AuthService validates session tokens.
	AuthService *service.AuthService

	// Logger for request logging.
	Logger *slog.Logger

	// Metrics for HTTP request counting.
	Metrics *metric.Metrics

	// SkipAuthPaths are paths that don't require authentication.
	SkipAuthPaths []string

	// CORSAllowedOrigins is the list of allowed CORS origins (empty = allow all).
	CORSAllowedOrigins []string

	// RateLimitRPS is the per-IP request rate (0 = disabled).
	RateLimitRPS float64

	// RateLimitBurst is the per-IP burst size.
	RateLimitBurst int
}

// NewRouter creates and configures the HTTP router with all routes and middleware.
//
// Middleware order: Recover -> CORS -> RequestID -> RateLimit ->
// RequestLog -> SessionAuth -> Handler.
func NewRouter(cfg *RouterConfig) http.Handler {
	h := handler.New(cfg.Services, cfg.Logger)

	middlewares := []Middleware{
		Recover(cfg.Logger),
		CORS(cfg.CORSAllowedOrigins),
		RequestID(),
	}

	if cfg.RateLimitRPS > 0 {
		middlewares = append(middlewares, RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	}

	middlewares = append(middlewares,
		RequestLog(cfg.Logger, cfg.Metrics),
		SessionAuth(cfg.AuthService, cfg.SkipAuthPaths),
	)

	return Chain(h, middlewares...)
}

// DefaultRouterConfig returns default router configuration.
func DefaultRouterConfig() *RouterConfig {
	return &RouterConfig{
		SkipAuthPaths: []string{"/health", "/metrics", "/auth/login"},
	}
}
