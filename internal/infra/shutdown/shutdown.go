// Package shutdown provides graceful shutdown handling.
package shutdown

import (
	"context"
	"errors"
	"os/signal"
	"sync"
	"syscall"
	"time"
)

// Handler runs registered cleanups when the process receives SIGINT or
// SIGTERM. All cleanups share one timeout context.
type Handler struct {
	timeout time.Duration
	done    chan struct{}

	mu       sync.Mutex
	cleanups []func(context.Context) error
}

// NewHandler creates a Handler whose cleanups get at most timeout to
// finish once a termination signal arrives.
func NewHandler(timeout time.Duration) *Handler {
	return &Handler{
		timeout: timeout,
		done:    make(chan struct{}),
	}
}

// OnShutdown registers a cleanup. Cleanups run in reverse registration
// order, so components register in startup order and tear down last
// first.
func (h *Handler) OnShutdown(fn func(context.Context) error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.cleanups = append(h.cleanups, fn)
}

// Wait blocks until SIGINT or SIGTERM, then runs every cleanup. Every
// cleanup runs even when an earlier one fails; the errors are joined
// into the return value.
func (h *Handler) Wait() error {
	sigCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	<-sigCtx.Done()
	stop()

	ctx, cancel := context.WithTimeout(context.Background(), h.timeout)
	defer cancel()

	h.mu.Lock()
	cleanups := make([]func(context.Context) error, len(h.cleanups))
	copy(cleanups, h.cleanups)
	h.mu.Unlock()

	var errs []error
	for i := len(cleanups) - 1; i >= 0; i-- {
		if err := cleanups[i](ctx); err != nil {
			errs = append(errs, err)
		}
	}

	close(h.done)
	return errors.Join(errs...)
}

// Done returns a channel that closes once Wait has finished running
// the cleanups.
func (h *Handler) Done() <-chan struct{} {
	return h.done
}
