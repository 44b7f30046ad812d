package service

import (
	"context"
	"log/slog"
)

// PreferenceService exposes the two persisted session preferences: the
// USD/ARS reference rate and the dark-mode flag. Preference changes are
// not audited; the log tracks ledger mutations only.
type PreferenceService struct {
	repo   PreferenceRepository
	logger *slog.Logger
}

// NewPreferenceService creates a new PreferenceService.
func NewPreferenceService(repo PreferenceRepository, logger *slog.Logger) *PreferenceService {
	if logger == nil {
		logger = slog.Default()
	}
	return &PreferenceService{repo: repo, logger: logger}
}

// ExchangeRate returns the current USD/ARS reference rate.
func (s *PreferenceService) ExchangeRate(ctx context.Context) float64 {
	return s.repo.ExchangeRate(ctx)
}

// SetExchangeRate stores a new reference rate. Any finite value is
// accepted, zero and negative included; the rate is a display aid, not
// a ledger amount.
func (s *PreferenceService) SetExchangeRate(ctx context.Context, rate float64) error {
	if err := s.repo.SetExchangeRate(ctx, rate); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "exchange rate updated", "rate", rate)
	return nil
}

// DarkMode returns the persisted theme flag.
func (s *PreferenceService) DarkMode(ctx context.Context) bool {
	return s.repo.DarkMode(ctx)
}

// SetDarkMode stores the theme flag.
func (s *PreferenceService) SetDarkMode(ctx context.Context, dark bool) error {
	return s.repo.SetDarkMode(ctx, dark)
}
