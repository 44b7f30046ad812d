package service

import (
	"context"
	"testing"

	"github.com/maidanad/phoneledger-go/internal/storage/ledgerstore"
)

func TestPreferenceServiceExchangeRate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if got := env.prefs.ExchangeRate(ctx); got != ledgerstore.DefaultExchangeRate {
		t.Errorf("initial rate = %v, want %v", got, ledgerstore.DefaultExchangeRate)
	}

	for _, rate := range []float64{1350.5, 0, -10} {
		if err := env.prefs.SetExchangeRate(ctx, rate); err != nil {
			t.Fatalf("set rate %v: %v", rate, err)
		}
		if got := env.prefs.ExchangeRate(ctx); got != rate {
			t.Errorf("rate = %v, want %v", got, rate)
		}
	}

	// Preference changes never touch the audit log.
	if got := len(env.audit.Entries(ctx, 0)); got != 0 {
		t.Errorf("audit entries = %d, want 0", got)
	}
}

func TestPreferenceServiceDarkMode(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if env.prefs.DarkMode(ctx) {
		t.Error("dark mode on by default")
	}
	if err := env.prefs.SetDarkMode(ctx, true); err != nil {
		t.Fatalf("set dark: %v", err)
	}
	if !env.prefs.DarkMode(ctx) {
		t.Error("dark mode not persisted")
	}
}
