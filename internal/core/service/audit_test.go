package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/maidanad/phoneledger-go/internal/core/domain"
)

func TestAuditCapOverManyMutations(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// One more mutation than the log retains.
	for i := 0; i <= domain.MaxAuditEntries; i++ {
		tx, err := env.currency.Create(ctx, &CreateTransactionRequest{
			Date:         "2024-01-01",
			Counterparty: fmt.Sprintf("op-%d", i),
			Quantity:     1,
		})
		if err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
		_ = tx
	}

	entries := env.audit.Entries(ctx, 0)
	if len(entries) != domain.MaxAuditEntries {
		t.Fatalf("entries = %d, want %d", len(entries), domain.MaxAuditEntries)
	}

	// Newest first: the last mutation heads the log, the very first one
	// fell off the tail.
	if want := fmt.Sprintf("USD 1 - op-%d", domain.MaxAuditEntries); entries[0].Details != want {
		t.Errorf("head = %q, want %q", entries[0].Details, want)
	}
	for _, e := range entries {
		if e.Details == "USD 1 - op-0" {
			t.Error("oldest entry survived past the cap")
		}
	}
}

func TestAuditEntriesLimit(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		if _, err := env.clients.Create(ctx, &CreateClientRequest{Name: fmt.Sprintf("c-%d", i)}); err != nil {
			t.Fatalf("create %d: %v", i, err)
		}
	}

	if got := len(env.audit.Entries(ctx, 3)); got != 3 {
		t.Errorf("limited entries = %d, want 3", got)
	}
	if got := len(env.audit.Entries(ctx, 0)); got != 5 {
		t.Errorf("unlimited entries = %d, want 5", got)
	}
	if got := len(env.audit.Entries(ctx, 100)); got != 5 {
		t.Errorf("over-limit entries = %d, want 5", got)
	}
}

func TestAuditEntryFields(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	if _, err := env.clients.Create(ctx, &CreateClientRequest{Name: "Trazo"}); err != nil {
		t.Fatalf("create: %v", err)
	}

	e := env.audit.Entries(ctx, 1)[0]
	if e.User != DefaultAuditUser {
		t.Errorf("User = %q, want %q", e.User, DefaultAuditUser)
	}
	if e.ID == "" || e.Timestamp == "" {
		t.Errorf("entry missing ID or timestamp: %+v", e)
	}
}
