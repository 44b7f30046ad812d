package service

import (
	"context"
	"log/slog"

	"github.com/maidanad/phoneledger-go/internal/core/domain"
)

// DefaultAuditUser is the acting identity recorded on audit entries
// when no user is configured. The ledger is single-operator, so every
// entry carries the same fixed identity.
const DefaultAuditUser = "admin"

// AuditService writes and reads the append-only mutation log.
type AuditService struct {
	repo   AuditRepository
	user   string
	logger *slog.Logger
}

// NewAuditService creates an AuditService recording the given acting user.
func NewAuditService(repo AuditRepository, user string, logger *slog.Logger) *AuditService {
	if user == "" {
		user = DefaultAuditUser
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AuditService{repo: repo, user: user, logger: logger}
}

// Record appends one entry for a successful mutation. An audit failure
// is logged but never fails the mutation that triggered it; the ledger
// change has already happened.
func (s *AuditService) Record(ctx context.Context, action domain.Action, entity domain.Entity, entityID, details string) {
	entry, err := domain.NewAuditEntry(action, entity, entityID, details, s.user)
	if err != nil {
		s.logger.Error("audit entry dropped", "error", err)
		return
	}
	if err := s.repo.PrependAuditEntry(ctx, entry); err != nil {
		s.logger.Error("audit entry dropped", "error", err)
	}
}

// Entries returns the newest-first audit log. A limit <= 0 returns all
// retained entries.
func (s *AuditService) Entries(ctx context.Context, limit int) []*domain.AuditEntry {
	return s.repo.AuditEntries(ctx, limit)
}
