package service

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/maidanad/phoneledger-go/internal/core/domain"
	"github.com/maidanad/phoneledger-go/internal/telemetry/metric"
	sessiontoken "github.com/maidanad/phoneledger-go/pkg/token"
)

// Default credentials used when none are configured. The ledger is a
// single-operator tool bound to loopback; operators are expected to
// override these in the config file.
const (
	DefaultUsername = "admin"
	DefaultPassword = "admin123"
)

// AuthService validates the single operator credential pair and tracks
// issued session tokens. Sessions live in memory only, keyed by token
// hash rather than the token itself: a restart logs everyone out.
type AuthService struct {
	username string
	password string
	logger   *slog.Logger
	metrics  *metric.Metrics

	mu       sync.RWMutex
	sessions map[string]struct{}
}

// NewAuthService creates an AuthService for the given credential pair.
// The password may be a bcrypt hash (recognized by its "$2" prefix) or
// plain text.
func NewAuthService(username, password string, logger *slog.Logger, metrics *metric.Metrics) *AuthService {
	if username == "" {
		username = DefaultUsername
	}
	if password == "" {
		password = DefaultPassword
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthService{
		username: username,
		password: password,
		logger:   logger,
		metrics:  metrics,
		sessions: make(map[string]struct{}),
	}
}

// Login validates the credential pair and returns a fresh session
// token. Returns domain.ErrInvalidCredentials on mismatch without
// revealing which half failed.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if !s.verify(username, password) {
		s.logger.WarnContext(ctx, "login rejected", "username", username)
		s.metrics.RecordLoginFailure()
		return "", domain.ErrInvalidCredentials
	}

	token, err := domain.NewSessionToken()
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	s.sessions[sessiontoken.Hash(token)] = struct{}{}
	s.mu.Unlock()

	s.logger.InfoContext(ctx, "login accepted", "username", username)
	return token, nil
}

// Logout invalidates a session token. Unknown tokens are a no-op: the
// caller's goal state (not logged in) already holds.
func (s *AuthService) Logout(_ context.Context, token string) {
	s.mu.Lock()
	delete(s.sessions, sessiontoken.Hash(token))
	s.mu.Unlock()
}

// IsAuthenticated reports whether the token belongs to a live session.
func (s *AuthService) IsAuthenticated(_ context.Context, token string) bool {
	s.mu.RLock()
	_, ok := s.sessions[sessiontoken.Hash(token)]
	s.mu.RUnlock()
	return ok
}

func (s *AuthService) verify(username, password string) bool {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.username)) == 1

	var passOK bool
	if strings.HasPrefix(s.password, "$2") {
		passOK = bcrypt.CompareHashAndPassword([]byte(s.password), []byte(password)) == nil
	} else {
		passOK = subtle.ConstantTimeCompare([]byte(password), []byte(s.password)) == 1
	}

	return userOK && passOK
}
